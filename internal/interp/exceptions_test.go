package interp

import "testing"

func TestExceptMatchingOrder(t *testing.T) {
	src := `try:
  raise TypeError("t")
except NameError:
  print("name")
except TypeError:
  print("type")
except TypeError:
  print("again")
`
	// At most one clause runs; the first match wins.
	expectOutput(t, src, "t\ntype\n")
}

func TestBareExceptCatchesEverything(t *testing.T) {
	src := `try:
  raise RuntimeError("r")
except:
  print("caught")
`
	expectOutput(t, src, "r\ncaught\n")
}

func TestExceptionBinding(t *testing.T) {
	src := `try:
  raise TypeError("boom")
except TypeError as e:
  print(e.message)
`
	expectOutput(t, src, "boom\nboom\n")
}

func TestUserExceptionSubclass(t *testing.T) {
	src := `class MyError(TypeError):
  pass
try:
  raise MyError("mine")
except TypeError:
  print("caught")
`
	expectOutput(t, src, "mine\ncaught\n")
}

func TestCatchByBaseException(t *testing.T) {
	src := `try:
  raise NameError("n")
except BaseException:
  print("base")
`
	expectOutput(t, src, "n\nbase\n")
}

func TestUnmatchedExceptionPropagates(t *testing.T) {
	src := `try:
  try:
    raise TypeError("t")
  except NameError:
    print("wrong")
  finally:
    print("fin")
except TypeError:
  print("outer")
`
	expectOutput(t, src, "t\nfin\nouter\n")
}

func TestElseRunsWithoutException(t *testing.T) {
	src := `try:
  print("body")
except TypeError:
  print("handler")
else:
  print("else")
finally:
  print("fin")
`
	expectOutput(t, src, "body\nelse\nfin\n")
}

func TestElseSkippedWhenHandled(t *testing.T) {
	src := `try:
  raise TypeError("t")
except TypeError:
  print("handler")
else:
  print("else")
finally:
  print("fin")
`
	expectOutput(t, src, "t\nhandler\nfin\n")
}

func TestReraise(t *testing.T) {
	src := `try:
  try:
    raise TypeError("inner")
  except TypeError:
    raise
except TypeError as e:
  print("outer", e.message)
`
	expectOutput(t, src, "inner\nouter inner\n")
}

func TestReraiseWithoutActiveException(t *testing.T) {
	expectFailure(t, "raise\n", "No active exception to reraise")
}

func TestRaiseNonException(t *testing.T) {
	expectFailure(t, "raise 42\n", "exceptions must derive from BaseException")
}

func TestRaiseFromSetsCause(t *testing.T) {
	src := `try:
  raise TypeError("t") from RuntimeError("cause")
except TypeError as e:
  print(e.__cause__.message)
`
	// The cause expression constructs a plain instance; only the raised
	// exception propagates.
	expectOutput(t, src, "t\ncause\n")
}

func TestExceptionInHandlerPropagates(t *testing.T) {
	src := `try:
  try:
    raise TypeError("t")
  except TypeError:
    raise NameError("n")
except NameError:
  print("outer")
`
	expectOutput(t, src, "t\nn\nouter\n")
}

func TestExceptionAcrossCallFrames(t *testing.T) {
	src := `def inner():
  raise TypeError("deep")
def middle():
  inner()
try:
  middle()
except TypeError as e:
  print("caught", e.message)
`
	expectOutput(t, src, "deep\ncaught deep\n")
}

func TestFrameStackRestoredAfterCatch(t *testing.T) {
	src := `def boom():
  raise TypeError("x")
i = 0
while i < 2:
  try:
    boom()
  except TypeError:
    print("caught", i)
  i = i + 1
`
	expectOutput(t, src, "x\ncaught 0\nx\ncaught 1\n")
}

func TestAssert(t *testing.T) {
	expectOutput(t, "assert True\nprint(\"ok\")\n", "ok\n")
	expectFailure(t, `assert False, "broken invariant"`+"\n", "broken invariant")
}

func TestAssertCaught(t *testing.T) {
	src := `try:
  assert 0, "zero"
except AssertionError as e:
  print("caught", e.message)
`
	expectOutput(t, src, "zero\ncaught zero\n")
}

func TestNameError(t *testing.T) {
	expectFailure(t, "print(missing)\n", "name 'missing' is not defined")
}

func TestAttributeError(t *testing.T) {
	src := `class A:
  pass
a = A()
print(a.missing)
`
	expectFailure(t, src, "'A' object has no attribute 'missing'")
}

func TestAttributeAssignmentRejectedOnPrimitives(t *testing.T) {
	src := `x = 1
x.attr = 2
`
	expectFailure(t, src, "'int' object has no attribute 'attr'")
}

func TestIndexError(t *testing.T) {
	src := `try:
  print([1, 2][5])
except IndexError:
  print("caught")
`
	expectOutput(t, src, "index out of range\ncaught\n")
}

func TestNegativeIndexRejected(t *testing.T) {
	expectFailure(t, "print([1, 2][-1])\n", "index out of range")
}

func TestSubscriptTypeError(t *testing.T) {
	expectFailure(t, "print(1[0])\n", "not subscriptable")
	expectFailure(t, "print([1, 2][0:1])\n", "not subscriptable")
}

func TestArityMismatch(t *testing.T) {
	src := `def f(a):
  return a
f(1, 2)
`
	expectFailure(t, src, "f() takes exactly 1 arguments (2 given)")
}

func TestCallingNonCallable(t *testing.T) {
	expectFailure(t, "x = 1\nx()\n", "don't know how to call")
}

func TestDelUnbindsName(t *testing.T) {
	src := `x = 1
del x
print(x)
`
	expectFailure(t, src, "name 'x' is not defined")
}

func TestDelAbsentName(t *testing.T) {
	expectFailure(t, "del nothing\n", "name 'nothing' is not defined")
}

func TestExceptionClassesResolveByName(t *testing.T) {
	src := `print(TypeError)
print(type(TypeError))
`
	expectOutput(t, src, "<class 'TypeError'>\n<class 'type'>\n")
}
