package interp

import "testing"

func TestIfElifElse(t *testing.T) {
	src := `def grade(n):
  if n >= 90:
    return "A"
  elif n >= 80:
    return "B"
  else:
    return "C"
print(grade(95))
print(grade(85))
print(grade(10))
`
	expectOutput(t, src, "A\nB\nC\n")
}

func TestWhileElse(t *testing.T) {
	src := `i = 0
while i < 2:
  i = i + 1
else:
  print("else")
print(i)
`
	expectOutput(t, src, "else\n2\n")
}

func TestBreakSkipsElse(t *testing.T) {
	src := `while True:
  break
else:
  print("else")
print("after")
`
	expectOutput(t, src, "after\n")
}

func TestContinue(t *testing.T) {
	src := `i = 0
while i < 3:
  i = i + 1
  if i == 2: continue
  print(i)
`
	expectOutput(t, src, "1\n3\n")
}

func TestNestedLoops(t *testing.T) {
	src := `i = 0
while i < 2:
  j = 0
  while True:
    j = j + 1
    if j == 2: break
  print(i, j)
  i = i + 1
`
	// The inner break must not leak out of the inner loop.
	expectOutput(t, src, "0 2\n1 2\n")
}

func TestReturnStopsLoop(t *testing.T) {
	src := `def first():
  i = 0
  while True:
    if i == 3: return i
    i = i + 1
print(first())
`
	expectOutput(t, src, "3\n")
}

func TestFinallyRunsOnReturn(t *testing.T) {
	src := `def f():
  try:
    return 1
  finally:
    print("fin")
print(f())
`
	expectOutput(t, src, "fin\n1\n")
}

func TestFinallyRunsOnBreakAndContinue(t *testing.T) {
	src := `i = 0
while i < 2:
  i = i + 1
  try:
    if i == 2: break
    continue
  finally:
    print("fin", i)
print("after")
`
	expectOutput(t, src, "fin 1\nfin 2\nafter\n")
}

func TestFinallyOverridesPendingSignal(t *testing.T) {
	src := `def f():
  try:
    return 1
  finally:
    return 2
print(f())
`
	expectOutput(t, src, "2\n")
}

func TestFinallyRunsExactlyOnceEachPath(t *testing.T) {
	src := `def run(kind):
  try:
    if kind == "raise":
      raise TypeError("t")
    if kind == "return":
      return "r"
  except TypeError:
    pass
  finally:
    print("fin", kind)
  return "done"
print(run("normal"))
print(run("raise"))
print(run("return"))
`
	expectOutput(t, src, "fin normal\ndone\nt\nfin raise\ndone\nfin return\nr\n")
}

func TestFunctionFallsOffEnd(t *testing.T) {
	src := `def f():
  pass
print(f())
`
	expectOutput(t, src, "None\n")
}

func TestReturnWithoutValue(t *testing.T) {
	src := `def f():
  return
print(f())
`
	expectOutput(t, src, "None\n")
}

func TestBreakInsideFunctionOutsideLoop(t *testing.T) {
	src := `def f():
  break
f()
`
	expectFailure(t, src, "'break' outside loop")
}
