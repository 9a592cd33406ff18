package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/slitherlang/slither/internal/ast"
	"github.com/slitherlang/slither/internal/lexer"
	"github.com/slitherlang/slither/internal/parser"
	"github.com/slitherlang/slither/internal/pipeline"
)

// parseSource parses a program, failing the test on any diagnostic.
func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	ctx := pipeline.NewPipelineContext(src)
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		t.Fatalf("parse error: %s", ctx.Errors[0].Error())
	}
	return ctx.AstRoot
}

// runSource evaluates a program and returns its standard output and exit
// status.
func runSource(t *testing.T, src string) (string, int) {
	t.Helper()
	program := parseSource(t, src)
	var out, errOut bytes.Buffer
	in := New()
	in.Out = &out
	in.ErrOut = &errOut
	status := in.Interpret("<test>", program)
	return out.String(), status
}

func expectOutput(t *testing.T, src, want string) {
	t.Helper()
	got, status := runSource(t, src)
	if status != 0 {
		t.Fatalf("unexpected exit status %d, output:\n%s", status, got)
	}
	if got != want {
		t.Errorf("wrong output\nsource:\n%s\ngot:  %q\nwant: %q", src, got, want)
	}
}

// expectFailure runs a program expected to die with an unhandled exception
// and asserts on a fragment of the raise-time diagnostic.
func expectFailure(t *testing.T, src, wantFragment string) {
	t.Helper()
	got, status := runSource(t, src)
	if status == 0 {
		t.Fatalf("expected non-zero exit status, output:\n%s", got)
	}
	if !strings.Contains(got, wantFragment) {
		t.Errorf("diagnostic %q not found in output %q", wantFragment, got)
	}
}

func TestArithmeticStatement(t *testing.T) {
	expectOutput(t, "x = 1 + 2; print(x)\n", "3\n")
}

func TestTrueAndFloorDivision(t *testing.T) {
	expectOutput(t, "print(1/2)\n", "0.5\n")
	expectOutput(t, "print(1//2)\n", "0\n")
}

func TestRecursiveFunction(t *testing.T) {
	src := `def f(n):
  if n <= 1: return n
  return f(n-1)+f(n-2)
print(f(10))
`
	expectOutput(t, src, "55\n")
}

func TestClassInit(t *testing.T) {
	src := `class A:
  def __init__(self): self.x = 7
print(A().x)
`
	expectOutput(t, src, "7\n")
}

func TestWhileBreak(t *testing.T) {
	src := `i = 0
while i < 3:
  if i == 2: break
  print(i)
  i = i + 1
`
	expectOutput(t, src, "0\n1\n")
}

func TestRaiseCatchFinally(t *testing.T) {
	src := `try:
  raise TypeError("x")
except TypeError as e:
  print("caught")
finally:
  print("done")
`
	// The raise-time diagnostic goes to standard output before the
	// handler runs.
	expectOutput(t, src, "x\ncaught\ndone\n")
}

func TestArbitraryPrecisionIntegers(t *testing.T) {
	expectOutput(t, "print(2 ** 100)\n", "1267650600228229401496703205376\n")
	expectOutput(t, "print(10 ** 30 + 1)\n", "1000000000000000000000000000001\n")
}

func TestFloatFormatting(t *testing.T) {
	expectOutput(t, "print(1.5 + 1.5)\n", "3.0\n")
	expectOutput(t, "print(2.5)\n", "2.5\n")
}

func TestStringOperations(t *testing.T) {
	expectOutput(t, `print("foo" + "bar")`+"\n", "foobar\n")
	expectOutput(t, `print("ab" * 3)`+"\n", "ababab\n")
	expectOutput(t, `print(3 * "ab")`+"\n", "ababab\n")
	expectOutput(t, `print("b" > "a")`+"\n", "True\n")
}

func TestSubscripts(t *testing.T) {
	expectOutput(t, "print([10, 20, 30][1])\n", "20\n")
	expectOutput(t, "print((4, 5)[0])\n", "4\n")
	expectOutput(t, `print("hello"[1])`+"\n", "e\n")
}

func TestListReferenceSemantics(t *testing.T) {
	// Assignment copies the handle, not the elements: both names must
	// alias the same *List.
	src := `a = [1, 2]
b = a
`
	program := parseSource(t, src)
	in := New()
	var out bytes.Buffer
	in.Out = &out
	in.ErrOut = &out
	if status := in.Interpret("<test>", program); status != 0 {
		t.Fatalf("unexpected status %d", status)
	}
	scope := in.Frames[0].Scope
	a, _ := scope.Lookup("a")
	b, _ := scope.Lookup("b")
	if a.(*List) != b.(*List) {
		t.Error("list assignment must share the handle, not copy elements")
	}
}

func TestTupleDisplay(t *testing.T) {
	expectOutput(t, "print((1, 2, 3))\n", "(1, 2, 3)\n")
	expectOutput(t, "print((1,))\n", "(1,)\n")
	expectOutput(t, "print([1, 2])\n", "[1, 2]\n")
}

func TestTernary(t *testing.T) {
	expectOutput(t, "print(1 if True else 2)\n", "1\n")
	expectOutput(t, "print(1 if False else 2)\n", "2\n")
}

func TestAsBinding(t *testing.T) {
	src := `y = (1 + 2 as x)
print(x)
print(y)
`
	expectOutput(t, src, "3\n3\n")
}

func TestMultipleInheritanceLookup(t *testing.T) {
	src := `class A:
  def name(self): return "A"
class B:
  def name(self): return "B"
  def other(self): return "other"
class C(A, B):
  pass
c = C()
print(c.name())
print(c.other())
`
	// Left-to-right depth-first: A wins for name, B supplies other.
	expectOutput(t, src, "A\nother\n")
}

func TestClassAttributeSharedDict(t *testing.T) {
	src := `class Counter:
  count = 0
a = Counter()
Counter.count = 5
print(a.count)
`
	expectOutput(t, src, "5\n")
}

func TestModuleScopeReturnRejected(t *testing.T) {
	expectFailure(t, "return 1\n", "'return' outside function")
}

func TestBreakOutsideLoopRejected(t *testing.T) {
	expectFailure(t, "break\n", "'break' outside loop")
}

func TestContinueOutsideLoopRejected(t *testing.T) {
	expectFailure(t, "continue\n", "'continue' not properly in loop")
}

func TestUnimplementedStatements(t *testing.T) {
	expectFailure(t, "for x in [1]: pass\n", "for statements are not implemented")
	expectFailure(t, "with 1 as x: pass\n", "with statements are not implemented")
	expectFailure(t, "def f():\n  global x\nf()\n", "global declarations are not implemented")
	expectFailure(t, "def f():\n  nonlocal x\nf()\n", "nonlocal declarations are not implemented")
	expectFailure(t, "f = lambda x: x\n", "lambda expressions are not implemented")
}

func TestTraceOutput(t *testing.T) {
	program := parseSource(t, "x = 1\n")
	var out, errOut bytes.Buffer
	in := New()
	in.Out = &out
	in.ErrOut = &errOut
	in.Trace = true
	if status := in.Interpret("<test>", program); status != 0 {
		t.Fatalf("unexpected status %d", status)
	}
	if want := "*** Evaluating: x = 1\n"; errOut.String() != want {
		t.Errorf("trace output %q, want %q", errOut.String(), want)
	}
}

func TestUnhandledExceptionDiagnostic(t *testing.T) {
	program := parseSource(t, `raise TypeError("boom")`+"\n")
	var out, errOut bytes.Buffer
	in := New()
	in.Out = &out
	in.ErrOut = &errOut
	if status := in.Interpret("<test>", program); status != 1 {
		t.Fatalf("status = %d, want 1", status)
	}
	if !strings.Contains(errOut.String(), "TypeError") || !strings.Contains(errOut.String(), "boom") {
		t.Errorf("diagnostic %q missing exception details", errOut.String())
	}
	if out.String() != "boom\n" {
		t.Errorf("raise-time output %q, want %q", out.String(), "boom\n")
	}
}
