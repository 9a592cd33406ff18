package modules

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/slitherlang/slither/internal/interp"
	"github.com/slitherlang/slither/internal/lexer"
	"github.com/slitherlang/slither/internal/parser"
	"github.com/slitherlang/slither/internal/pipeline"
)

func writeModule(t *testing.T, dir, name, src string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
		t.Fatalf("writing module: %v", err)
	}
}

// runIn evaluates main as the entry module with imports resolving
// against dir.
func runIn(t *testing.T, dir, main string) (string, int) {
	t.Helper()
	ctx := pipeline.NewPipelineContext(main)
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		t.Fatalf("parse error: %s", ctx.Errors[0].Error())
	}
	var out bytes.Buffer
	in := interp.New()
	in.Out = &out
	in.ErrOut = &out
	in.Loader = NewLoader()
	in.Dir = dir
	status := in.Interpret("<main>", ctx.AstRoot)
	return out.String(), status
}

func TestImportModule(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "mathutil.sl", "def add(a, b):\n  return a + b\nanswer = 42\n")

	out, status := runIn(t, dir, "import mathutil\nprint(mathutil.add(1, 2))\nprint(mathutil.answer)\n")
	if status != 0 {
		t.Fatalf("status = %d, output:\n%s", status, out)
	}
	if out != "3\n42\n" {
		t.Errorf("output = %q, want %q", out, "3\n42\n")
	}
}

func TestImportAlias(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "mathutil.sl", "answer = 42\n")

	out, status := runIn(t, dir, "import mathutil as m\nprint(m.answer)\n")
	if status != 0 {
		t.Fatalf("status = %d, output:\n%s", status, out)
	}
	if out != "42\n" {
		t.Errorf("output = %q, want %q", out, "42\n")
	}
}

func TestGlobImport(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "helpers.sl", "one = 1\ndef two():\n  return 2\n")

	out, status := runIn(t, dir, "from helpers import *\nprint(one)\nprint(two())\n")
	if status != 0 {
		t.Fatalf("status = %d, output:\n%s", status, out)
	}
	if out != "1\n2\n" {
		t.Errorf("output = %q, want %q", out, "1\n2\n")
	}
}

func TestModuleEvaluatedOnce(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "noisy.sl", "print(\"loading\")\nvalue = 1\n")

	out, status := runIn(t, dir, "import noisy\nimport noisy as again\nprint(noisy.value + again.value)\n")
	if status != 0 {
		t.Fatalf("status = %d, output:\n%s", status, out)
	}
	if out != "loading\n2\n" {
		t.Errorf("output = %q, want %q", out, "loading\n2\n")
	}
}

func TestNestedImports(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "inner.sl", "base = 10\n")
	writeModule(t, dir, "outer.sl", "import inner\ntotal = inner.base + 1\n")

	out, status := runIn(t, dir, "import outer\nprint(outer.total)\n")
	if status != 0 {
		t.Fatalf("status = %d, output:\n%s", status, out)
	}
	if out != "11\n" {
		t.Errorf("output = %q, want %q", out, "11\n")
	}
}

func TestRelativeGlobImport(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "pkg")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeModule(t, root, "shared.sl", "token = \"from-root\"\n")
	writeModule(t, sub, "user.sl", "from ..shared import *\nvalue = token\n")

	out, status := runIn(t, sub, "import user\nprint(user.value)\n")
	if status != 0 {
		t.Fatalf("status = %d, output:\n%s", status, out)
	}
	if out != "from-root\n" {
		t.Errorf("output = %q, want %q", out, "from-root\n")
	}
}

func TestMissingModule(t *testing.T) {
	dir := t.TempDir()
	out, status := runIn(t, dir, "import nothing\n")
	if status == 0 {
		t.Fatalf("expected failure, output:\n%s", out)
	}
}

func TestModuleDictMutationVisible(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "state.sl", "counter = 0\n")

	src := `import state
import state as s2
state.counter = 5
print(s2.counter)
`
	out, status := runIn(t, dir, src)
	if status != 0 {
		t.Fatalf("status = %d, output:\n%s", status, out)
	}
	if out != "5\n" {
		t.Errorf("output = %q, want %q", out, "5\n")
	}
}

func TestLoaderCachesParsedModules(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "m.sl", "x = 1\n")
	l := NewLoader()
	a, err := l.Load(dir, "m", 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := l.Load(dir, "m", 0)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("loader must cache parsed modules by path")
	}
}
