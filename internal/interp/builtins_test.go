package interp

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestPrintBuiltin(t *testing.T) {
	expectOutput(t, `print(1, "two", 3.0, True, None)`+"\n", "1 two 3.0 True None\n")
	expectOutput(t, "print()\n", "\n")
}

func TestStrAndRepr(t *testing.T) {
	expectOutput(t, `print(str(1.5))`+"\n", "1.5\n")
	expectOutput(t, `print(str("hi"))`+"\n", "hi\n")
	expectOutput(t, `print(repr("hi"))`+"\n", "\"hi\"\n")
	expectOutput(t, `print(str([1, "a"]))`+"\n", "[1, \"a\"]\n")
	expectOutput(t, `print(str(None))`+"\n", "None\n")
	expectFailure(t, "str(1, 2)\n", "str() takes exactly 1 arguments (2 given)")
}

func TestLenBuiltin(t *testing.T) {
	expectOutput(t, `print(len("abc"))`+"\n", "3\n")
	expectOutput(t, "print(len([1, 2]))\n", "2\n")
	expectOutput(t, "print(len(()))\n", "0\n")
	expectFailure(t, "print(len(1))\n", "object of type 'int' has no len()")
}

func TestTypeBuiltin(t *testing.T) {
	expectOutput(t, "print(type(1))\n", "<class 'int'>\n")
	expectOutput(t, `print(type("s"))`+"\n", "<class 'str'>\n")
	src := `class A:
  pass
print(type(A()))
print(type(A))
`
	expectOutput(t, src, "<class 'A'>\n<class 'type'>\n")
}

func TestUuidModule(t *testing.T) {
	src := `import uuid
print(len(uuid.uuid4()))
`
	expectOutput(t, src, "36\n")
}

func TestUuidV5Deterministic(t *testing.T) {
	want := uuid.NewSHA1(uuid.NameSpaceDNS, []byte("example.com")).String()
	src := `import uuid
print(uuid.uuid5(uuid.NAMESPACE_DNS, "example.com"))
`
	expectOutput(t, src, want+"\n")
}

func TestUuidParse(t *testing.T) {
	id := uuid.New().String()
	src := fmt.Sprintf("import uuid\nprint(uuid.parse(%q))\n", id)
	expectOutput(t, src, id+"\n")

	expectFailure(t, `import uuid
uuid.parse("not-a-uuid")
`, "badly formed hexadecimal UUID string")
}

func TestModuleReimportYieldsSameValue(t *testing.T) {
	program := parseSource(t, "import uuid\nimport uuid as u2\n")
	in := New()
	if status := in.Interpret("<test>", program); status != 0 {
		t.Fatalf("unexpected status %d", status)
	}
	scope := in.Frames[0].Scope
	a, _ := scope.Lookup("uuid")
	b, _ := scope.Lookup("u2")
	if a.(*Module) != b.(*Module) {
		t.Error("re-import must yield the same module value")
	}
}

func TestSqliteRoundTrip(t *testing.T) {
	src := `import sqlite3
db = sqlite3.connect(":memory:")
sqlite3.execute(db, "create table t (a integer, b text)")
print(sqlite3.execute(db, "insert into t values (?, ?)", 1, "one"))
print(sqlite3.execute(db, "insert into t values (?, ?)", 2, "two"))
rows = sqlite3.query(db, "select a, b from t")  # ordered by rowid
print(len(rows))
print(rows[0][0], rows[0][1])
print(rows[1][0], rows[1][1])
sqlite3.close(db)
`
	expectOutput(t, src, "1\n1\n2\n1 one\n2 two\n")
}

func TestSqliteInvalidHandle(t *testing.T) {
	src := `import sqlite3
sqlite3.query(99, "select 1")
`
	expectFailure(t, src, "invalid database handle")
}

func TestSqliteErrorsRaise(t *testing.T) {
	src := `import sqlite3
db = sqlite3.connect(":memory:")
try:
  sqlite3.execute(db, "not valid sql")
except RuntimeError:
  print("caught")
sqlite3.close(db)
`
	got, status := runSource(t, src)
	if status != 0 {
		t.Fatalf("unexpected status %d, output:\n%s", status, got)
	}
	if !strings.HasSuffix(got, "caught\n") {
		t.Errorf("expected trailing %q, got %q", "caught\n", got)
	}
}
