package interp

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/slitherlang/slither/internal/lexer"
	"github.com/slitherlang/slither/internal/parser"
	"github.com/slitherlang/slither/internal/pipeline"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// TestScriptFixtures evaluates every script under testdata and snapshots
// its combined observable behavior: exit status, standard output and the
// unhandled-exception diagnostic.
func TestScriptFixtures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.sl"))
	if err != nil {
		t.Fatalf("globbing fixtures: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found under testdata")
	}
	for _, file := range files {
		file := file
		t.Run(filepath.Base(file), func(t *testing.T) {
			src, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("reading fixture: %v", err)
			}
			ctx := pipeline.NewPipelineContext(string(src))
			ctx.FilePath = file
			ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
			if ctx.HasErrors() {
				t.Fatalf("parse error in %s: %s", file, ctx.Errors[0].Error())
			}
			var out, errOut bytes.Buffer
			in := New()
			in.Out = &out
			in.ErrOut = &errOut
			status := in.Interpret(file, ctx.AstRoot)
			snaps.MatchSnapshot(t, fmt.Sprintf("status=%d\n--- stdout ---\n%s--- stderr ---\n%s", status, out.String(), errOut.String()))
		})
	}
}
