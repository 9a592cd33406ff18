package modules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/slitherlang/slither/internal/config"
	"github.com/slitherlang/slither/internal/interp"
	"github.com/slitherlang/slither/internal/lexer"
	"github.com/slitherlang/slither/internal/parser"
	"github.com/slitherlang/slither/internal/pipeline"
)

// Loader finds module source on disk and parses it once. Parsed modules
// are cached by resolved path; the interpreter caches the evaluated module
// values separately.
type Loader struct {
	LoadedModules map[string]*interp.LoadedModule
}

func NewLoader() *Loader {
	return &Loader{LoadedModules: make(map[string]*interp.LoadedModule)}
}

var _ interp.ModuleLoader = (*Loader)(nil)

// Load resolves name relative to dir. A relative import with level n
// climbs n-1 directories before descending into name.
func (l *Loader) Load(dir, name string, level int) (*interp.LoadedModule, error) {
	if dir == "" {
		dir = "."
	}
	base := dir
	for i := 1; i < level; i++ {
		base = filepath.Dir(base)
	}

	path, err := findSourceFile(base, name)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if mod, ok := l.LoadedModules[abs]; ok {
		return mod, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read module %s: %w", name, err)
	}

	ctx := pipeline.NewPipelineContext(string(src))
	ctx.FilePath = path
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		msgs := make([]string, len(ctx.Errors))
		for i, e := range ctx.Errors {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("cannot parse module %s: %s", name, strings.Join(msgs, "; "))
	}

	mod := &interp.LoadedModule{
		Name:    name,
		Path:    abs,
		Dir:     filepath.Dir(abs),
		Program: ctx.AstRoot,
	}
	l.LoadedModules[abs] = mod
	return mod, nil
}

func findSourceFile(dir, name string) (string, error) {
	for _, ext := range config.SourceFileExtensions {
		path := filepath.Join(dir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("no module named '%s'", name)
}
