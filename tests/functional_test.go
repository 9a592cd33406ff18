package tests

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slitherlang/slither/internal/config"
)

// TestFunctional runs .sl files through the compiled binary and compares
// output with .want files. This tests the actual binary - what users see.
func TestFunctional(t *testing.T) {
	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("Failed to get project root: %v", err)
	}

	binaryPath := filepath.Join(projectRoot, "slither-test-binary")
	defer os.Remove(binaryPath)

	t.Log("Building fresh binary...")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/slither")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, output)
	}

	// Find all source files with .want files. Sources without a .want are
	// support modules imported by other scripts.
	var testFiles []string
	err = filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		for _, ext := range config.SourceFileExtensions {
			if strings.HasSuffix(path, ext) {
				wantFile := strings.TrimSuffix(path, ext) + ".want"
				if _, err := os.Stat(wantFile); err == nil {
					testFiles = append(testFiles, path)
				}
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk test files: %v", err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no functional test scripts found")
	}

	for _, file := range testFiles {
		file := file
		t.Run(file, func(t *testing.T) {
			wantFile := strings.TrimSuffix(file, filepath.Ext(file)) + ".want"
			want, err := os.ReadFile(wantFile)
			if err != nil {
				t.Fatalf("Failed to read %s: %v", wantFile, err)
			}

			var stdout, stderr bytes.Buffer
			run := exec.Command(binaryPath, "run", file)
			run.Stdout = &stdout
			run.Stderr = &stderr
			runErr := run.Run()

			// Scripts whose name ends in _fail are expected to exit
			// non-zero with an unhandled exception.
			expectFail := strings.HasSuffix(strings.TrimSuffix(file, filepath.Ext(file)), "_fail")
			if expectFail && runErr == nil {
				t.Fatalf("expected non-zero exit\nstdout:\n%s\nstderr:\n%s", stdout.String(), stderr.String())
			}
			if !expectFail && runErr != nil {
				t.Fatalf("run failed: %v\nstdout:\n%s\nstderr:\n%s", runErr, stdout.String(), stderr.String())
			}

			if stdout.String() != string(want) {
				t.Errorf("wrong output\ngot:\n%s\nwant:\n%s", stdout.String(), string(want))
			}
		})
	}
}
