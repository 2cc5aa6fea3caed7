package e2e

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/you-not-fish/llcc/internal/diag"
	"github.com/you-not-fish/llcc/internal/driver"
)

// TestE2E runs end-to-end tests for all .llc files in testdata/.
// Each test:
//  1. Compiles the program to assembly in-process
//  2. Assembles and links it with cc
//  3. Runs the binary and captures its exit status
//  4. Compares the status against the .golden file
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.llc")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .llc test files found in testdata/")
	}

	if runtime.GOOS != "linux" || runtime.GOARCH != "amd64" {
		t.Skip("generated code targets linux/amd64, skipping E2E tests")
	}

	cc := os.Getenv("LLCC_CC")
	if cc == "" {
		cc = driver.DefaultCC
	}
	if _, err := exec.LookPath(cc); err != nil {
		t.Skipf("%s not found, skipping E2E tests", cc)
	}
	tc := driver.Toolchain{CC: cc}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".llc")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, tc, testFile)
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, tc driver.Toolchain, llcFile string) {
	t.Helper()

	src, err := os.ReadFile(llcFile)
	if err != nil {
		t.Fatalf("reading source: %v", err)
	}
	want := readGoldenStatus(t, strings.TrimSuffix(llcFile, ".llc")+".golden")

	// Step 1: Compile .llc → assembly (in-process).
	asm, err := driver.Compile(string(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	// Step 2: Assemble and link.
	ctx := context.Background()
	binFile := filepath.Join(t.TempDir(), "output")
	if err := tc.Assemble(ctx, asm, binFile); err != nil {
		t.Fatalf("assemble: %v\n%s", err, asm)
	}

	// Step 3: Run binary and capture the exit status.
	got, err := tc.Run(ctx, binFile)
	if err != nil {
		t.Fatalf("binary execution failed: %v", err)
	}

	// Step 4: Compare status.
	if got != want {
		t.Errorf("exit status mismatch: got %d, want %d", got, want)
	}
}

func readGoldenStatus(t *testing.T, goldenFile string) int {
	t.Helper()

	data, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	status, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		t.Fatalf("golden file %s: %v", goldenFile, err)
	}
	return status
}

// TestDiagnostics compiles every program in testdata/errors/ and compares
// the rendered error report against its .golden file. No toolchain is
// needed.
func TestDiagnostics(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/errors/*.llc")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .llc test files found in testdata/errors/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".llc")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(testFile)
			if err != nil {
				t.Fatalf("reading source: %v", err)
			}
			expected, err := os.ReadFile(strings.TrimSuffix(testFile, ".llc") + ".golden")
			if err != nil {
				t.Fatalf("reading golden file: %v", err)
			}

			asm, err := driver.Compile(string(src))
			if err == nil {
				t.Fatalf("expected compile error, got assembly:\n%s", asm)
			}
			var cerr *driver.Error
			if !errors.As(err, &cerr) {
				t.Fatalf("error %v is %T, want *driver.Error", err, err)
			}

			var buf bytes.Buffer
			if err := diag.Render(&buf, string(src), cerr.Pos.Offset(), cerr.Msg); err != nil {
				t.Fatalf("render: %v", err)
			}
			if got := buf.String(); got != string(expected) {
				t.Errorf("diagnostic mismatch:\ngot:  %q\nwant: %q", got, string(expected))
			}
		})
	}
}
