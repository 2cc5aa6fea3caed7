package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultCC is the C compiler used to assemble and link generated code.
const DefaultCC = "cc"

// Toolchain assembles generated code with a system C compiler and runs the
// resulting executables.
type Toolchain struct {
	CC string // compiler driver; DefaultCC if empty
}

func (tc Toolchain) cc() string {
	if tc.CC == "" {
		return DefaultCC
	}
	return tc.CC
}

// Version returns the first line of the compiler's --version output.
func (tc Toolchain) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, tc.cc(), "--version").Output()
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), nil
}

// Assemble writes asm to a temporary .s file and links it into the
// executable out.
func (tc Toolchain) Assemble(ctx context.Context, asm, out string) error {
	dir, err := os.MkdirTemp("", "llcc")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	sfile := filepath.Join(dir, "out.s")
	if err := os.WriteFile(sfile, []byte(asm), 0o644); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, tc.cc(), "-o", out, sfile)
	if msg, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w\n%s", tc.cc(), err, msg)
	}
	return nil
}

// Run executes bin and returns its exit status. A nonzero status is not an
// error; failing to start or a signal is.
func (tc Toolchain) Run(ctx context.Context, bin string) (int, error) {
	err := exec.CommandContext(ctx, bin).Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// CompileAndRun compiles src, links it in a temporary directory and runs it,
// returning the exit status.
func (tc Toolchain) CompileAndRun(ctx context.Context, src string) (int, error) {
	asm, err := Compile(src)
	if err != nil {
		return -1, err
	}

	dir, err := os.MkdirTemp("", "llcc-run")
	if err != nil {
		return -1, err
	}
	defer os.RemoveAll(dir)

	bin := filepath.Join(dir, "a.out")
	if err := tc.Assemble(ctx, asm, bin); err != nil {
		return -1, err
	}
	return tc.Run(ctx, bin)
}
