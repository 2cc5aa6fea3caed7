// Package main implements the llcc compiler entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/joho/godotenv"

	"github.com/you-not-fish/llcc/internal/diag"
	"github.com/you-not-fish/llcc/internal/driver"
	"github.com/you-not-fish/llcc/internal/syntax"
)

// Compiler flags
var (
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	inputFile  = flag.String("f", "", "Read the program from a file instead of the argument")
	output     = flag.String("o", "", "Output file")
	runProg    = flag.Bool("run", false, "Assemble, run, and print the exit status")
	doctor     = flag.Bool("doctor", false, "Check toolchain")
	version    = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

// ccEnv names the environment variable selecting the C compiler. It may be
// set in a .env file in the working directory.
const ccEnv = "LLCC_CC"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "llcc %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: llcc [options] '<program>'\n")
		fmt.Fprintf(os.Stderr, "       llcc [options] -f <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	tc := loadToolchain()

	if *version {
		fmt.Printf("llcc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	if *doctor {
		os.Exit(runDoctor(tc))
	}

	src, err := readSource(*inputFile, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprintln(os.Stderr, "usage: llcc [options] '<program>'")
		os.Exit(1)
	}

	switch {
	case *emitTokens:
		os.Exit(runEmitTokens(src))
	case *emitAST:
		os.Exit(runEmitAST(src, *astFormat))
	case *runProg:
		os.Exit(runRun(tc, src))
	}
	os.Exit(runCompile(src, *output))
}

// loadToolchain loads envFiles (default .env) into the environment and
// returns the toolchain they select. Variables already set in the
// environment take precedence, and missing files are ignored.
func loadToolchain(envFiles ...string) driver.Toolchain {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: loading environment: %v\n", err)
	}
	return driver.Toolchain{CC: os.Getenv(ccEnv)}
}

// readSource returns the program text from file, or from the single
// positional argument.
func readSource(file string, args []string) (string, error) {
	if file != "" {
		if len(args) != 0 {
			return "", errors.New("unexpected arguments with -f")
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	switch len(args) {
	case 0:
		return "", errors.New("no input program")
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("wrong number of arguments: got %d, want 1", len(args))
}

// reportError prints err for the program src to stderr. Compilation errors
// are rendered against the source line.
func reportError(src string, err error) {
	var cerr *driver.Error
	if errors.As(err, &cerr) {
		diag.Render(os.Stderr, src, cerr.Pos.Offset(), cerr.Msg)
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

// runCompile compiles src and writes the assembly to outFile, or to stdout
// when outFile is empty.
func runCompile(src, outFile string) int {
	asm, err := driver.Compile(src)
	if err != nil {
		reportError(src, err)
		return 1
	}

	if outFile == "" {
		fmt.Print(asm)
		return 0
	}
	if err := os.WriteFile(outFile, []byte(asm), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runEmitTokens scans src and prints all tokens with positions.
func runEmitTokens(src string) int {
	toks, err := driver.Tokenize(src)
	if err != nil {
		reportError(src, err)
		return 1
	}

	fmt.Printf("%-12s %-10s %s\n", "POSITION", "KIND", "TEXT")
	fmt.Printf("%-12s %-10s %s\n", "------------", "----------", "--------------------")
	for _, tok := range toks {
		line, col := tok.Pos.LineCol(src)
		posStr := fmt.Sprintf("%d:%d", line, col)
		fmt.Printf("%-12s %-10s %s\n", posStr, tok.Kind, tok)
	}
	return 0
}

// runEmitAST parses src and prints the AST in the given format.
func runEmitAST(src, format string) int {
	prog, err := driver.Parse(src)
	if err != nil {
		reportError(src, err)
		return 1
	}

	switch format {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, prog); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	case "text":
		syntax.Fprint(os.Stdout, prog)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown AST format %q\n", format)
		return 1
	}
	return 0
}

// runRun compiles, assembles and runs src, printing the exit status.
func runRun(tc driver.Toolchain, src string) int {
	status, err := tc.CompileAndRun(context.Background(), src)
	if err != nil {
		reportError(src, err)
		return 1
	}
	fmt.Println(status)
	return 0
}

// runDoctor checks the toolchain and returns an exit code.
func runDoctor(tc driver.Toolchain) int {
	fmt.Println("llcc Toolchain Doctor")
	fmt.Println("=====================")
	fmt.Println()

	allOk := true

	fmt.Printf("Go:      %s ✓\n", runtime.Version())

	target := runtime.GOOS + "/" + runtime.GOARCH
	fmt.Printf("Host:    %s", target)
	if target == "linux/amd64" {
		fmt.Println(" ✓")
	} else {
		fmt.Println(" (generated code targets linux/amd64; -run unavailable)")
	}

	ccVersion, err := tc.Version(context.Background())
	fmt.Printf("cc:      %s", ccVersion)
	if err == nil {
		fmt.Println(" ✓")
	} else {
		fmt.Printf(" ✗ (%v)\n", err)
		allOk = false
	}

	fmt.Println()
	if allOk {
		fmt.Println("All required tools available!")
		return 0
	}

	fmt.Printf("Install a C compiler or set %s.\n", ccEnv)
	return 1
}
