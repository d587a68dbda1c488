/*
File: tjscript/cmd/tj/main.go

Package main is the entry point for the tj interpreter: reads one .tj
source file, drives it through interp.Interpreter, and converts the
result to an exit code. Flag parsing follows the teacher's own
main/main.go for the --help/--version surface, but through
github.com/pborman/getopt instead of hand-rolled os.Args scanning, and
diagnostics are colored via github.com/fatih/color exactly as the teacher
colors its [FILE ERROR]/[PARSE ERROR]/[RUNTIME ERROR] output.
*/
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/pborman/getopt"

	"github.com/nsethi-dev/tjscript/interp"
	"github.com/nsethi-dev/tjscript/lexer"
)

// VERSION is the interpreter's reported version.
var VERSION = "v1.0.0"

// defaultProgramFile is used when no positional argument is given.
const defaultProgramFile = "myprog.tj"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	var showHelp, showVersion, dumpEnv bool
	getopt.BoolVarLong(&showHelp, "help", 'h', "display this help message")
	getopt.BoolVarLong(&showVersion, "version", 'v', "display version information")
	getopt.BoolVarLong(&dumpEnv, "dump-env", 0, "pretty-print the final environment to stderr after a successful run")
	getopt.SetParameters("[PROGRAM-FILE]")
	getopt.Parse()

	if showHelp {
		printHelp()
		os.Exit(0)
	}
	if showVersion {
		printVersion()
		os.Exit(0)
	}

	programFile := defaultProgramFile
	if args := getopt.Args(); len(args) > 0 {
		programFile = args[0]
	}

	os.Exit(run(programFile, dumpEnv))
}

// run executes programFile and returns the process exit code, recovering
// from any unexpected panic as a last line of defense - mirroring the
// teacher's executeFileWithRecovery - since every expected failure path
// already returns an ordinary error instead of panicking.
func run(programFile string, dumpEnv bool) (code int) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "ERR!  internal error: %v\n", r)
			code = 1
		}
	}()

	source, err := os.ReadFile(programFile)
	if err != nil {
		redColor.Fprintf(os.Stderr, "ERR!  could not read %q: %v\n", programFile, err)
		return 1
	}

	in := interp.NewLineReader(os.Stdin, os.Stdout)
	defer in.Close()

	it := interp.New(lexer.NewCharSource(source), os.Stdout, in)
	if err := it.Run(); err != nil {
		redColor.Fprintf(os.Stderr, "ERR! %v\n", err)
		return 1
	}

	if dumpEnv {
		fmt.Fprintln(os.Stderr, repr.String(it.Env.All(), repr.Indent("  ")))
	}
	return 0
}

func printHelp() {
	cyanColor.Println("tj - an interpreter for the tj scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  tj [PROGRAM-FILE]        Execute a .tj program (default: " + defaultProgramFile + ")")
	fmt.Println("  tj --help                Display this help message")
	fmt.Println("  tj --version             Display version information")
	fmt.Println("  tj --dump-env [PROGRAM-FILE]   Execute PROGRAM-FILE, then dump the final environment to stderr")
}

func printVersion() {
	cyanColor.Printf("tj version %s\n", VERSION)
}
