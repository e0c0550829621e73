package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	lox "github.com/nt54hamnghi/golox"
)

const (
	appName     = "golox"
	historyFile = ".golox_history"
	prompt      = "> "
)

// Process exit codes. Lexical and syntax failures share a code; runtime
// and I/O failures each have their own. Internal defects are distinct
// from user-facing runtime errors.
const (
	exitOK      = 0
	exitDefect  = 1
	exitUsage   = 2
	exitSyntax  = 65
	exitRuntime = 70
	exitIO      = 74
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(exitUsage)
	}

	cmd := os.Args[1]
	switch cmd {
	case "tokenize":
		os.Exit(cmdTokenize(os.Args[2:]))
	case "parse":
		os.Exit(cmdParse(os.Args[2:]))
	case "evaluate":
		os.Exit(cmdEvaluate(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(lox.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(exitOK)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(exitUsage)
	}
}

func usage() {
	fmt.Printf(`golox %s

Usage:
  %s tokenize <file.lox>             Print the token stream.
  %s parse [-pretty] <file.lox>      Print the parsed expression in prefix form.
  %s evaluate [-pretty] <file.lox>   Evaluate the expression and print the value.
  %s repl                            Start the REPL.
  %s version                         Print the version.

`, lox.Version, appName, appName, appName, appName, appName)
}

func readSource(file string) (string, int) {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return "", exitIO
	}
	return string(src), exitOK
}

// -----------------------------------------------------------------------------
// tokenize
// -----------------------------------------------------------------------------

func cmdTokenize(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s tokenize <file.lox>\n", appName)
		return exitUsage
	}

	src, code := readSource(args[0])
	if code != exitOK {
		return code
	}

	// Pull tokens one at a time so tokens and errors appear in stream
	// order. Lexical errors are non-fatal per occurrence, but any of them
	// fails the run.
	lex := lox.NewLexer(src)
	hadError := false
	for {
		tok, rep := lex.Next()
		if rep != nil {
			hadError = true
			fmt.Fprintln(os.Stderr, rep.Error())
			continue
		}
		fmt.Println(tok)
		if tok.Type == lox.EOF {
			break
		}
	}

	if hadError {
		return exitSyntax
	}
	return exitOK
}

// -----------------------------------------------------------------------------
// parse
// -----------------------------------------------------------------------------

func cmdParse(args []string) int {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	pretty := fs.Bool("pretty", false, "render errors with source context")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s parse [-pretty] <file.lox>\n", appName)
		return exitUsage
	}

	src, code := readSource(fs.Arg(0))
	if code != exitOK {
		return code
	}

	expr, err := lox.ParseSource(src)
	if err != nil {
		printSourceError(err, src, *pretty)
		return exitSyntax
	}
	fmt.Println(lox.PrintExpr(expr))
	return exitOK
}

// -----------------------------------------------------------------------------
// evaluate
// -----------------------------------------------------------------------------

func cmdEvaluate(args []string) int {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	pretty := fs.Bool("pretty", false, "render errors with source context")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s evaluate [-pretty] <file.lox>\n", appName)
		return exitUsage
	}

	src, code := readSource(fs.Arg(0))
	if code != exitOK {
		return code
	}

	expr, perr := lox.ParseSource(src)
	if perr != nil {
		printSourceError(perr, src, *pretty)
		return exitSyntax
	}

	val, err := lox.NewInterpreter().Evaluate(expr)
	if err != nil {
		printSourceError(err, src, *pretty)
		if _, ok := err.(*lox.InternalError); ok {
			return exitDefect
		}
		return exitRuntime
	}
	fmt.Println(val)
	return exitOK
}

func printSourceError(err error, src string, pretty bool) {
	if pretty {
		fmt.Fprint(os.Stderr, lox.PrettyError(err, src))
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Printf("golox %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", lox.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil { // io.EOF on Ctrl+D
			fmt.Println()
			return exitOK
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == ":quit" {
			return exitOK
		}
		ln.AppendHistory(line)

		val, err := lox.EvalSource(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(lox.PrettyError(err, line)))
			continue
		}
		fmt.Println(green(val.String()))
	}
}
