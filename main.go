// Released under an MIT license. See LICENSE.

/*
Lox is a small dynamically-typed scripting language with lexical scoping
and first-class functions.

	let mut count = 0;
	fn counter() {
	    fn increment() {
	        count++;
	        return count;
	    }
	    return increment;
	}
	let next = counter();
	next();
	print next();

With no arguments and a TTY on stdin, lox starts an interactive session.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/diag"
	"github.com/michaelmacinnis/lox/internal/engine"
	"github.com/michaelmacinnis/lox/internal/reader"
	"github.com/michaelmacinnis/lox/internal/reader/lexer"
	"github.com/michaelmacinnis/lox/internal/system/config"
	"github.com/michaelmacinnis/lox/internal/system/options"
	"github.com/michaelmacinnis/lox/internal/ui"
)

// Exit statuses.
const (
	exitSuccess  = 0
	exitUsage    = 64
	exitStatic   = 65
	exitRuntime  = 70
	exitInternal = 71
	exitIO       = 74
)

func main() {
	fd := os.Stdin.Fd()
	terminal := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	os.Exit(run(os.Args[1:], terminal, os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, terminal bool, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := options.Parse(argv, terminal)
	if err != nil {
		fmt.Fprint(stderr, options.Usage())

		return exitUsage
	}

	c, err := config.Resolve(o.Config, os.Getenv)
	if err != nil {
		fmt.Fprintln(stderr, "lox:", err)

		return exitIO
	}

	log := diag.NewLog(stderr)

	s := engine.New(
		engine.Interactive(o.Interactive && !o.Tokens && !o.AST),
		engine.WithDisplay(c.Display),
		engine.WithLog(log),
		engine.WithMaxDepth(c.MaxDepth),
		engine.WithOutput(stdout),
	)

	if o.Interactive && !o.Tokens && !o.AST {
		if terminal {
			err = ui.Run(s, c.Prompt, c.History)
		} else {
			err = ui.Lines(s, stdin, stdout, c.Prompt)
		}

		if err != nil {
			fmt.Fprintln(stderr, "lox:", err)

			return exitIO
		}

		return exitSuccess
	}

	label, text, err := source(o, stdin)
	if err != nil {
		fmt.Fprintln(stderr, "lox:", err)

		return exitIO
	}

	switch {
	case o.Tokens:
		return tokens(label, text, log, stdout)
	case o.AST:
		return tree(label, text, log, stdout)
	}

	return status(s.Run(label, text))
}

// source returns the program's label and text.
func source(o *options.T, stdin io.Reader) (string, string, error) {
	switch {
	case o.Command != "":
		return "command", o.Command, nil
	case o.Script != "":
		b, err := os.ReadFile(o.Script)

		return o.Script, string(b), err
	}

	b, err := io.ReadAll(stdin)

	return "stdin", string(b), err
}

func status(s engine.Status) int {
	switch s {
	case engine.Success:
		return exitSuccess
	case engine.StaticError:
		return exitStatic
	case engine.RuntimeError:
		return exitRuntime
	case engine.FatalError:
		return exitInternal
	}

	return exitInternal
}

func tokens(label, text string, log *diag.Log, w io.Writer) int {
	for _, t := range lexer.New(label, text, log).Tokens() {
		fmt.Fprintln(w, t)
	}

	if log.Count() > 0 {
		return exitStatic
	}

	return exitSuccess
}

func tree(label, text string, log *diag.Log, w io.Writer) int {
	for _, s := range reader.Read(label, text, log) {
		fmt.Fprintln(w, ast.String(s))
	}

	if log.Count() > 0 {
		return exitStatic
	}

	return exitSuccess
}
