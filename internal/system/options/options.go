// Released under an MIT license. See LICENSE.

// Package options parses lox's command line.
package options

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
)

// Version is reported by -v.
const Version = "lox 0.1.0"

const usage = `lox

Usage:
  lox [options] SCRIPT
  lox [options] -c COMMAND
  lox [options] [-is]
  lox -h
  lox -v

Arguments:
  SCRIPT     Path to lox script.

Options:
  -c, --command=COMMAND  Run the specified command.
  --config=FILE          Read settings from FILE.
  --tokens               Print tokens instead of running.
  --ast                  Print the syntax tree instead of running.
  -i, --interactive      Invert interactive mode.
  -s, --stdin            Read the program from stdin.
  -h, --help             Display this help.
  -v, --version          Print lox version.

If lox's stdin is a TTY, and lox was invoked with no SCRIPT or COMMAND,
an interactive session is started. Otherwise, the program is read in full
and run once.
`

// T (options) holds the parsed command line.
type T struct {
	AST         bool
	Command     string
	Config      string
	Interactive bool
	Script      string
	Stdin       bool
	Tokens      bool
}

type options = T

// Parse parses argv, which does not include the program name. Terminal
// reports whether stdin is a TTY. Help and version requests print and exit.
// Usage errors are returned.
func Parse(argv []string, terminal bool) (*T, error) {
	p := &docopt.Parser{
		HelpHandler: help,
	}

	return parse(p, argv, terminal)
}

// Usage returns the usage text.
func Usage() string {
	return usage
}

func help(err error, usage string) {
	if err != nil {
		return
	}

	fmt.Println(usage)
	os.Exit(0)
}

func parse(p *docopt.Parser, argv []string, terminal bool) (*T, error) {
	if argv == nil {
		// A nil argv tells docopt to use os.Args.
		argv = []string{}
	}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &options{}

	o.AST, _ = opts.Bool("--ast")
	o.Command, _ = opts.String("--command")
	o.Config, _ = opts.String("--config")
	o.Script, _ = opts.String("SCRIPT")
	o.Stdin, _ = opts.Bool("--stdin")
	o.Tokens, _ = opts.Bool("--tokens")

	if o.Script == "" && o.Command == "" && !o.Stdin {
		o.Interactive = terminal
	}

	invert, _ := opts.Bool("--interactive")
	o.Interactive = o.Interactive != invert

	return o, nil
}
