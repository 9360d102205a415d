// Released under an MIT license. See LICENSE.

// Package ui provides the interactive interfaces for the lox language.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/lox/internal/engine"
	"github.com/michaelmacinnis/lox/internal/system/history"
)

// Runner is the interface for things that want to process lines of lox code.
type Runner interface {
	Run(label, text string) engine.Status
}

// Run launches a line-editing REPL that sends each line to r. It returns
// when the user ends input. Ctrl-C abandons the current line.
func Run(r Runner, prompt, path string) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	if err := history.Load(path, cli.ReadHistory); err != nil {
		return err
	}

	for n := 1; ; n++ {
		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()

			return history.Save(path, cli.WriteHistory)
		default:
			return err
		}

		if line == "" {
			continue
		}

		cli.AppendHistory(line)

		r.Run(label(n), line)
	}
}

// Lines reads lines from in without line editing and sends each one to r.
// The prompt is written to out before each line.
func Lines(r Runner, in io.Reader, out io.Writer, prompt string) error {
	s := bufio.NewScanner(in)

	for n := 1; ; n++ {
		if _, err := io.WriteString(out, prompt); err != nil {
			return err
		}

		if !s.Scan() {
			_, err := io.WriteString(out, "\n")
			if err == nil {
				err = s.Err()
			}

			return err
		}

		r.Run(label(n), s.Text())
	}
}

func label(n int) string {
	return "repl#" + strconv.Itoa(n)
}
