// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"
	"math"

	"github.com/michaelmacinnis/lox/internal/common"
	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
	"github.com/michaelmacinnis/lox/internal/common/type/null"
	"github.com/michaelmacinnis/lox/internal/common/type/num"
)

// Builtins returns the functions bound in every session's global env.
func Builtins() map[string]*Builtin {
	return map[string]*Builtin{
		"clock":   {arity: 0, fn: elapsed},
		"println": {arity: 1, fn: printLine},
		"scope":   {arity: 1, fn: scope},
	}
}

// Constants returns the values bound in every session's global env.
func Constants() map[string]cell.I {
	return map[string]cell.I{
		"MAX_NUMBER": num.New(math.MaxFloat64),
	}
}

func elapsed(s *T, _ []cell.I) (cell.I, error) {
	return num.New(s.clock()), nil
}

func printLine(s *T, args []cell.I) (cell.I, error) {
	_, err := fmt.Fprintln(s.stdout, common.String(args[0]))

	return null.Nil, err
}

// scope prints the bindings in the current env and up to depth-1 enclosing envs.
func scope(s *T, args []cell.I) (cell.I, error) {
	depth := 1
	if num.Is(args[0]) {
		depth = int(num.To(args[0]).Float64())
	}

	e := s.current

	for i := 0; e != nil && i < depth; i++ {
		for _, k := range e.Names() {
			v := e.Lookup(k).Get()

			_, err := fmt.Fprintf(s.stdout, "[DEBUG] [%d] %s = %s\n", i, k, common.String(v))
			if err != nil {
				return nil, err
			}
		}

		e = e.Enclosing()
	}

	return null.Nil, nil
}
