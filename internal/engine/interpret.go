// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"

	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/common"
	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
	"github.com/michaelmacinnis/lox/internal/common/interface/truth"
	"github.com/michaelmacinnis/lox/internal/common/type/env"
	"github.com/michaelmacinnis/lox/internal/common/type/null"
	"github.com/michaelmacinnis/lox/internal/diag"
)

// returned carries the value of a return statement out to the nearest call.
// Statements that run to completion produce a nil *returned.
type returned struct {
	value cell.I
}

// block runs ss in the env e and then restores the current env.
func (s *engine) block(ss []ast.Stmt, e *env.T) (*returned, error) {
	previous := s.current
	s.current = e

	defer func() {
		s.current = previous
	}()

	for _, st := range ss {
		r, err := s.execute(st)
		if err != nil || r != nil {
			return r, err
		}
	}

	return nil, nil
}

func (s *engine) execute(st ast.Stmt) (*returned, error) {
	switch st := st.(type) {
	case *ast.Block:
		return s.block(st.Statements, env.New(s.current))

	case *ast.Class:
		return nil, fault(diag.Unsupported, st.Name, "classes are not supported")

	case *ast.ExpressionStmt:
		_, err := s.evaluate(st.Expression)

		return nil, err

	case *ast.Function:
		s.current.Define(st.Name.Value(), &Closure{decl: st, scope: s.current}, false)

	case *ast.If:
		c, err := s.evaluate(st.Condition)
		if err != nil {
			return nil, err
		}

		if truth.Value(c) {
			return s.execute(st.Then)
		}

		if st.Else != nil {
			return s.execute(st.Else)
		}

	case *ast.Let:
		v := null.Nil

		if st.Initializer != nil {
			var err error

			v, err = s.evaluate(st.Initializer)
			if err != nil {
				return nil, err
			}
		}

		s.current.Define(st.Name.Value(), v, st.Mutable)

	case *ast.Print:
		v, err := s.evaluate(st.Expression)
		if err != nil {
			return nil, err
		}

		return nil, s.show(v)

	case *ast.Return:
		v := null.Nil

		if st.Value != nil {
			var err error

			v, err = s.evaluate(st.Value)
			if err != nil {
				return nil, err
			}
		}

		return &returned{value: v}, nil

	case *ast.While:
		for {
			c, err := s.evaluate(st.Condition)
			if err != nil {
				return nil, err
			}

			if !truth.Value(c) {
				break
			}

			r, err := s.execute(st.Body)
			if err != nil || r != nil {
				return r, err
			}
		}
	}

	return nil, nil
}

func (s *engine) show(v cell.I) error {
	_, err := fmt.Fprintln(s.stdout, common.String(v))

	return err
}

// topLevel executes st. In an interactive session the value of a top-level
// expression statement is displayed unless it is nil.
func (s *engine) topLevel(st ast.Stmt) error {
	es, ok := st.(*ast.ExpressionStmt)
	if !ok || !s.interactive || !s.display {
		_, err := s.execute(st)

		return err
	}

	v, err := s.evaluate(es.Expression)
	if err != nil || null.Is(v) {
		return err
	}

	return s.show(v)
}
