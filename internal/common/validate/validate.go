// Released under an MIT license. See LICENSE.

// Package validate provides helpers for checking call arguments.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
)

// Fixed returns an error if exactly arity arguments were not passed.
func Fixed(actual []cell.I, arity int) error {
	if len(actual) != arity {
		s := Count(arity, "argument", "s")

		return fmt.Errorf("expected %s but got %d", s, len(actual))
	}

	return nil
}

// Count returns n followed by label, pluralized with p when n is not one.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
