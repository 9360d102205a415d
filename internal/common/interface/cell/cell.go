// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all lox values.
package cell

// I (cell) is the basic unit of storage in lox.
type I interface {
	Equal(c I) bool
	Name() string
}
