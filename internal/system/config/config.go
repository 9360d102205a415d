// Released under an MIT license. See LICENSE.

// Package config loads lox's settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variable naming a settings file.
const Variable = "LOX_CONFIG"

// T (config) holds settings for the driver and interactive sessions.
type T struct {
	Display  bool   `yaml:"display"`   // Show the value of expression statements in the REPL.
	History  string `yaml:"history"`   // REPL history file. Empty disables history.
	MaxDepth int    `yaml:"max-depth"` // Limit on nested calls. Zero uses the default.
	Prompt   string `yaml:"prompt"`
}

type config = T

// Default returns the settings used when there is no settings file.
func Default(getenv func(string) string) *T {
	c := &config{
		Display: true,
		Prompt:  "> ",
	}

	if home := getenv("HOME"); home != "" {
		c.History = filepath.Join(home, ".lox_history")
	}

	return c
}

// Load reads settings from path. Settings not in the file keep their defaults.
func Load(path string, getenv func(string) string) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := Default(getenv)

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)

	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if c.MaxDepth < 0 {
		return nil, fmt.Errorf("config: %s: max-depth must not be negative", path)
	}

	return c, nil
}

// Locate returns the settings file to use and whether it must exist.
// An explicit path wins, then $LOX_CONFIG, then ~/.loxrc.yaml.
func Locate(explicit string, getenv func(string) string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}

	if path := getenv(Variable); path != "" {
		return path, true
	}

	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".loxrc.yaml"), false
	}

	return "", false
}

// Resolve locates and loads the settings file. A missing optional file
// yields the defaults.
func Resolve(explicit string, getenv func(string) string) (*T, error) {
	path, required := Locate(explicit, getenv)
	if path == "" {
		return Default(getenv), nil
	}

	c, err := Load(path, getenv)
	if err != nil && !required && errors.Is(err, fs.ErrNotExist) {
		return Default(getenv), nil
	}

	return c, err
}
