// Released under an MIT license. See LICENSE.

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func environment(vars map[string]string) func(string) string {
	return func(k string) string {
		return vars[k]
	}
}

func write(t *testing.T, dir, name, text string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestDefault(t *testing.T) {
	c := Default(environment(map[string]string{"HOME": "/home/lox"}))

	if !c.Display || c.Prompt != "> " || c.MaxDepth != 0 {
		t.Fatalf("unexpected defaults %+v", *c)
	}

	if c.History != filepath.Join("/home/lox", ".lox_history") {
		t.Fatalf("unexpected history path %q", c.History)
	}

	if c := Default(environment(nil)); c.History != "" {
		t.Fatalf("history should be disabled without $HOME, got %q", c.History)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "lox.yaml", "prompt: \"lox> \"\nmax-depth: 100\ndisplay: false\n")

	c, err := Load(path, environment(map[string]string{"HOME": dir}))
	if err != nil {
		t.Fatal(err)
	}

	if c.Prompt != "lox> " || c.MaxDepth != 100 || c.Display {
		t.Fatalf("unexpected settings %+v", *c)
	}

	if c.History != filepath.Join(dir, ".lox_history") {
		t.Fatalf("history should keep its default, got %q", c.History)
	}
}

func TestLoadDisablesHistory(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "lox.yaml", "history: \"\"\n")

	c, err := Load(path, environment(map[string]string{"HOME": dir}))
	if err != nil {
		t.Fatal(err)
	}

	if c.History != "" {
		t.Fatalf("expected history to be disabled, got %q", c.History)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := write(t, t.TempDir(), "lox.yaml", "")

	c, err := Load(path, environment(nil))
	if err != nil {
		t.Fatal(err)
	}

	if c.Prompt != "> " {
		t.Fatalf("expected defaults, got %+v", *c)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := write(t, t.TempDir(), "lox.yaml", "colour: blue\n")

	if _, err := Load(path, environment(nil)); err == nil {
		t.Fatal("expected an error for an unknown field")
	}
}

func TestLoadRejectsNegativeDepth(t *testing.T) {
	path := write(t, t.TempDir(), "lox.yaml", "max-depth: -1\n")

	if _, err := Load(path, environment(nil)); err == nil {
		t.Fatal("expected an error for a negative max-depth")
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		explicit string
		vars     map[string]string
		path     string
		required bool
	}{
		{"a.yaml", map[string]string{Variable: "b.yaml", "HOME": "/h"}, "a.yaml", true},
		{"", map[string]string{Variable: "b.yaml", "HOME": "/h"}, "b.yaml", true},
		{"", map[string]string{"HOME": "/h"}, filepath.Join("/h", ".loxrc.yaml"), false},
		{"", nil, "", false},
	}

	for _, tc := range tests {
		path, required := Locate(tc.explicit, environment(tc.vars))
		if path != tc.path || required != tc.required {
			t.Errorf("Locate(%q, %v) = %q, %v; want %q, %v",
				tc.explicit, tc.vars, path, required, tc.path, tc.required)
		}
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	c, err := Resolve("", environment(map[string]string{"HOME": dir}))
	if err != nil {
		t.Fatalf("a missing default file should not be an error: %v", err)
	}

	if c.Prompt != "> " {
		t.Fatalf("expected defaults, got %+v", *c)
	}

	_, err = Resolve(filepath.Join(dir, "missing.yaml"), environment(nil))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("a missing explicit file should be an error, got %v", err)
	}

	write(t, dir, ".loxrc.yaml", "prompt: \">> \"\n")

	c, err = Resolve("", environment(map[string]string{"HOME": dir}))
	if err != nil {
		t.Fatal(err)
	}

	if c.Prompt != ">> " {
		t.Fatalf("expected the home settings file to be read, got %+v", *c)
	}
}
