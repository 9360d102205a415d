// Released under an MIT license. See LICENSE.

package history

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	lines := []string{"let a = 1;", "print a;"}

	err := Save(path, func(w io.Writer) (int, error) {
		return io.WriteString(w, strings.Join(lines, "\n")+"\n")
	})
	if err != nil {
		t.Fatal(err)
	}

	var got []string

	err = Load(path, func(r io.Reader) (int, error) {
		s := bufio.NewScanner(r)
		for s.Scan() {
			got = append(got, s.Text())
		}

		return len(got), s.Err()
	})
	if err != nil {
		t.Fatal(err)
	}

	if strings.Join(got, "|") != strings.Join(lines, "|") {
		t.Fatalf("got %q, want %q", got, lines)
	}
}

func TestMissingFile(t *testing.T) {
	called := false

	err := Load(filepath.Join(t.TempDir(), "missing"), func(r io.Reader) (int, error) {
		called = true

		return 0, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if called {
		t.Fatal("read should not be called for a missing file")
	}
}

func TestDisabled(t *testing.T) {
	fail := func(io.Writer) (int, error) {
		t.Fatal("write should not be called when history is disabled")

		return 0, nil
	}

	if err := Save("", fail); err != nil {
		t.Fatal(err)
	}
}
