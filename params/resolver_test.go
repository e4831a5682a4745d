package params

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func mustCollection(t *testing.T, name string, parNames, mediaNames []string, data [][]float64) *Collection {
	t.Helper()
	c, err := NewCollection(name, parNames, mediaNames, data)
	if err != nil {
		t.Fatalf("NewCollection(%q) failed: %v", name, err)
	}
	return c
}

// TestResolve_FirstMatchWins verifies that when the same parameter name
// exists in two collections with different data, resolution always returns
// the earlier collection's row.
func TestResolve_FirstMatchWins(t *testing.T) {
	a := mustCollection(t, "a", []string{"shared"}, []string{"m1"}, [][]float64{{1}})
	b := mustCollection(t, "b", []string{"shared", "only_b"}, []string{"m1"}, [][]float64{{2}, {3}})
	r := NewResolver([]*Collection{a, b})

	for range 5 {
		c, row, err := r.Resolve("shared")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if c != a || row != 0 {
			t.Fatalf("Resolve(shared) = %q row %d, want collection a row 0", c.Name, row)
		}
	}

	c, row, err := r.Resolve("only_b")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if c != b || row != 1 {
		t.Errorf("Resolve(only_b) = %q row %d, want collection b row 1", c.Name, row)
	}
}

func TestResolve_NotFound(t *testing.T) {
	a := mustCollection(t, "a", []string{"p1"}, []string{"m1"}, [][]float64{{1}})
	r := NewResolver([]*Collection{a})

	_, _, err := r.Resolve("missing")
	if !errors.Is(err, ErrParameterNotFound) {
		t.Fatalf("expected ErrParameterNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error should name the parameter, got: %v", err)
	}
}

func TestAllNames_KeepsDuplicates(t *testing.T) {
	a := mustCollection(t, "a", []string{"p1", "p2"}, []string{"m1"}, [][]float64{{1}, {2}})
	b := mustCollection(t, "b", []string{"p2", "p3"}, []string{"m1"}, [][]float64{{3}, {4}})

	got := AllNames([]*Collection{a, b})
	want := []string{"p1", "p2", "p2", "p3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllNames = %v, want %v", got, want)
	}
}

// TestResolve_LogsShadowedDuplicates checks that a debug-enabled logger
// surfaces the hidden-shadowing policy.
func TestResolve_LogsShadowedDuplicates(t *testing.T) {
	a := mustCollection(t, "first", []string{"shared"}, []string{"m1"}, [][]float64{{1}})
	b := mustCollection(t, "second", []string{"shared"}, []string{"m1"}, [][]float64{{2}})

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	r := NewResolver([]*Collection{a, b}).WithLogger(log)

	if _, _, err := r.Resolve("shared"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "shared") || !strings.Contains(out, "second") {
		t.Errorf("expected shadow warning naming the parameter and losing collection, got: %s", out)
	}

	// Without a logger nothing is reported and resolution still works.
	buf.Reset()
	r2 := NewResolver([]*Collection{a, b})
	if _, _, err := r2.Resolve("shared"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output without logger: %s", buf.String())
	}
}
