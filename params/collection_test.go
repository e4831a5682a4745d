package params

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewCollection_ShapeValidation(t *testing.T) {
	// one data row for two parameter names
	_, err := NewCollection("c", []string{"p1", "p2"}, []string{"m1"}, [][]float64{{1}})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("row count mismatch: expected ErrShapeMismatch, got %v", err)
	}

	// second row too narrow for two media
	_, err = NewCollection("c", []string{"p1", "p2"}, []string{"m1", "m2"}, [][]float64{{1, 2}, {3}})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("row width mismatch: expected ErrShapeMismatch, got %v", err)
	}

	c, err := NewCollection("c", []string{"p1"}, []string{"m1", "m2"}, [][]float64{{1, 2}})
	if err != nil {
		t.Fatalf("valid shape rejected: %v", err)
	}
	if c.Name != "c" {
		t.Errorf("Name = %q, want %q", c.Name, "c")
	}
}

func TestLoad(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "vqm.csv")
	content := "parameter,m3,m1,m4,m2\np1,9,1,7,3\np2,0.5,0.25,0.75,1.5\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}

	c, err := Load(p)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Name != "vqm" {
		t.Errorf("Name = %q, want file basename %q", c.Name, "vqm")
	}
	if !reflect.DeepEqual(c.ParNames, []string{"p1", "p2"}) {
		t.Errorf("ParNames = %v", c.ParNames)
	}
	if !reflect.DeepEqual(c.MediaNames, []string{"m3", "m1", "m4", "m2"}) {
		t.Errorf("MediaNames = %v", c.MediaNames)
	}
	if !reflect.DeepEqual(c.Data[0], []float64{9, 1, 7, 3}) {
		t.Errorf("Data[0] = %v", c.Data[0])
	}
}

func TestRead_Malformed(t *testing.T) {
	if _, err := Read("c", strings.NewReader("parameter\n")); err == nil {
		t.Error("expected error for header without media columns")
	}
	if _, err := Read("c", strings.NewReader("parameter,m1\np1,abc\n")); err == nil {
		t.Error("expected error for non-numeric value")
	}
}
