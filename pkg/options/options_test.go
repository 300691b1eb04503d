package options

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load("/nonexistent/path/opts.yaml"); err == nil {
		t.Fatal("expected error for nonexistent path")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.yaml")
	content := `
min_level: 4
min_indexed_level: 10
fanout: 16
epsilon: 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write options file: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.MinLevel != 4 {
		t.Errorf("min_level: got %d", opts.MinLevel)
	}
	if opts.MinIndexedLevel != 10 {
		t.Errorf("min_indexed_level: got %d", opts.MinIndexedLevel)
	}
	if opts.Fanout != 16 {
		t.Errorf("fanout: got %d", opts.Fanout)
	}
	if opts.MaxFullyAllocatedLevel != Defaults().MaxFullyAllocatedLevel {
		t.Errorf("max_fully_allocated_level default not preserved: got %d", opts.MaxFullyAllocatedLevel)
	}
}

func TestValidateRejectsLowIndexThreshold(t *testing.T) {
	opts := Defaults()
	opts.MinIndexedLevel = opts.MinLevel
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error when min_indexed_level does not exceed min_level")
	}
}

func TestValidateRejectsWideEpsilon(t *testing.T) {
	opts := Defaults()
	opts.MinLevel = 1
	opts.MinIndexedLevel = 2
	opts.Epsilon = 4
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error when 2*epsilon >= 2^min_indexed_level")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("Defaults() must validate: %v", err)
	}
}
