package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptionsMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	opts, err := LoadOptions(filepath.Join(dir, "main.lain"))
	if err != nil {
		t.Fatal(err)
	}
	if opts != DefaultOptions() {
		t.Fatalf("expected defaults, got %+v", opts)
	}
}

func TestLoadOptionsReadsYAML(t *testing.T) {
	dir := t.TempDir()
	content := "strictContracts: true\ndisableWidening: true\n"
	if err := os.WriteFile(filepath.Join(dir, optionsFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(filepath.Join(dir, "main.lain"))
	if err != nil {
		t.Fatal(err)
	}
	if !opts.StrictContracts || !opts.DisableWidening {
		t.Fatalf("expected both options set, got %+v", opts)
	}
}
