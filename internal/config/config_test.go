package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_NoPathUsesBuiltinDefaults(t *testing.T) {
	d, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if d.Env != "local" || d.SolutionsDestPath != "" || d.NumWorkers != 1 {
		t.Fatalf("unexpected defaults: %+v", d)
	}
}

func TestLoad_MissingFileUsesBuiltinDefaults(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if d.Env != "local" || d.NumWorkers != 1 {
		t.Fatalf("unexpected defaults: %+v", d)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "env: prod\nsolutions_dest_path: out.csv\nnum_workers: 4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if d.Env != "prod" || d.SolutionsDestPath != "out.csv" || d.NumWorkers != 4 {
		t.Fatalf("unexpected defaults: %+v", d)
	}
}
