package solutionio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestToFile_WritesCommaJoinedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.csv")

	w, err := ToFile(path)
	if err != nil {
		t.Fatalf("ToFile returned error: %v", err)
	}

	if err := w.Write([]string{"abc", "def", "ghi"}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if err := w.Write([]string{"adg", "beh", "cfi"}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}

	want := "abc,def,ghi\nadg,beh,cfi\n"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "solutions.csv")
	if _, err := ToFile(path); err == nil {
		t.Fatal("expected an error for a nonexistent directory")
	}
}
