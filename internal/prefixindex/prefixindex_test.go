package prefixindex

import (
	"errors"
	"sort"
	"testing"

	"wordsquares/internal/dictionary"
)

func TestBuild_EmptyDictionary(t *testing.T) {
	_, err := Build(nil)
	if err != dictionary.ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestBuild_IncorrectWordSize(t *testing.T) {
	_, err := Build(dictionary.Dictionary{"abcdefg", "hijklmno"})
	var sizeErr *dictionary.IncorrectWordSizeError
	if err == nil {
		t.Fatal("expected an IncorrectWordSizeError, got nil")
	}
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected *IncorrectWordSizeError, got %T: %v", err, err)
	}
	if sizeErr.Word != "hijklmno" || sizeErr.Expected != 7 || sizeErr.Actual != 8 {
		t.Fatalf("unexpected error fields: %+v", sizeErr)
	}
}

// TestBuild_Shape checks the built index against a hand-picked
// 6-word, 5-letter dictionary with a known prefix shape.
func TestBuild_Shape(t *testing.T) {
	dict := dictionary.Dictionary{"based", "bases", "bassy", "baton", "belly", "elses"}

	idx, err := Build(dict)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	expected := map[string][]string{
		"ba":    {"based", "bases", "bassy", "baton"},
		"bas":   {"based", "bases", "bassy"},
		"base":  {"based", "bases"},
		"based": {"based"},
		"bases": {"bases"},
		"bass":  {"bassy"},
		"bassy": {"bassy"},
		"bat":   {"baton"},
		"bato":  {"baton"},
		"baton": {"baton"},
		"be":    {"belly"},
		"bel":   {"belly"},
		"bell":  {"belly"},
		"belly": {"belly"},
		"el":    {"elses"},
		"els":   {"elses"},
		"else":  {"elses"},
		"elses": {"elses"},
	}

	for key, want := range expected {
		if !idx.Contains(key) {
			t.Errorf("expected key %q to be present", key)
			continue
		}
		got := append([]string(nil), idx.WordsWith(key)...)
		sort.Strings(got)
		wantSorted := append([]string(nil), want...)
		sort.Strings(wantSorted)
		if !equalStrings(got, wantSorted) {
			t.Errorf("key %q: got %v, want %v", key, got, want)
		}
	}

	for _, letter := range alphabet {
		if idx.Contains(string(letter)) {
			t.Errorf("length-1 prefix %q should not be a key", string(letter))
		}
	}
}

// TestLaws checks the PrefixIndex invariants that must hold for any
// dictionary: every
// word's prefixes of length 2..N are keys containing the word, no key
// has length 1, and every key's value list is non-empty.
func TestLaws(t *testing.T) {
	dict := dictionary.Dictionary{"based", "bases", "bassy", "baton", "belly", "elses"}
	idx, err := Build(dict)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	for _, w := range dict {
		for k := 2; k <= len(w); k++ {
			prefix := w[:k]
			if !idx.Contains(prefix) {
				t.Errorf("expected prefix %q of word %q to be a key", prefix, w)
				continue
			}
			if !equalContains(idx.WordsWith(prefix), w) {
				t.Errorf("expected words_with(%q) to contain %q", prefix, w)
			}
		}
	}

	for key, words := range idx.starts {
		if len(key) == 1 {
			t.Errorf("found length-1 key %q", key)
		}
		if len(words) == 0 {
			t.Errorf("key %q has an empty value list", key)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalContains(words []string, target string) bool {
	for _, w := range words {
		if w == target {
			return true
		}
	}
	return false
}
