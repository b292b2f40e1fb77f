// Package dictionary reads and validates the word list a search runs over.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// ErrEmpty is returned when a dictionary has no words at all.
var ErrEmpty = errors.New("dictionary is empty")

// IncorrectWordSizeError reports a word whose length doesn't match the
// dictionary's established word size.
type IncorrectWordSizeError struct {
	Word     string
	Expected int
	Actual   int
}

func (e *IncorrectWordSizeError) Error() string {
	return fmt.Sprintf("word [%s] has incorrect size needed %d found %d", e.Word, e.Expected, e.Actual)
}

// Dictionary is a sorted, duplicate-free (by assumption) list of
// fixed-length lowercase words.
type Dictionary []string

// Load reads a dictionary from a plain-text file, one record per line,
// fields separated by commas. Every non-empty field is lowercased and
// treated as a word; a single line may therefore carry more than one
// word. The result is sorted lexicographically, the order the search
// and the transpose-dedup rule both depend on.
func Load(path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary.Load: %w", err)
	}
	defer f.Close()

	var words Dictionary
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		for _, field := range strings.Split(scanner.Text(), ",") {
			field = strings.ToLower(strings.TrimSpace(field))
			if field != "" {
				words = append(words, field)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary.Load: %w", err)
	}

	sort.Strings(words)
	return words, nil
}

// Validate checks that a dictionary is non-empty and that every word
// shares the length of the first word, returning the common word size.
func Validate(words Dictionary) (int, error) {
	if len(words) == 0 {
		return 0, ErrEmpty
	}

	size := len(words[0])
	for _, w := range words {
		if len(w) != size {
			return 0, &IncorrectWordSizeError{Word: w, Expected: size, Actual: len(w)}
		}
	}
	return size, nil
}
