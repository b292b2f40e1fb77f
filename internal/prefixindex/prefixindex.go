// Package prefixindex builds and serves the read-only prefix -> words
// mapping the search uses to prune infeasible partial columns in O(1).
package prefixindex

import (
	"strings"

	"wordsquares/internal/dictionary"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Index maps every prefix of length 2..N occurring in a dictionary to
// the ordered list of dictionary words carrying that prefix. Built
// once, never mutated afterward, safe to share by reference across
// every worker goroutine.
type Index struct {
	wordSize int
	starts   map[string][]string
}

// Build constructs an Index from a non-empty, length-validated
// dictionary. It grows prefixes one letter at a time: a length-1 seed
// layer (never retained in the final index), then length-2..N layers
// each derived from the previous one by appending a letter and
// filtering against the words that still match.
//
// The length-1 seed layer is scratch input only: it is never copied
// into the returned index, so length-1 prefixes are never keys. Such a
// key would carry every word starting with that letter and is useless
// to the search, which never queries a prefix shorter than 2.
func Build(words dictionary.Dictionary) (*Index, error) {
	wordSize, err := dictionary.Validate(words)
	if err != nil {
		return nil, err
	}

	seed := make(map[string][]string)
	for _, letter := range alphabet {
		l := string(letter)
		for _, w := range words {
			if strings.HasPrefix(w, l) {
				seed[l] = append(seed[l], w)
			}
		}
	}

	layer := seed
	starts := make(map[string][]string)

	for k := 2; k <= wordSize; k++ {
		next := make(map[string][]string)

		for _, letter := range alphabet {
			l := string(letter)
			for prevStart, candidates := range layer {
				if len(prevStart) != k-1 {
					continue
				}
				newStart := prevStart + l
				for _, w := range candidates {
					if strings.HasPrefix(w, newStart) {
						next[newStart] = append(next[newStart], w)
					}
				}
			}
		}

		for k2, v := range next {
			starts[k2] = v
		}
		layer = next
	}

	return &Index{wordSize: wordSize, starts: starts}, nil
}

// Contains reports whether at least one dictionary word starts with
// prefix. False for length-1 prefixes by construction, though the
// search never queries one (N >= 2 guarantees this).
func (idx *Index) Contains(prefix string) bool {
	_, ok := idx.starts[prefix]
	return ok
}

// WordsWith returns the words carrying prefix (length 2..N). Intended
// use is the last-row check where prefix equals a full column.
func (idx *Index) WordsWith(prefix string) []string {
	return idx.starts[prefix]
}

// Len reports how many prefix keys the index holds, used by
// workerpool construction to reject an empty index.
func (idx *Index) Len() int {
	return len(idx.starts)
}
