// Package search implements the depth-first word square explorer: the
// per-root recursion that extends a partial puzzle row by row, pruning
// against a prefix index and skipping dead-end prefixes discovered
// earlier in the same recursion frame.
package search

import (
	"fmt"
	"strings"

	"wordsquares/internal/dictionary"
	"wordsquares/internal/prefixindex"
)

// PrefixSource is the read-only lookup contract the Searcher needs
// from a built prefix index.
type PrefixSource interface {
	Contains(prefix string) bool
	WordsWith(prefix string) []string
}

var _ PrefixSource = (*prefixindex.Index)(nil)

// Searcher explores every word square reachable from a single root
// word, over a shared dictionary and prefix index. It is not safe for
// concurrent use from more than one goroutine -- each worker owns one.
type Searcher struct {
	dictionary dictionary.Dictionary
	prefix     PrefixSource
	n          int
	sink       chan<- []string
	onSolution func()
}

// New builds a Searcher bound to a shared dictionary and prefix index.
// n is the side length (word size) being solved for. onSolution, if
// non-nil, is called once per square sent to sink -- used by the
// caller to keep run metrics current without coupling this package to
// the metrics package.
func New(dict dictionary.Dictionary, prefix PrefixSource, n int, sink chan<- []string, onSolution func()) *Searcher {
	return &Searcher{dictionary: dict, prefix: prefix, n: n, sink: sink, onSolution: onSolution}
}

// Run seeds a puzzle with root as row 0 and explores its entire
// subtree, sending every completed square to the sink.
func (s *Searcher) Run(root string) {
	puzzle := make([]string, 1, s.n)
	puzzle[0] = root
	s.findSolutions(puzzle, 1)
}

// findSolutions extends a puzzle holding exactly rowIndex rows by one
// more row. Precondition: every column prefix of the current puzzle is
// a key of the prefix index.
func (s *Searcher) findSolutions(puzzle []string, rowIndex int) {
	lastRowIndex := s.n - 1
	columns := transposedColumns(puzzle)
	badStarts := make([]string, lastRowIndex)

	for _, word := range s.dictionary {
		if skipWord(word, badStarts, puzzle) {
			continue
		}

		var fit bool
		var lastChecked int
		if rowIndex == lastRowIndex {
			fit, lastChecked = s.lastWordFits(puzzle, word, columns)
		} else {
			fit, lastChecked = s.wordFits(word, columns)
		}

		if !fit {
			if lastChecked < lastRowIndex {
				badStarts[lastChecked] = word[:lastChecked+1]
			}
			continue
		}

		if rowIndex == lastRowIndex {
			solution := make([]string, len(puzzle)+1)
			copy(solution, puzzle)
			solution[len(puzzle)] = word
			s.sink <- solution
			if s.onSolution != nil {
				s.onSolution()
			}
			continue
		}

		puzzle = append(puzzle, word)
		s.findSolutions(puzzle, rowIndex+1)
		puzzle = puzzle[:len(puzzle)-1]
	}
}

// wordFits checks an intermediate-row candidate: every column prefix
// extended by the candidate's letters must still have at least one
// dictionary completion. Returns (true, N-1) on success, or
// (false, c) for the first column c that fails.
func (s *Searcher) wordFits(word string, columns []string) (bool, int) {
	if len(columns) != len(word) {
		panic(fmt.Sprintf("columns [%d] and word [%s] have different lengths", len(columns), word))
	}

	for c := range word {
		candidate := columns[c] + string(word[c])
		if !s.prefix.Contains(candidate) {
			return false, c
		}
	}
	return true, len(word) - 1
}

// lastWordFits checks a final-row candidate: every column, extended by
// the candidate's letters, must now equal a full dictionary word that
// (a) isn't already a row in the puzzle, and (b) -- only for column 0
// -- doesn't sort before row 0 (which would make this square the
// transpose of one already covered when the smaller word is, or was,
// the root).
func (s *Searcher) lastWordFits(puzzle []string, word string, columns []string) (bool, int) {
	for c := range word {
		candidate := columns[c] + string(word[c])

		if c == 0 && wouldBeTransposed(puzzle[0], candidate) {
			return false, c
		}

		if !s.columnCompletes(columns[c], candidate, puzzle) {
			return false, c
		}
	}
	return true, len(word) - 1
}

// columnCompletes reports whether candidate is a genuine, unused
// dictionary completion of partial (the column's prefix before this
// row's letter was appended).
func (s *Searcher) columnCompletes(partial, candidate string, puzzle []string) bool {
	if !s.prefix.Contains(partial) {
		return false
	}
	if !contains(s.prefix.WordsWith(partial), candidate) {
		return false
	}
	return !contains(puzzle, candidate)
}

// skipWord reports whether word should be skipped outright: it's
// already placed in the puzzle, or it starts with a prefix previously
// recorded as a dead end at that column.
func skipWord(word string, badStarts []string, puzzle []string) bool {
	if contains(puzzle, word) {
		return true
	}
	for _, bad := range badStarts {
		if bad != "" && strings.HasPrefix(word, bad) {
			return true
		}
	}
	return false
}

func contains(words []string, target string) bool {
	for _, w := range words {
		if w == target {
			return true
		}
	}
	return false
}
