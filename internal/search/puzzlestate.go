package search

import "strings"

// transposedColumns returns, for a puzzle of r >= 1 placed rows, the
// N-element vector where element c is the string formed by
// concatenating row[0][c], row[1][c], ..., row[r-1][c] -- the partial
// column prefixes the next candidate row must extend.
func transposedColumns(rows []string) []string {
	width := len(rows[0])
	columns := make([]strings.Builder, width)
	for _, row := range rows {
		for c := 0; c < width; c++ {
			columns[c].WriteByte(row[c])
		}
	}

	result := make([]string, width)
	for c := range columns {
		result[c] = columns[c].String()
	}
	return result
}

// wouldBeTransposed reports whether placing candidateCol0 as column 0
// would produce a solution that is the transpose of one already
// produced (or due to be produced) with candidateCol0's word as root:
// true iff candidateCol0 sorts lexicographically before row0. Ties
// return false; a column 0 equal to row 0 is still rejected by the
// final-row check, because row 0 is already placed in the puzzle.
func wouldBeTransposed(row0, candidateCol0 string) bool {
	return candidateCol0 < row0
}
