// Package dtm builds and queries sparse document-term matrices.
package dtm

import "iter"

// Cell is one non-zero entry in a matrix row.
type Cell struct {
	Col   int
	Count int
}

// Matrix is a sparse document-term matrix: one row per document in corpus
// order, one column per vocabulary term in alphabetical order, and cells
// stored only where a count is non-zero. A Matrix is read-only once built;
// derived quantities are recomputed on demand.
type Matrix struct {
	terms []string
	index map[string]int
	rows  [][]Cell
}

// NumDocs returns the number of rows (documents).
func (m *Matrix) NumDocs() int {
	return len(m.rows)
}

// NumTerms returns the number of columns (vocabulary terms).
func (m *Matrix) NumTerms() int {
	return len(m.terms)
}

// Terms returns the vocabulary in column (alphabetical) order.
func (m *Matrix) Terms() []string {
	out := make([]string, len(m.terms))
	copy(out, m.terms)
	return out
}

// Term returns the term at the given column.
func (m *Matrix) Term(col int) string {
	return m.terms[col]
}

// HasTerm reports whether the term survived into the vocabulary.
func (m *Matrix) HasTerm(term string) bool {
	_, ok := m.index[term]
	return ok
}

// Count returns the cell value for (doc, term); zero when the term does not
// occur in the document or is not in the vocabulary.
func (m *Matrix) Count(doc int, term string) int {
	col, ok := m.index[term]
	if !ok || doc < 0 || doc >= len(m.rows) {
		return 0
	}
	for _, c := range m.rows[doc] {
		if c.Col == col {
			return c.Count
		}
	}
	return 0
}

// Row returns the non-zero cells of one document's row, ordered by column.
func (m *Matrix) Row(doc int) []Cell {
	out := make([]Cell, len(m.rows[doc]))
	copy(out, m.rows[doc])
	return out
}

// Column returns the term's per-document count vector in corpus order (the
// term-document view of the matrix). ok is false when the term is not in the
// vocabulary.
func (m *Matrix) Column(term string) ([]int, bool) {
	col, ok := m.index[term]
	if !ok {
		return nil, false
	}
	out := make([]int, len(m.rows))
	for doc, cells := range m.rows {
		for _, c := range cells {
			if c.Col == col {
				out[doc] = c.Count
				break
			}
		}
	}
	return out, true
}

// NonZero iterates every non-zero cell in row-major order, yielding the
// document index and the cell.
func (m *Matrix) NonZero() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for doc, cells := range m.rows {
			for _, c := range cells {
				if !yield(doc, c) {
					return
				}
			}
		}
	}
}

// columnFloats returns one column as a dense float vector.
func (m *Matrix) columnFloats(col int) []float64 {
	out := make([]float64, len(m.rows))
	for doc, cells := range m.rows {
		for _, c := range cells {
			if c.Col == col {
				out[doc] = float64(c.Count)
				break
			}
		}
	}
	return out
}
