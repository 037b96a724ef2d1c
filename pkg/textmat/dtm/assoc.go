package dtm

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cognicore/textmat/pkg/textmat/internalerr"
)

// Association pairs a term with its Pearson correlation against a
// reference term's per-document occurrence pattern.
type Association struct {
	Term        string
	Correlation float64
}

// FindAssociations returns every other vocabulary term whose column
// correlates with the reference term's column at or above minCorrelation,
// ordered by descending coefficient with alphabetical tie-breaks.
//
// A reference term absent from the vocabulary is an error. Candidate
// columns with zero variance have an undefined coefficient and are
// silently excluded.
func (m *Matrix) FindAssociations(term string, minCorrelation float64) ([]Association, error) {
	refCol, ok := m.index[term]
	if !ok {
		return nil, fmt.Errorf("%w: %q", internalerr.ErrTermNotFound, term)
	}

	ref := m.columnFloats(refCol)
	var out []Association
	for col, candidate := range m.terms {
		if col == refCol {
			continue
		}
		r := stat.Correlation(ref, m.columnFloats(col), nil)
		if math.IsNaN(r) || r < minCorrelation {
			continue
		}
		out = append(out, Association{Term: candidate, Correlation: r})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Correlation != out[j].Correlation {
			return out[i].Correlation > out[j].Correlation
		}
		return out[i].Term < out[j].Term
	})
	return out, nil
}

// Correlation returns the Pearson coefficient between two vocabulary
// terms' columns. ok is false when either column has zero variance, in
// which case the coefficient is undefined.
func (m *Matrix) Correlation(a, b string) (r float64, ok bool, err error) {
	colA, found := m.index[a]
	if !found {
		return 0, false, fmt.Errorf("%w: %q", internalerr.ErrTermNotFound, a)
	}
	colB, found := m.index[b]
	if !found {
		return 0, false, fmt.Errorf("%w: %q", internalerr.ErrTermNotFound, b)
	}
	r = stat.Correlation(m.columnFloats(colA), m.columnFloats(colB), nil)
	if math.IsNaN(r) {
		return 0, false, nil
	}
	return r, true, nil
}
