package dtm

import "sort"

// TermCount pairs a term with its total occurrence count over all documents.
type TermCount struct {
	Term  string
	Count int
}

// TermFrequencies returns the total occurrence count per vocabulary term,
// the column-wise sum of the matrix.
func (m *Matrix) TermFrequencies() map[string]int {
	freqs := make(map[string]int, len(m.terms))
	for _, term := range m.terms {
		freqs[term] = 0
	}
	for _, cells := range m.rows {
		for _, c := range cells {
			freqs[m.terms[c.Col]] += c.Count
		}
	}
	return freqs
}

// MostFrequent returns the k terms with the highest total counts, ties
// broken by alphabetical order of the term.
func (m *Matrix) MostFrequent(k int) []TermCount {
	ranked := m.ranked(func(a, b TermCount) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Term < b.Term
	})
	return truncate(ranked, k)
}

// LeastFrequent returns the k terms with the lowest total counts, ties
// broken by alphabetical order of the term.
func (m *Matrix) LeastFrequent(k int) []TermCount {
	ranked := m.ranked(func(a, b TermCount) bool {
		if a.Count != b.Count {
			return a.Count < b.Count
		}
		return a.Term < b.Term
	})
	return truncate(ranked, k)
}

// FindFrequentTerms returns every term whose total count is at least
// minCount, sorted alphabetically. The alphabetical order (not frequency
// order) is part of the contract.
func (m *Matrix) FindFrequentTerms(minCount int) []string {
	freqs := m.TermFrequencies()
	var out []string
	for _, term := range m.terms {
		if freqs[term] >= minCount {
			out = append(out, term)
		}
	}
	// m.terms is already alphabetical, so out is too
	return out
}

func (m *Matrix) ranked(less func(a, b TermCount) bool) []TermCount {
	freqs := m.TermFrequencies()
	out := make([]TermCount, 0, len(m.terms))
	for _, term := range m.terms {
		out = append(out, TermCount{Term: term, Count: freqs[term]})
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func truncate(ranked []TermCount, k int) []TermCount {
	if k <= 0 {
		return nil
	}
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}
