// Package report builds JSON-ready summaries of a document-term matrix for
// downstream visualization and reporting tools.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/textmat/pkg/textmat/dtm"
)

// Builder constructs reports with monotonically increasing ULID ids.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// TermCount pairs a term with its total count.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Frequency summarizes term frequencies over a matrix.
type Frequency struct {
	ID          string      `json:"id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Docs        int         `json:"docs"`
	Terms       int         `json:"terms"`
	Top         []TermCount `json:"top_terms,omitempty"`
	Frequent    []string    `json:"frequent_terms,omitempty"`
}

// Frequency builds a frequency report: the top k terms by count plus every
// term occurring at least minCount times (alphabetical).
func (b *Builder) Frequency(m *dtm.Matrix, topK, minCount int) Frequency {
	rep := Frequency{
		ID:          b.newID(),
		GeneratedAt: time.Now().UTC(),
		Docs:        m.NumDocs(),
		Terms:       m.NumTerms(),
		Frequent:    m.FindFrequentTerms(minCount),
	}
	for _, tc := range m.MostFrequent(topK) {
		rep.Top = append(rep.Top, TermCount{Term: tc.Term, Count: tc.Count})
	}
	return rep
}

// Match is one associated term in an association report.
type Match struct {
	Term        string  `json:"term"`
	Correlation float64 `json:"correlation"`
}

// Associations summarizes the terms correlated with a reference term.
type Associations struct {
	ID             string    `json:"id"`
	GeneratedAt    time.Time `json:"generated_at"`
	Term           string    `json:"term"`
	MinCorrelation float64   `json:"min_correlation"`
	Matches        []Match   `json:"matches,omitempty"`
}

// Associations builds an association report for one reference term.
func (b *Builder) Associations(m *dtm.Matrix, term string, minCorrelation float64) (Associations, error) {
	found, err := m.FindAssociations(term, minCorrelation)
	if err != nil {
		return Associations{}, err
	}

	rep := Associations{
		ID:             b.newID(),
		GeneratedAt:    time.Now().UTC(),
		Term:           term,
		MinCorrelation: minCorrelation,
	}
	for _, a := range found {
		rep.Matches = append(rep.Matches, Match{Term: a.Term, Correlation: a.Correlation})
	}
	return rep, nil
}

func (b *Builder) newID() string {
	return ulid.MustNew(ulid.Now(), b.entropy).String()
}
