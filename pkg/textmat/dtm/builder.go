package dtm

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/cognicore/textmat/pkg/textmat/corpus"
	"github.com/cognicore/textmat/pkg/textmat/internalerr"
	"github.com/cognicore/textmat/pkg/textmat/tokenize"
)

// Bounds restricts the vocabulary at build time. A zero field places no
// restriction on that side; both ends are inclusive. Document frequency is
// the number of documents containing a term at least once; term length is
// measured in characters.
type Bounds struct {
	MinDocFreq int
	MaxDocFreq int
	MinTermLen int
	MaxTermLen int
}

func (b Bounds) validate() error {
	if b.MinDocFreq < 0 || b.MaxDocFreq < 0 || b.MinTermLen < 0 || b.MaxTermLen < 0 {
		return fmt.Errorf("%w: negative bound", internalerr.ErrInvalidBounds)
	}
	if b.MaxDocFreq > 0 && b.MinDocFreq > b.MaxDocFreq {
		return fmt.Errorf("%w: min doc frequency %d > max %d", internalerr.ErrInvalidBounds, b.MinDocFreq, b.MaxDocFreq)
	}
	if b.MaxTermLen > 0 && b.MinTermLen > b.MaxTermLen {
		return fmt.Errorf("%w: min term length %d > max %d", internalerr.ErrInvalidBounds, b.MinTermLen, b.MaxTermLen)
	}
	return nil
}

func (b Bounds) admits(term string, docFreq int) bool {
	if b.MinDocFreq > 0 && docFreq < b.MinDocFreq {
		return false
	}
	if b.MaxDocFreq > 0 && docFreq > b.MaxDocFreq {
		return false
	}
	length := utf8.RuneCountInString(term)
	if b.MinTermLen > 0 && length < b.MinTermLen {
		return false
	}
	if b.MaxTermLen > 0 && length > b.MaxTermLen {
		return false
	}
	return true
}

// Build constructs the sparse term-count matrix for a corpus.
//
// 1. Tokenize every document, accumulating per-document counts and
//    per-term document frequency.
// 2. Drop terms whose document frequency or character length falls outside
//    the bounds.
// 3. Assign surviving terms alphabetical column order, so a given
//    vocabulary always produces the same matrix.
// 4. Emit rows in corpus order holding only non-zero cells.
//
// An empty document yields an all-zero row and an empty corpus yields a
// zero-row matrix; neither is an error. Invalid bounds fail before any
// tokenization work begins.
func Build(c corpus.Corpus, tok tokenize.Tokenizer, bounds Bounds) (*Matrix, error) {
	if err := bounds.validate(); err != nil {
		return nil, err
	}

	docCounts := make([]map[string]int, c.Len())
	docFreq := make(map[string]int)
	for i := 0; i < c.Len(); i++ {
		counts := make(map[string]int)
		for term := range tok.Tokens(c.Doc(i).Text) {
			counts[term]++
		}
		docCounts[i] = counts
		for term := range counts {
			docFreq[term]++
		}
	}

	terms := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if bounds.admits(term, df) {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for col, term := range terms {
		index[term] = col
	}

	rows := make([][]Cell, len(docCounts))
	for doc, counts := range docCounts {
		var cells []Cell
		for term, count := range counts {
			if col, ok := index[term]; ok {
				cells = append(cells, Cell{Col: col, Count: count})
			}
		}
		sort.Slice(cells, func(i, j int) bool { return cells[i].Col < cells[j].Col })
		rows[doc] = cells
	}

	return &Matrix{terms: terms, index: index, rows: rows}, nil
}
