// Package tokenize converts cleaned document text into token sequences for
// counting. Tokenizers are pure and deterministic; the sequences they return
// are finite and can be iterated any number of times.
package tokenize

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cognicore/textmat/pkg/textmat/internalerr"
)

// Tokenizer converts one document's text into an ordered token sequence.
type Tokenizer interface {
	Tokens(text string) iter.Seq[string]
}

// Unigram splits text on whitespace boundaries; every word is one token.
// Upstream cleaning is expected to have removed punctuation and digits.
type Unigram struct{}

// Tokens implements Tokenizer.
func (Unigram) Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, word := range strings.Fields(text) {
			if !yield(word) {
				return
			}
		}
	}
}

// NGram emits every contiguous window of N unigrams, joined by a single
// space, preserving left-to-right order. A document of W unigrams yields
// max(0, W-N+1) tokens; N=1 is identical to Unigram.
type NGram struct {
	n int
}

// NewNGram creates an n-gram tokenizer. n must be at least 1.
func NewNGram(n int) (NGram, error) {
	if n < 1 {
		return NGram{}, fmt.Errorf("%w: ngram size %d, want >= 1", internalerr.ErrInvalidConfig, n)
	}
	return NGram{n: n}, nil
}

// N returns the window size.
func (g NGram) N() int {
	return g.n
}

// Tokens implements Tokenizer.
func (g NGram) Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		words := strings.Fields(text)
		for i := 0; i+g.n <= len(words); i++ {
			if !yield(strings.Join(words[i:i+g.n], " ")) {
				return
			}
		}
	}
}
