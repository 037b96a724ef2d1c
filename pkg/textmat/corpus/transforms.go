package corpus

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/textmat/pkg/textmat/internalerr"
)

// Lowercase maps every rune to its lower-case form.
func Lowercase(text string) string {
	return strings.ToLower(text)
}

// StripPunct replaces punctuation and symbol runes with spaces.
func StripPunct(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, text)
}

// StripDigits replaces digit runes with spaces.
func StripDigits(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return ' '
		}
		return r
	}, text)
}

// CollapseWhitespace trims the text and collapses runs of whitespace to a
// single space.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// diacritic folding: decompose, drop combining marks, recompose
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldDiacritics removes combining marks so that accented characters fold
// to their base form ("café" becomes "cafe").
func FoldDiacritics(text string) string {
	folded, _, err := transform.String(foldChain, text)
	if err != nil {
		return text
	}
	return folded
}

// RemoveStopwords returns a transform that drops every whitespace-separated
// word found in the given stopword list. Matching is case-sensitive, so the
// list should be lower-cased when the pipeline lower-cases first.
func RemoveStopwords(stopwords []string) Transform {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[w] = struct{}{}
	}
	return func(text string) string {
		var kept []string
		for _, word := range strings.Fields(text) {
			if _, ok := stops[word]; ok {
				continue
			}
			kept = append(kept, word)
		}
		return strings.Join(kept, " ")
	}
}

// Stem returns a transform that reduces every word to its snowball stem for
// the given language ("english", "spanish", ...). The language is validated
// up front; a word that fails to stem is kept unchanged.
func Stem(language string) (Transform, error) {
	if _, err := snowball.Stem("probe", language, false); err != nil {
		return nil, fmt.Errorf("%w: stemmer language %q: %v", internalerr.ErrInvalidConfig, language, err)
	}
	return func(text string) string {
		words := strings.Fields(text)
		for i, word := range words {
			stemmed, err := snowball.Stem(word, language, false)
			if err != nil {
				continue
			}
			words[i] = stemmed
		}
		return strings.Join(words, " ")
	}, nil
}
