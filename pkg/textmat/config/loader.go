package config

import (
	"fmt"

	"github.com/cognicore/textmat/pkg/textmat/corpus"
	"github.com/cognicore/textmat/pkg/textmat/dtm"
	"github.com/cognicore/textmat/pkg/textmat/internalerr"
	"github.com/cognicore/textmat/pkg/textmat/tokenize"
)

// DefaultTransforms is the cleaning order used when the settings file names
// none. Stopword removal and stemming only take effect when a stoplist or
// stemmer language is configured.
var DefaultTransforms = []string{
	"lowercase",
	"fold_diacritics",
	"strip_punct",
	"strip_digits",
	"collapse_whitespace",
	"stopwords",
	"stem",
}

// Components holds everything assembled from a settings file.
type Components struct {
	Pipeline  corpus.Pipeline
	Tokenizer tokenize.Tokenizer
	Bounds    dtm.Bounds
}

// Loader reads a settings file and constructs run components.
type Loader struct {
	SettingsPath string
}

// Load reads the settings and stoplist files and returns initialized
// components. Unknown transform names and invalid tokenizer settings fail
// here, before any document is processed.
func (l *Loader) Load() (*Components, error) {
	settings := &Settings{}
	if l.SettingsPath != "" {
		loaded, err := LoadSettings(l.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		settings = loaded
	}
	return Assemble(settings)
}

// Assemble constructs run components from already-loaded settings.
func Assemble(settings *Settings) (*Components, error) {
	var stopwords []string
	if settings.Stoplist != "" {
		stoplist, err := LoadStoplist(settings.Stoplist)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		stopwords = stoplist.Terms
	}

	names := settings.Transforms
	if len(names) == 0 {
		names = DefaultTransforms
	}

	var pipeline corpus.Pipeline
	for _, name := range names {
		switch name {
		case "lowercase":
			pipeline = append(pipeline, corpus.Lowercase)
		case "fold_diacritics":
			pipeline = append(pipeline, corpus.FoldDiacritics)
		case "strip_punct":
			pipeline = append(pipeline, corpus.StripPunct)
		case "strip_digits":
			pipeline = append(pipeline, corpus.StripDigits)
		case "collapse_whitespace":
			pipeline = append(pipeline, corpus.CollapseWhitespace)
		case "stopwords":
			if len(stopwords) == 0 {
				continue
			}
			pipeline = append(pipeline, corpus.RemoveStopwords(stopwords))
		case "stem":
			if settings.Stemmer == "" {
				continue
			}
			stem, err := corpus.Stem(settings.Stemmer)
			if err != nil {
				return nil, err
			}
			pipeline = append(pipeline, stem)
		default:
			return nil, fmt.Errorf("%w: unknown transform %q", internalerr.ErrInvalidConfig, name)
		}
	}

	var tokenizer tokenize.Tokenizer = tokenize.Unigram{}
	if settings.NGram > 1 {
		ngram, err := tokenize.NewNGram(settings.NGram)
		if err != nil {
			return nil, err
		}
		tokenizer = ngram
	} else if settings.NGram < 0 {
		return nil, fmt.Errorf("%w: ngram size %d", internalerr.ErrInvalidConfig, settings.NGram)
	}

	return &Components{
		Pipeline:  pipeline,
		Tokenizer: tokenizer,
		Bounds: dtm.Bounds{
			MinDocFreq: settings.Bounds.MinDocFreq,
			MaxDocFreq: settings.Bounds.MaxDocFreq,
			MinTermLen: settings.Bounds.MinTermLen,
			MaxTermLen: settings.Bounds.MaxTermLen,
		},
	}, nil
}
