package config

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/cognicore/textmat/pkg/textmat/corpus"
	"github.com/cognicore/textmat/pkg/textmat/dtm"
	"github.com/cognicore/textmat/pkg/textmat/internalerr"
	"github.com/cognicore/textmat/pkg/textmat/tokenize"
)

func TestLoaderDefaults(t *testing.T) {
	loader := Loader{}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, ok := comp.Tokenizer.(tokenize.Unigram); !ok {
		t.Errorf("Expected unigram tokenizer by default, got %T", comp.Tokenizer)
	}
	if comp.Bounds != (dtm.Bounds{}) {
		t.Errorf("Expected zero bounds, got %+v", comp.Bounds)
	}

	// default pipeline cleans without stopwords or stemming
	cleaned := comp.Pipeline.Run(corpus.New([]string{"The 2 GOATS, are happy!"}))
	if got := cleaned.Doc(0).Text; got != "the goats are happy" {
		t.Errorf("Expected 'the goats are happy', got %q", got)
	}
}

func TestLoaderFullSettings(t *testing.T) {
	stoplist := writeFile(t, "stoplist.yaml", "terms: [the, are]\n")
	settings := writeFile(t, "settings.yaml", fmt.Sprintf(`
stoplist: %s
stemmer: english
ngram: 2
bounds:
  min_doc_freq: 1
`, stoplist))

	loader := Loader{SettingsPath: settings}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	g, ok := comp.Tokenizer.(tokenize.NGram)
	if !ok {
		t.Fatalf("Expected ngram tokenizer, got %T", comp.Tokenizer)
	}
	if g.N() != 2 {
		t.Errorf("Expected window 2, got %d", g.N())
	}
	if comp.Bounds.MinDocFreq != 1 {
		t.Errorf("Expected MinDocFreq 1, got %+v", comp.Bounds)
	}

	cleaned := comp.Pipeline.Run(corpus.New([]string{"The GOATS are running!"}))
	if got := cleaned.Doc(0).Text; got != "goat run" {
		t.Errorf("Expected 'goat run', got %q", got)
	}
}

func TestAssembleCustomTransformOrder(t *testing.T) {
	comp, err := Assemble(&Settings{Transforms: []string{"lowercase", "collapse_whitespace"}})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	cleaned := comp.Pipeline.Run(corpus.New([]string{"  KEEP, punctuation!  "}))
	if got := cleaned.Doc(0).Text; got != "keep, punctuation!" {
		t.Errorf("Expected 'keep, punctuation!', got %q", got)
	}
}

func TestAssembleUnknownTransform(t *testing.T) {
	_, err := Assemble(&Settings{Transforms: []string{"lowercase", "defragment"}})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestAssembleInvalidNGram(t *testing.T) {
	_, err := Assemble(&Settings{NGram: -2})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestAssembleInvalidStemmer(t *testing.T) {
	_, err := Assemble(&Settings{Stemmer: "klingon"})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestAssembleStopwordsRequireStoplist(t *testing.T) {
	// "stopwords" with no stoplist configured is a no-op, not an error
	comp, err := Assemble(&Settings{Transforms: []string{"stopwords"}})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	cleaned := comp.Pipeline.Run(corpus.New([]string{"the goats"}))
	if got := cleaned.Doc(0).Text; got != "the goats" {
		t.Errorf("Expected text unchanged, got %q", got)
	}
}

func TestDefaultTransformNamesAllKnown(t *testing.T) {
	if _, err := Assemble(&Settings{Transforms: slices.Clone(DefaultTransforms)}); err != nil {
		t.Errorf("Default transform names should all assemble: %v", err)
	}
}
