package corpus

import (
	"errors"
	"testing"

	"github.com/cognicore/textmat/pkg/textmat/internalerr"
)

func TestLowercase(t *testing.T) {
	if got := Lowercase("Goats ARE Happy"); got != "goats are happy" {
		t.Errorf("Expected 'goats are happy', got %q", got)
	}
}

func TestStripPunct(t *testing.T) {
	got := StripPunct("goats, are; happy!")
	if got != "goats  are  happy " {
		t.Errorf("Punctuation not replaced with spaces: %q", got)
	}
}

func TestStripPunctKeepsLettersAndDigits(t *testing.T) {
	got := StripPunct("abc123")
	if got != "abc123" {
		t.Errorf("Letters and digits should pass through, got %q", got)
	}
}

func TestStripDigits(t *testing.T) {
	got := StripDigits("room 101 ready")
	if got != "room     ready" {
		t.Errorf("Digits not replaced with spaces: %q", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("  goats \t are\n\nhappy  ")
	if got != "goats are happy" {
		t.Errorf("Expected 'goats are happy', got %q", got)
	}
}

func TestFoldDiacritics(t *testing.T) {
	cases := map[string]string{
		"café":       "cafe",
		"naïve":      "naive",
		"señor":      "senor",
		"no accents": "no accents",
	}
	for in, want := range cases {
		if got := FoldDiacritics(in); got != want {
			t.Errorf("FoldDiacritics(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestRemoveStopwords(t *testing.T) {
	remove := RemoveStopwords([]string{"the", "a", "and"})
	got := remove("the goats and a sheep")
	if got != "goats sheep" {
		t.Errorf("Expected 'goats sheep', got %q", got)
	}
}

func TestRemoveStopwordsAllRemoved(t *testing.T) {
	remove := RemoveStopwords([]string{"the", "a"})
	if got := remove("the a the"); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestStemEnglish(t *testing.T) {
	stem, err := Stem("english")
	if err != nil {
		t.Fatalf("Stem(english): %v", err)
	}
	got := stem("running jumps happily")
	if got != "run jump happili" {
		t.Errorf("Expected 'run jump happili', got %q", got)
	}
}

func TestStemUnknownLanguage(t *testing.T) {
	if _, err := Stem("klingon"); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestCleaningPipeline(t *testing.T) {
	p := Pipeline{
		Lowercase,
		FoldDiacritics,
		StripPunct,
		StripDigits,
		CollapseWhitespace,
		RemoveStopwords([]string{"the", "in"}),
	}
	c := p.Run(New([]string{"The 2 GOATS, in the café!"}))
	if got := c.Doc(0).Text; got != "goats cafe" {
		t.Errorf("Expected 'goats cafe', got %q", got)
	}
}
