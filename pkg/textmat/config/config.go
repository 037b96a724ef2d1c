package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings configures a text-mining run: the cleaning pipeline, the
// tokenizer, and the vocabulary bounds.
type Settings struct {
	// Stoplist is an optional path to a stopword list file.
	Stoplist string `yaml:"stoplist"`
	// Stemmer is an optional snowball language ("english", "spanish", ...).
	// Empty disables stemming.
	Stemmer string `yaml:"stemmer"`
	// Transforms is the ordered cleaning sequence by name. Empty selects the
	// default order.
	Transforms []string `yaml:"transforms"`
	// NGram is the tokenizer window size; 0 and 1 both mean unigrams.
	NGram  int          `yaml:"ngram"`
	Bounds BoundsConfig `yaml:"bounds"`
}

// BoundsConfig mirrors dtm.Bounds in the settings file. Zero means no
// restriction on that side.
type BoundsConfig struct {
	MinDocFreq int `yaml:"min_doc_freq"`
	MaxDocFreq int `yaml:"max_doc_freq"`
	MinTermLen int `yaml:"min_term_len"`
	MaxTermLen int `yaml:"max_term_len"`
}

// LoadSettings loads run settings from a YAML file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return &s, nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse stoplist %s: %w", path, err)
	}
	return &sl, nil
}
