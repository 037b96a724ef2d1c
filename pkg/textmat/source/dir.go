// Package source constructs corpora from external document collections: a
// directory of text or HTML files, a CSV column, or a SQLite table column.
// Sources only read; nothing in this package persists engine output.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognicore/textmat/internal/htmltext"
	"github.com/cognicore/textmat/pkg/textmat/corpus"
)

// Dir builds a corpus from every .txt file in a directory, one document per
// file, ordered by file name.
func Dir(path string) (corpus.Corpus, error) {
	return fromDir(path, ".txt", func(data []byte) (string, error) {
		return string(data), nil
	})
}

// HTMLDir builds a corpus from every .html file in a directory, one document
// per file, ordered by file name. Visible text is extracted from the markup.
func HTMLDir(path string) (corpus.Corpus, error) {
	return fromDir(path, ".html", decodeHTML)
}

func fromDir(path, ext string, decode func([]byte) (string, error)) (corpus.Corpus, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return corpus.Corpus{}, fmt.Errorf("read dir %s: %w", path, err)
	}

	var texts []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(path, entry.Name()))
		if err != nil {
			return corpus.Corpus{}, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		text, err := decode(data)
		if err != nil {
			return corpus.Corpus{}, fmt.Errorf("decode %s: %w", entry.Name(), err)
		}
		texts = append(texts, text)
	}
	return corpus.New(texts), nil
}

func decodeHTML(data []byte) (string, error) {
	return htmltext.ExtractString(string(data))
}
