package source

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/cognicore/textmat/pkg/textmat/corpus"
	"github.com/cognicore/textmat/pkg/textmat/internalerr"
)

// CSV builds a corpus from one named column of a CSV file. The first record
// is the header; each following record contributes one document in file
// order.
func CSV(path, column string) (corpus.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return corpus.Corpus{}, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return corpus.Corpus{}, fmt.Errorf("read csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return corpus.New(nil), nil
	}

	colIdx := -1
	for i, name := range records[0] {
		if name == column {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		return corpus.Corpus{}, fmt.Errorf("%w: csv column %q", internalerr.ErrNotFound, column)
	}

	texts := make([]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if colIdx >= len(record) {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, record[colIdx])
	}
	return corpus.New(texts), nil
}
