// textmat-report loads a corpus, runs the cleaning pipeline, builds the
// document-term matrix, and prints a JSON frequency report, optionally with
// term associations.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/textmat/pkg/textmat/config"
	"github.com/cognicore/textmat/pkg/textmat/corpus"
	"github.com/cognicore/textmat/pkg/textmat/dtm"
	"github.com/cognicore/textmat/pkg/textmat/report"
	"github.com/cognicore/textmat/pkg/textmat/source"
)

func main() {
	var (
		dir      = flag.String("dir", "", "Directory of .txt documents")
		htmlDir  = flag.String("html-dir", "", "Directory of .html documents")
		csvPath  = flag.String("csv", "", "CSV file to read documents from")
		csvCol   = flag.String("column", "text", "Column name for -csv and -sqlite")
		dbPath   = flag.String("sqlite", "", "SQLite database to read documents from")
		dbTable  = flag.String("table", "documents", "Table name for -sqlite")
		settings = flag.String("settings", "", "Optional YAML settings file")
		topK     = flag.Int("top", 20, "Number of top terms to report")
		minCount = flag.Int("min-count", 2, "Threshold for the frequent-terms list")
		assoc    = flag.String("assoc", "", "Optional reference term for an association report")
		minCorr  = flag.Float64("min-corr", 0.5, "Correlation threshold for -assoc")
	)
	flag.Parse()

	c, err := loadCorpus(*dir, *htmlDir, *csvPath, *csvCol, *dbPath, *dbTable)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	loader := config.Loader{SettingsPath: *settings}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}

	cleaned := components.Pipeline.Run(c)

	matrix, err := dtm.Build(cleaned, components.Tokenizer, components.Bounds)
	if err != nil {
		log.Fatalf("build matrix: %v", err)
	}

	builder := report.New()
	out := struct {
		Frequency    report.Frequency     `json:"frequency"`
		Associations *report.Associations `json:"associations,omitempty"`
	}{
		Frequency: builder.Frequency(matrix, *topK, *minCount),
	}

	if *assoc != "" {
		rep, err := builder.Associations(matrix, *assoc, *minCorr)
		if err != nil {
			log.Fatalf("find associations: %v", err)
		}
		out.Associations = &rep
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}

func loadCorpus(dir, htmlDir, csvPath, csvCol, dbPath, dbTable string) (corpus.Corpus, error) {
	switch {
	case dir != "":
		return source.Dir(dir)
	case htmlDir != "":
		return source.HTMLDir(htmlDir)
	case csvPath != "":
		return source.CSV(csvPath, csvCol)
	case dbPath != "":
		return source.SQLite(context.Background(), dbPath, dbTable, csvCol)
	default:
		return corpus.Corpus{}, fmt.Errorf("one of -dir, -html-dir, -csv, or -sqlite is required")
	}
}
