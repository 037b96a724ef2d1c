package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"

	"github.com/cognicore/textmat/pkg/textmat/corpus"
	"github.com/cognicore/textmat/pkg/textmat/internalerr"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLite builds a corpus from one column of a SQLite table, one document per
// row in rowid order. Table and column names must be plain identifiers.
func SQLite(ctx context.Context, path, table, column string) (corpus.Corpus, error) {
	if !identPattern.MatchString(table) {
		return corpus.Corpus{}, fmt.Errorf("%w: table name %q", internalerr.ErrInvalidConfig, table)
	}
	if !identPattern.MatchString(column) {
		return corpus.Corpus{}, fmt.Errorf("%w: column name %q", internalerr.ErrInvalidConfig, column)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return corpus.Corpus{}, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	defer db.Close()

	query := fmt.Sprintf(`SELECT "%s" FROM "%s" ORDER BY rowid`, column, table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return corpus.Corpus{}, fmt.Errorf("query %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text sql.NullString
		if err := rows.Scan(&text); err != nil {
			return corpus.Corpus{}, fmt.Errorf("scan %s.%s: %w", table, column, err)
		}
		texts = append(texts, text.String)
	}
	if err := rows.Err(); err != nil {
		return corpus.Corpus{}, fmt.Errorf("iterate %s.%s: %w", table, column, err)
	}
	return corpus.New(texts), nil
}
