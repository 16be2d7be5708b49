package psqlbuilder

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

// builder squirrel builder с плейсхолдерами PostgreSQL ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Builder возвращает builder с плейсхолдерами PostgreSQL
func Builder() squirrel.StatementBuilderType {
	return builder
}

// UpsertSuffix возвращает "ON CONFLICT (...) DO UPDATE SET col = excluded.col, ..."
// Синтаксис поддерживают PostgreSQL и SQLite 3.24+
func UpsertSuffix(conflictColumn string, updateColumns ...string) string {
	sets := make([]string, len(updateColumns))
	for i, col := range updateColumns {
		sets[i] = fmt.Sprintf("%s = excluded.%s", col, col)
	}
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", conflictColumn, strings.Join(sets, ", "))
}
