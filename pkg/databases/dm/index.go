package dm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/dbdialect/pkg/database"
)

const indexColumnsQuery = "SELECT * FROM USER_IND_COLUMNS WHERE TABLE_NAME = '%s'"

// IndexExists reports whether every field is an indexed column of table,
// according to USER_IND_COLUMNS. A table without index rows reports false.
func (d *Dialect) IndexExists(ctx context.Context, q database.Querier, schema, table string, fields []string) (bool, error) {
	qualified := d.QuotedSchemaTable(schema, table)
	found, rowCount, err := d.indexedColumns(ctx, q, table, fields)
	if err != nil {
		return false, &database.QueryError{
			Table: qualified,
			Msg:   "unable to determine if indexes exist",
			Err:   err,
		}
	}

	if rowCount == 0 {
		return false, nil
	}
	for _, ok := range found {
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// indexedColumns marks which of fields appear in the COLUMN_NAME column of the
// catalog rows for table.
func (d *Dialect) indexedColumns(ctx context.Context, q database.Querier, table string, fields []string) ([]bool, int, error) {
	query := fmt.Sprintf(indexColumnsQuery, strings.ReplaceAll(table, "'", "''"))
	d.logger.Debug("checking index columns", slog.String("table", table), slog.Any("fields", fields))

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, 0, err
	}
	colIdx := -1
	for i, c := range cols {
		if strings.EqualFold(c, "COLUMN_NAME") {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		return nil, 0, errors.New("catalog result has no COLUMN_NAME column")
	}

	found := make([]bool, len(fields))
	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	rowCount := 0
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, 0, err
		}
		rowCount++

		column := values[colIdx].String
		for i, f := range fields {
			if strings.EqualFold(f, column) {
				found[i] = true
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return found, rowCount, nil
}
