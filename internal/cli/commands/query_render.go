package commands

import (
	"database/sql"
)

// renderRows drains rows into the renderer. The caller closes rows.
func renderRows(r *Renderer, rows *sql.Rows) error {
	cols, err := rows.Columns()
	if err != nil {
		return err
	}

	var results [][]any
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return err
		}

		row := make([]any, len(cols))
		for i, v := range values {
			if r.Format() == FormatJSON {
				// keep numbers as numbers
				if b, ok := v.([]byte); ok {
					v = string(b)
				}
				row[i] = v
				continue
			}
			row[i] = formatValue(v)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	return r.Table(cols, results)
}
