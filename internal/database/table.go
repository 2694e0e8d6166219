package database

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gorm.io/gorm"
)

// RowsAsLists returns the model's table as column names plus one value list
// per row, in column order. When limit is positive at most limit rows are
// fetched.
func RowsAsLists(ctx context.Context, db *gorm.DB, model any, limit int) ([]string, [][]any, error) {
	cols, err := ColumnNames(db, model)
	if err != nil {
		return nil, nil, err
	}

	q := db.WithContext(ctx).Model(model)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var records []map[string]any
	if err := q.Find(&records).Error; err != nil {
		return nil, nil, err
	}

	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = rec[c]
		}
		rows = append(rows, row)
	}
	return cols, rows, nil
}

// RenderTable writes the model's table to w: the table name, a header of
// column names, and one line per row. When limit is positive at most limit
// rows are rendered; the limit is applied in the query, not after the fetch.
func RenderTable(ctx context.Context, w io.Writer, db *gorm.DB, model any, limit int) error {
	name, err := TableName(db, model)
	if err != nil {
		return err
	}
	cols, rows, err := RowsAsLists(ctx, db, model, limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, name)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = strings.ToUpper(c)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
