package relational

import (
	"context"
	"fmt"
)

// ListTables returns the tables of the main schema in name order.
func (r *Repo) ListTables(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'main'
		ORDER BY table_name
	`)
	if err != nil {
		return nil, fmt.Errorf("list tables failed: %w", err)
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name failed: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return tables, nil
}

// TableColumns returns the column layout of a table in ordinal order.
func (r *Repo) TableColumns(ctx context.Context, table string) ([]ColumnInfo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = 'main' AND table_name = ?
		ORDER BY ordinal_position
	`, table)
	if err != nil {
		return nil, fmt.Errorf("query columns of %s failed: %w", table, err)
	}
	defer rows.Close()

	cols := []ColumnInfo{}
	for rows.Next() {
		var c ColumnInfo
		var nullable string
		if err := rows.Scan(&c.Name, &c.Type, &nullable); err != nil {
			return nil, fmt.Errorf("scan column failed: %w", err)
		}
		c.Nullable = nullable == "YES"
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %s not found", table)
	}
	return cols, nil
}

// ReadRelation reads a relation back in insertion order.
func (r *Repo) ReadRelation(ctx context.Context, name string) (Relation, error) {
	if err := ValidateName(name); err != nil {
		return Relation{}, err
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT column_0, column_1 FROM %s ORDER BY rowid", quoteIdent(name)))
	if err != nil {
		return Relation{}, fmt.Errorf("query relation %s failed: %w", name, err)
	}
	defer rows.Close()

	rel := Relation{Name: name, Tuples: []Tuple{}}
	for rows.Next() {
		var t Tuple
		if err := rows.Scan(&t.Source, &t.Target); err != nil {
			return Relation{}, fmt.Errorf("scan tuple failed: %w", err)
		}
		rel.Tuples = append(rel.Tuples, t)
	}
	if err := rows.Err(); err != nil {
		return Relation{}, fmt.Errorf("rows iteration error: %w", err)
	}
	return rel, nil
}

// CountRows returns the number of rows in a table.
func (r *Repo) CountRows(ctx context.Context, table string) (int, error) {
	if err := ValidateName(table); err != nil {
		return 0, err
	}
	var n int
	err := r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdent(table))).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count rows of %s failed: %w", table, err)
	}
	return n, nil
}

// CountRelations counts the rows of every table in the database.
func (r *Repo) CountRelations(ctx context.Context) ([]RelationCount, error) {
	tables, err := r.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	counts := make([]RelationCount, 0, len(tables))
	for _, t := range tables {
		n, err := r.CountRows(ctx, t)
		if err != nil {
			return nil, err
		}
		counts = append(counts, RelationCount{Name: t, Rows: n})
	}
	return counts, nil
}
