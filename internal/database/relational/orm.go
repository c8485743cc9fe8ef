package relational

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SCHEMA SQL
// =============================================================================

// CreateTableSQL returns the DDL of a fixture table: Arity positional text columns,
// none nullable.
func CreateTableSQL(name string) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(quoteIdent(name))
	b.WriteString(" (\n")
	for i, col := range ColumnNames(Arity) {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("  ")
		b.WriteString(col)
		b.WriteString(" TEXT NOT NULL")
	}
	b.WriteString("\n)")
	return b.String()
}

// InsertSQL returns the parameterised insert statement of a fixture table.
func InsertSQL(name string) string {
	return fmt.Sprintf("INSERT INTO %s VALUES (?, ?)", quoteIdent(name))
}

// =============================================================================
// REPO IMPLEMENTATION
// =============================================================================

// Repo reads and writes fixture relations over a DuckDB handle.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Close() error {
	return r.db.Close()
}

// WriteRelations creates every table and inserts every tuple in one transaction.
func (r *Repo) WriteRelations(ctx context.Context, rels []Relation) error {
	if len(rels) == 0 {
		return errors.New("no relations to write")
	}
	seen := make(map[string]bool, len(rels))
	for _, rel := range rels {
		if err := ValidateName(rel.Name); err != nil {
			return err
		}
		if seen[rel.Name] {
			return fmt.Errorf("duplicate relation %q", rel.Name)
		}
		seen[rel.Name] = true
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, rel := range rels {
		if err := r.writeRelationTx(ctx, tx, rel); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *Repo) writeRelationTx(ctx context.Context, tx *sql.Tx, rel Relation) error {
	if _, err := tx.ExecContext(ctx, CreateTableSQL(rel.Name)); err != nil {
		return fmt.Errorf("create table %s: %w", rel.Name, err)
	}
	if len(rel.Tuples) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, InsertSQL(rel.Name))
	if err != nil {
		return fmt.Errorf("prepare insert %s: %w", rel.Name, err)
	}
	defer stmt.Close()

	for i, t := range rel.Tuples {
		if _, err := stmt.ExecContext(ctx, t.Values()...); err != nil {
			return fmt.Errorf("insert %s row %d: %w", rel.Name, i, err)
		}
	}
	return nil
}

// Checkpoint merges the write-ahead log into the main database file.
func (r *Repo) Checkpoint(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	return nil
}
