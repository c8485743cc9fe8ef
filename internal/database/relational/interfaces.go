package relational

import "context"

// =============================================================================
// CORE INTERFACES
// =============================================================================

// RelationWriter persists a complete set of relations.
type RelationWriter interface {
	// WriteRelations creates one table per relation and inserts every tuple
	// in a single transaction. Nothing is visible unless all of it commits.
	WriteRelations(ctx context.Context, rels []Relation) error
	// Checkpoint flushes the write-ahead log into the database file.
	Checkpoint(ctx context.Context) error
	// Close releases database resources.
	Close() error
}

// RelationReader reads fixture relations back.
type RelationReader interface {
	ListTables(ctx context.Context) ([]string, error)
	TableColumns(ctx context.Context, table string) ([]ColumnInfo, error)
	ReadRelation(ctx context.Context, name string) (Relation, error)
	CountRows(ctx context.Context, table string) (int, error)
}

// RelationStore is the full storage contract of a fixture file.
type RelationStore interface {
	RelationWriter
	RelationReader
}

var _ RelationStore = (*Repo)(nil)
