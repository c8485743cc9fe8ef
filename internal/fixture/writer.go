// Package fixture generates benchmark input relations and persists them as
// DuckDB files.
package fixture

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"benchkit/internal/database/relational"
)

const (
	scratchSuffix = ".tmp"
	walSuffix     = ".wal"
	asideSuffix   = ".old"
)

// ErrNoRelations is returned when a generator yields nothing to persist.
var ErrNoRelations = errors.New("generator produced no relations")

// Generator produces the complete relation set of one fixture.
type Generator interface {
	Name() string
	Relations() ([]relational.Relation, error)
}

// Opener opens a writable relation store at path.
type Opener func(path string) (relational.RelationStore, error)

// OpenDuckDB opens a DuckDB fixture file.
func OpenDuckDB(path string) (relational.RelationStore, error) {
	client, err := relational.NewFileDB(path, relational.WithThreads(1))
	if err != nil {
		return nil, err
	}
	return relational.NewRepo(client.DB()), nil
}

// Report describes a fixture that was written.
type Report struct {
	Generator string
	Path      string
	Relations []relational.RelationCount
	Bytes     int64
}

// Rows returns the total number of tuples written.
func (r Report) Rows() int {
	total := 0
	for _, c := range r.Relations {
		total += c.Rows
	}
	return total
}

// Writer replaces fixture files. A fixture is built in a scratch file next to
// its target and renamed into place only after every row has committed.
type Writer struct {
	open   Opener
	logger zerolog.Logger
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithOpener replaces the store used to build fixtures.
func WithOpener(open Opener) WriterOption {
	return func(w *Writer) {
		w.open = open
	}
}

// WithLogger sets the logger used to report written fixtures.
func WithLogger(l zerolog.Logger) WriterOption {
	return func(w *Writer) {
		w.logger = l
	}
}

// NewWriter creates a Writer backed by DuckDB.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		open:   OpenDuckDB,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Write generates gen's relations and replaces the fixture at path with them.
// On failure any previous fixture at path is left as it was.
func (w *Writer) Write(ctx context.Context, path string, gen Generator) (Report, error) {
	if gen == nil {
		return Report{}, errors.New("generator required")
	}
	if path == "" {
		return Report{}, errors.New("fixture path required")
	}

	rels, err := gen.Relations()
	if err != nil {
		return Report{}, fmt.Errorf("generate %s: %w", gen.Name(), err)
	}
	if len(rels) == 0 {
		return Report{}, fmt.Errorf("%s: %w", gen.Name(), ErrNoRelations)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Report{}, fmt.Errorf("create fixture directory: %w", err)
	}

	scratch := path + scratchSuffix
	if err := removeDatabase(scratch); err != nil {
		return Report{}, fmt.Errorf("remove stale scratch file: %w", err)
	}

	if err := w.build(ctx, scratch, rels); err != nil {
		_ = removeDatabase(scratch)
		return Report{}, err
	}

	if err := replaceDatabase(scratch, path); err != nil {
		_ = removeDatabase(scratch)
		return Report{}, fmt.Errorf("replace %s: %w", path, err)
	}

	report := Report{
		Generator: gen.Name(),
		Path:      path,
		Relations: make([]relational.RelationCount, 0, len(rels)),
	}
	for _, rel := range rels {
		report.Relations = append(report.Relations, relational.RelationCount{Name: rel.Name, Rows: len(rel.Tuples)})
	}
	if info, err := os.Stat(path); err == nil {
		report.Bytes = info.Size()
	}

	w.logger.Info().
		Str("generator", report.Generator).
		Str("path", path).
		Int("relations", len(report.Relations)).
		Int("rows", report.Rows()).
		Str("size", humanize.Bytes(uint64(report.Bytes))).
		Msg("fixture written")

	return report, nil
}

func (w *Writer) build(ctx context.Context, path string, rels []relational.Relation) (err error) {
	store, err := w.open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := store.WriteRelations(ctx, rels); err != nil {
		return fmt.Errorf("write relations: %w", err)
	}
	return store.Checkpoint(ctx)
}

// removeDatabase deletes a database file and its write-ahead log if present.
func removeDatabase(path string) error {
	for _, p := range []string{path, path + walSuffix} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// replaceDatabase moves a finished scratch database onto path.
// A stale log of the old file would be replayed onto the new one, so it is set
// aside first and only discarded once the new file is in place.
func replaceDatabase(scratch, path string) error {
	wal := path + walSuffix
	aside := wal + asideSuffix
	moved := true
	if err := os.Rename(wal, aside); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		moved = false
	}
	if err := os.Rename(scratch, path); err != nil {
		if moved {
			_ = os.Rename(aside, wal)
		}
		return err
	}
	if moved {
		_ = os.Remove(aside)
	}
	_ = os.Remove(scratch + walSuffix)
	return nil
}
