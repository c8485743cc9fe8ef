package relational

import (
	"fmt"
	"regexp"
)

// Arity is the number of columns of every fixture relation.
const Arity = 2

// Tuple is one row of a binary relation.
type Tuple struct {
	Source string
	Target string
}

// Values returns the tuple in column order.
func (t Tuple) Values() []any {
	return []any{t.Source, t.Target}
}

// Relation is a named binary relation stored as one table.
type Relation struct {
	Name   string
	Tuples []Tuple
}

// Clone returns a copy that shares no memory with r.
func (r Relation) Clone() Relation {
	tuples := make([]Tuple, len(r.Tuples))
	copy(tuples, r.Tuples)
	return Relation{Name: r.Name, Tuples: tuples}
}

// ColumnInfo describes one column as reported by the catalog.
type ColumnInfo struct {
	Name     string
	Type     string
	Nullable bool
}

// RelationCount is the number of rows stored for a relation.
type RelationCount struct {
	Name string
	Rows int
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateName rejects relation names that cannot be used as a table identifier.
func ValidateName(name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("invalid relation name %q", name)
	}
	return nil
}

// ColumnName returns the positional column name the rule engine expects at index i.
func ColumnName(i int) string {
	return fmt.Sprintf("column_%d", i)
}

// ColumnNames returns the column names of an n-ary relation.
func ColumnNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = ColumnName(i)
	}
	return names
}

func quoteIdent(name string) string {
	return `"` + name + `"`
}
