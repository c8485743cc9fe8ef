package fixture

import "benchkit/internal/database/relational"

// Hierarchy relation names.
const (
	UpRelation   = "up"
	FlatRelation = "flat"
	DownRelation = "down"
)

// HierarchyRelations is the same-generation benchmark input, in insertion order.
var HierarchyRelations = []relational.Relation{
	{
		Name: UpRelation,
		Tuples: []relational.Tuple{
			{Source: "a", Target: "e"},
			{Source: "a", Target: "f"},
			{Source: "f", Target: "m"},
			{Source: "g", Target: "n"},
			{Source: "h", Target: "n"},
			{Source: "i", Target: "o"},
			{Source: "j", Target: "o"},
		},
	},
	{
		Name: FlatRelation,
		Tuples: []relational.Tuple{
			{Source: "g", Target: "f"},
			{Source: "m", Target: "n"},
			{Source: "m", Target: "o"},
			{Source: "p", Target: "m"},
		},
	},
	{
		Name: DownRelation,
		Tuples: []relational.Tuple{
			{Source: "l", Target: "f"},
			{Source: "m", Target: "f"},
			{Source: "g", Target: "b"},
			{Source: "h", Target: "c"},
			{Source: "i", Target: "d"},
			{Source: "p", Target: "k"},
		},
	},
}

// HierarchyGenerator emits the fixed up/flat/down relations.
type HierarchyGenerator struct{}

var _ Generator = HierarchyGenerator{}

func (HierarchyGenerator) Name() string { return "hierarchy" }

// Relations returns a copy of HierarchyRelations.
func (HierarchyGenerator) Relations() ([]relational.Relation, error) {
	rels := make([]relational.Relation, len(HierarchyRelations))
	for i, r := range HierarchyRelations {
		rels[i] = r.Clone()
	}
	return rels, nil
}
