package fixture

import (
	"errors"
	"math/rand/v2"
	"strconv"

	"benchkit/internal/database/relational"
)

// EdgeRelation is the table the closure benchmark reads its input from.
const EdgeRelation = "edge"

// Edge is a directed edge between two node ids.
type Edge struct {
	Source int
	Target int
}

// ClosureGenerator draws a random edge set for transitive closure benchmarks.
// Duplicate edges and self-loops are kept.
type ClosureGenerator struct {
	cfg ClosureConfig
	rng *rand.Rand
}

var _ Generator = (*ClosureGenerator)(nil)

// NewClosureGenerator creates a generator drawing from rng.
func NewClosureGenerator(cfg ClosureConfig, rng *rand.Rand) (*ClosureGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("random source required")
	}
	return &ClosureGenerator{cfg: cfg, rng: rng}, nil
}

// NewSeededRand returns the random source used for a given seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func (g *ClosureGenerator) Name() string { return "closure" }

// Edges draws NumEdges edges, each endpoint uniform over [0, NumNodes).
func (g *ClosureGenerator) Edges() []Edge {
	edges := make([]Edge, g.cfg.NumEdges)
	for i := range edges {
		edges[i] = Edge{
			Source: g.rng.IntN(g.cfg.NumNodes),
			Target: g.rng.IntN(g.cfg.NumNodes),
		}
	}
	return edges
}

// Relations returns a freshly drawn edge relation with text-encoded node ids.
func (g *ClosureGenerator) Relations() ([]relational.Relation, error) {
	edges := g.Edges()
	tuples := make([]relational.Tuple, len(edges))
	for i, e := range edges {
		tuples[i] = relational.Tuple{
			Source: strconv.Itoa(e.Source),
			Target: strconv.Itoa(e.Target),
		}
	}
	return []relational.Relation{{Name: EdgeRelation, Tuples: tuples}}, nil
}
