package fixture

// ClosureConfig contains the parameters of the random edge fixture.
// Use DefaultClosureConfig() to get the stock benchmark sizes, then override as needed.
type ClosureConfig struct {
	NumNodes int    `toml:"num_nodes" envconfig:"NUM_NODES"` // Node id domain is [0, NumNodes) (default: 500)
	NumEdges int    `toml:"num_edges" envconfig:"NUM_EDGES"` // Number of edges to draw (default: 1000)
	Seed     uint64 `toml:"seed" envconfig:"SEED"`           // 0 = seed from the clock at the entry point
	FileName string `toml:"file_name" envconfig:"FILE_NAME"` // Fixture file name (default: "closure.db")
}

// DefaultClosureConfig returns the sizes used by the closure benchmark.
func DefaultClosureConfig() ClosureConfig {
	return ClosureConfig{
		NumNodes: 500,
		NumEdges: 1000,
		Seed:     0,
		FileName: "closure.db",
	}
}

// WithNodes returns a copy of the config with a different node domain size.
func (c ClosureConfig) WithNodes(n int) ClosureConfig {
	c.NumNodes = n
	return c
}

// WithEdges returns a copy of the config with a different edge count.
func (c ClosureConfig) WithEdges(n int) ClosureConfig {
	c.NumEdges = n
	return c
}

// WithSeed returns a copy of the config with a fixed seed.
func (c ClosureConfig) WithSeed(seed uint64) ClosureConfig {
	c.Seed = seed
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c ClosureConfig) Validate() error {
	if c.NumNodes <= 0 {
		return &ConfigError{Field: "NumNodes", Message: "must be positive"}
	}
	if c.NumEdges < 0 {
		return &ConfigError{Field: "NumEdges", Message: "must not be negative"}
	}
	if c.FileName == "" {
		return &ConfigError{Field: "FileName", Message: "must not be empty"}
	}
	return nil
}

// HierarchyConfig contains the parameters of the up/flat/down fixture.
type HierarchyConfig struct {
	FileName string `toml:"file_name" envconfig:"FILE_NAME"` // Fixture file name (default: "rsg.db")
}

// DefaultHierarchyConfig returns the stock hierarchy fixture settings.
func DefaultHierarchyConfig() HierarchyConfig {
	return HierarchyConfig{FileName: "rsg.db"}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c HierarchyConfig) Validate() error {
	if c.FileName == "" {
		return &ConfigError{Field: "FileName", Message: "must not be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
