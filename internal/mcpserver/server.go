// Package mcpserver exposes the fixture and chart steps as MCP tools.
package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"benchkit/internal/config"
	"benchkit/internal/database/relational"
	"benchkit/internal/fixture"
)

const (
	defaultSampleSize = 10
	maxSampleSize     = 100
)

// Runner performs the steps behind the tools.
type Runner interface {
	GenerateClosure(ctx context.Context) (fixture.Report, error)
	GenerateHierarchy(ctx context.Context) (fixture.Report, error)
	RenderBenchmark(ctx context.Context) ([]string, error)
	Config() config.Config
}

// Server wraps the MCP server with benchkit tools.
type Server struct {
	mcpServer *mcp.Server
	runner    Runner
	logger    zerolog.Logger

	// Steps replace files in place, so only one runs at a time.
	stepMu sync.Mutex
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
}

// NewServer creates a new MCP server instance.
func NewServer(cfg Config, runner Runner, logger zerolog.Logger) *Server {
	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}
	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		runner:    runner,
		logger:    logger,
	}
	s.registerTools()
	return s
}

// NoArgs is the input of tools without parameters.
type NoArgs struct{}

// FixtureResult describes a written fixture.
type FixtureResult struct {
	Path      string                     `json:"path" jsonschema:"fixture file path"`
	Relations []relational.RelationCount `json:"relations" jsonschema:"rows written per relation"`
	Bytes     int64                      `json:"bytes" jsonschema:"fixture file size"`
}

// ChartResult lists the files written for the benchmark chart.
type ChartResult struct {
	Files []string `json:"files" jsonschema:"written chart files"`
}

// InspectFixtureArgs defines the input for inspect_fixture tool.
type InspectFixtureArgs struct {
	Fixture string `json:"fixture" jsonschema:"fixture to read: closure or hierarchy"`
	Sample  int    `json:"sample,omitempty" jsonschema:"number of rows to return per table"`
}

// TableSummary describes one relation of a fixture file.
type TableSummary struct {
	Name    string                  `json:"name"`
	Columns []relational.ColumnInfo `json:"columns"`
	Rows    int                     `json:"rows"`
	Sample  []relational.Tuple      `json:"sample"`
}

// InspectFixtureResult wraps the tables of a fixture file.
type InspectFixtureResult struct {
	Path   string         `json:"path" jsonschema:"fixture file path"`
	Tables []TableSummary `json:"tables" jsonschema:"tables in insertion order of their names"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_closure",
		Description: "Write the random edge fixture used by transitive closure benchmarks. Replaces any previous file atomically.",
	}, s.handleGenerateClosure)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_hierarchy",
		Description: "Write the fixed up/flat/down hierarchy fixture. Replaces any previous file atomically.",
	}, s.handleGenerateHierarchy)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "render_benchmark",
		Description: "Render the benchmark timing chart to PNG, plus HTML when enabled in configuration.",
	}, s.handleRenderBenchmark)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "inspect_fixture",
		Description: "Read a written fixture back: its tables, their columns, row counts and the first rows of each.",
	}, s.handleInspectFixture)
}

func (s *Server) handleGenerateClosure(ctx context.Context, _ *mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, FixtureResult, error) {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()

	r, err := s.runner.GenerateClosure(ctx)
	if err != nil {
		return nil, FixtureResult{}, fmt.Errorf("closure fixture failed: %w", err)
	}
	return nil, fixtureResult(r), nil
}

func (s *Server) handleGenerateHierarchy(ctx context.Context, _ *mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, FixtureResult, error) {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()

	r, err := s.runner.GenerateHierarchy(ctx)
	if err != nil {
		return nil, FixtureResult{}, fmt.Errorf("hierarchy fixture failed: %w", err)
	}
	return nil, fixtureResult(r), nil
}

func (s *Server) handleRenderBenchmark(ctx context.Context, _ *mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, ChartResult, error) {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()

	files, err := s.runner.RenderBenchmark(ctx)
	if err != nil {
		return nil, ChartResult{}, fmt.Errorf("benchmark chart failed: %w", err)
	}
	return nil, ChartResult{Files: files}, nil
}

// handleInspectFixture opens a fixture read-only through the relational queries.
func (s *Server) handleInspectFixture(ctx context.Context, _ *mcp.CallToolRequest, args InspectFixtureArgs) (*mcp.CallToolResult, InspectFixtureResult, error) {
	path, err := s.fixturePath(args.Fixture)
	if err != nil {
		return nil, InspectFixtureResult{}, err
	}

	limit := args.Sample
	if limit <= 0 {
		limit = defaultSampleSize
	}
	if limit > maxSampleSize {
		limit = maxSampleSize
	}

	s.stepMu.Lock()
	defer s.stepMu.Unlock()

	tables, err := inspect(ctx, path, limit)
	if err != nil {
		return nil, InspectFixtureResult{}, fmt.Errorf("inspect %s: %w", path, err)
	}
	return nil, InspectFixtureResult{Path: path, Tables: tables}, nil
}

func (s *Server) fixturePath(name string) (string, error) {
	cfg := s.runner.Config()
	switch name {
	case "closure":
		return filepath.Join(cfg.FixtureDir, cfg.Closure.FileName), nil
	case "hierarchy":
		return filepath.Join(cfg.FixtureDir, cfg.Hierarchy.FileName), nil
	default:
		return "", fmt.Errorf("invalid fixture: %q (must be 'closure' or 'hierarchy')", name)
	}
}

func inspect(ctx context.Context, path string, limit int) ([]TableSummary, error) {
	client, err := relational.NewFileDB(path, relational.WithReadOnly())
	if err != nil {
		return nil, err
	}
	defer client.Close()
	repo := relational.NewRepo(client.DB())

	names, err := repo.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	tables := make([]TableSummary, 0, len(names))
	for _, name := range names {
		cols, err := repo.TableColumns(ctx, name)
		if err != nil {
			return nil, err
		}
		rel, err := repo.ReadRelation(ctx, name)
		if err != nil {
			return nil, err
		}
		sample := rel.Tuples
		if len(sample) > limit {
			sample = sample[:limit]
		}
		tables = append(tables, TableSummary{
			Name:    name,
			Columns: cols,
			Rows:    len(rel.Tuples),
			Sample:  sample,
		})
	}
	return tables, nil
}

func fixtureResult(r fixture.Report) FixtureResult {
	return FixtureResult{Path: r.Path, Relations: r.Relations, Bytes: r.Bytes}
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info().Msg("starting benchkit MCP server on stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves one session over t.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.mcpServer.Connect(ctx, t, nil)
}
