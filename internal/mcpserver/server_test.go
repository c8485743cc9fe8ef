package mcpserver

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"benchkit/internal/config"
	"benchkit/internal/database/relational"
	"benchkit/internal/fixture"
)

// MockRunner implements Runner for testing
type MockRunner struct {
	Cfg    config.Config
	Report fixture.Report
	Files  []string
	Err    error
	Calls  int
}

func (m *MockRunner) GenerateClosure(ctx context.Context) (fixture.Report, error) {
	m.Calls++
	return m.Report, m.Err
}

func (m *MockRunner) GenerateHierarchy(ctx context.Context) (fixture.Report, error) {
	m.Calls++
	if m.Err != nil {
		return fixture.Report{}, m.Err
	}
	// Write the real fixture so inspect_fixture has something to read.
	path := filepath.Join(m.Cfg.FixtureDir, m.Cfg.Hierarchy.FileName)
	return fixture.NewWriter().Write(ctx, path, fixture.HierarchyGenerator{})
}

func (m *MockRunner) RenderBenchmark(ctx context.Context) ([]string, error) {
	m.Calls++
	return m.Files, m.Err
}

func (m *MockRunner) Config() config.Config {
	return m.Cfg
}

func newTestServer(t *testing.T) (*Server, *MockRunner) {
	t.Helper()
	cfg := config.Default()
	cfg.FixtureDir = t.TempDir()
	runner := &MockRunner{Cfg: cfg}
	return NewServer(Config{ServerName: "benchkit-test", ServerVersion: "v0"}, runner, zerolog.Nop()), runner
}

func TestHandleGenerateClosure(t *testing.T) {
	s, runner := newTestServer(t)
	runner.Report = fixture.Report{
		Generator: "closure",
		Path:      "closure.db",
		Relations: []relational.RelationCount{{Name: "edge", Rows: 1000}},
		Bytes:     8192,
	}

	_, result, err := s.handleGenerateClosure(context.Background(), nil, NoArgs{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Path != "closure.db" || result.Bytes != 8192 {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(result.Relations) != 1 || result.Relations[0].Rows != 1000 {
		t.Errorf("unexpected relations: %+v", result.Relations)
	}
}

func TestHandleRenderBenchmark_Error(t *testing.T) {
	s, runner := newTestServer(t)
	runner.Err = errors.New("no space left")

	_, _, err := s.handleRenderBenchmark(context.Background(), nil, NoArgs{})
	if err == nil || !strings.Contains(err.Error(), "no space left") {
		t.Errorf("Expected wrapped error, got: %v", err)
	}
	if runner.Calls != 1 {
		t.Errorf("Expected 1 call, got %d", runner.Calls)
	}
}

func TestHandleInspectFixture(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	if _, _, err := s.handleGenerateHierarchy(ctx, nil, NoArgs{}); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	_, result, err := s.handleInspectFixture(ctx, nil, InspectFixtureArgs{Fixture: "hierarchy", Sample: 2})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(result.Tables) != 3 {
		t.Fatalf("Expected 3 tables, got %d", len(result.Tables))
	}
	rows := map[string]int{}
	for _, tbl := range result.Tables {
		rows[tbl.Name] = tbl.Rows
		if len(tbl.Sample) != 2 {
			t.Errorf("%s: expected 2 sample rows, got %d", tbl.Name, len(tbl.Sample))
		}
		if len(tbl.Columns) != relational.Arity || tbl.Columns[0].Name != "column_0" {
			t.Errorf("%s: unexpected columns %+v", tbl.Name, tbl.Columns)
		}
	}
	if rows["up"] != 7 || rows["flat"] != 4 || rows["down"] != 6 {
		t.Errorf("unexpected row counts: %v", rows)
	}
}

func TestHandleInspectFixture_Invalid(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	if _, _, err := s.handleInspectFixture(ctx, nil, InspectFixtureArgs{Fixture: "../etc"}); err == nil {
		t.Error("Expected error for unknown fixture")
	}
	// Nothing written yet.
	if _, _, err := s.handleInspectFixture(ctx, nil, InspectFixtureArgs{Fixture: "closure"}); err == nil {
		t.Error("Expected error for missing fixture file")
	}
}

func TestHandleInspectFixture_SampleBounds(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	if _, _, err := s.handleGenerateHierarchy(ctx, nil, NoArgs{}); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	tests := []struct {
		name   string
		sample int
	}{
		{"negative", -1},
		{"very negative", -1000},
		{"zero", 0},
		{"above max", maxSampleSize + 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, result, err := s.handleInspectFixture(ctx, nil, InspectFixtureArgs{Fixture: "hierarchy", Sample: tt.sample})
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			// Every hierarchy table is smaller than the default sample.
			for _, tbl := range result.Tables {
				if len(tbl.Sample) != tbl.Rows {
					t.Errorf("%s: expected %d sample rows, got %d", tbl.Name, tbl.Rows, len(tbl.Sample))
				}
			}
		})
	}
}

func TestToolsOverInMemoryTransport(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	serverT, clientT := mcp.NewInMemoryTransports()
	ss, err := s.Connect(ctx, serverT)
	if err != nil {
		t.Fatalf("server connect failed: %v", err)
	}
	defer ss.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0"}, nil)
	cs, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect failed: %v", err)
	}
	defer cs.Close()

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: "generate_hierarchy"})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("generate_hierarchy reported error: %+v", res.Content)
	}

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "inspect_fixture",
		Arguments: map[string]any{"fixture": "hierarchy", "sample": 1},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if res.IsError || len(res.Content) == 0 {
		t.Fatalf("inspect_fixture failed: %+v", res.Content)
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", res.Content[0])
	}
	for _, want := range []string{`"up"`, `"flat"`, `"down"`, `"column_0"`} {
		if !strings.Contains(text.Text, want) {
			t.Errorf("inspect output missing %s: %s", want, text.Text)
		}
	}

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "inspect_fixture",
		Arguments: map[string]any{"fixture": "nope"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if !res.IsError {
		t.Error("Expected tool error for unknown fixture")
	}
}
