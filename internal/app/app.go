// Package app wires configuration, logging and the fixture and chart
// components into the benchkit entry points.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"benchkit/internal/chart"
	"benchkit/internal/config"
	"benchkit/internal/fixture"
	"benchkit/internal/logger"
	"benchkit/ui/console"
	"benchkit/ui/preview"
)

const (
	previewWidth  = 72
	previewHeight = 20
)

// App runs benchkit steps against one configuration.
type App struct {
	cfg    config.Config
	logger zerolog.Logger
	out    io.Writer
	now    func() time.Time
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used by every step.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithOutput sets where console summaries are written.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithClock replaces the time source used to seed unseeded runs.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

func New(cfg config.Config, opts ...Option) *App {
	a := &App{
		cfg:    cfg,
		logger: zerolog.Nop(),
		out:    io.Discard,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Bootstrap loads .env, the config file named by BENCHKIT_CONFIG and the
// environment, then installs the global logger. The returned closer flushes
// the log output.
func Bootstrap() (*App, io.Closer, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("could not load .env: %w", err)
	}

	cfg, err := config.Load(os.Getenv(config.ConfigFileEnv))
	if err != nil {
		return nil, nil, err
	}

	closer, err := logger.Init(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return New(cfg, WithLogger(logger.Logger), WithOutput(os.Stdout)), closer, nil
}

// With returns a copy of a with opts applied.
func (a *App) With(opts ...Option) *App {
	c := *a
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Silent returns a copy of a that prints no console summaries. Logging also
// stops unless it goes to a file, so a full-screen UI keeps the terminal.
func (a *App) Silent() *App {
	c := a.With(WithOutput(io.Discard))
	if a.cfg.Log.File == "" {
		c.logger = zerolog.Nop()
	}
	return c
}

// Benchmark returns the chart data the app renders.
func (a *App) Benchmark() chart.Benchmark {
	return a.cfg.Chart.Benchmark()
}

// Config returns the configuration the app was built with.
func (a *App) Config() config.Config {
	return a.cfg
}

// GenerateClosure writes the random edge fixture. A zero seed is replaced by
// one taken from the clock and logged so the run can be repeated.
func (a *App) GenerateClosure(ctx context.Context) (fixture.Report, error) {
	cfg := a.cfg.Closure
	if cfg.Seed == 0 {
		cfg = cfg.WithSeed(uint64(a.now().UnixNano()))
	}
	a.logger.Info().
		Int("nodes", cfg.NumNodes).
		Int("edges", cfg.NumEdges).
		Uint64("seed", cfg.Seed).
		Msg("generating closure fixture")

	gen, err := fixture.NewClosureGenerator(cfg, fixture.NewSeededRand(cfg.Seed))
	if err != nil {
		return fixture.Report{}, err
	}
	return a.writeFixture(ctx, cfg.FileName, gen)
}

// GenerateHierarchy writes the fixed up/flat/down fixture.
func (a *App) GenerateHierarchy(ctx context.Context) (fixture.Report, error) {
	if err := a.cfg.Hierarchy.Validate(); err != nil {
		return fixture.Report{}, err
	}
	return a.writeFixture(ctx, a.cfg.Hierarchy.FileName, fixture.HierarchyGenerator{})
}

func (a *App) writeFixture(ctx context.Context, name string, gen fixture.Generator) (fixture.Report, error) {
	path := filepath.Join(a.cfg.FixtureDir, name)
	w := fixture.NewWriter(fixture.WithLogger(a.logger))
	report, err := w.Write(ctx, path, gen)
	if err != nil {
		return report, err
	}
	a.logFreeSpace(ctx, filepath.Dir(path))
	console.PrintFixture(a.out, report)
	return report, nil
}

// RenderBenchmark writes the benchmark PNG, plus the HTML page and terminal
// preview when enabled, and returns the written file paths.
func (a *App) RenderBenchmark(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := a.cfg.Chart
	b := a.Benchmark()

	pngPath := filepath.Join(cfg.OutputDir, cfg.FileName)
	if err := b.RenderPNG(pngPath); err != nil {
		return nil, fmt.Errorf("render %s: %w", pngPath, err)
	}
	files := []string{pngPath}
	a.logger.Info().Str("path", pngPath).Int("points", b.Len()).Msg("benchmark chart written")

	if cfg.HTML {
		htmlPath := filepath.Join(cfg.OutputDir, htmlName(cfg.FileName))
		if err := b.RenderHTML(htmlPath); err != nil {
			return files, fmt.Errorf("render %s: %w", htmlPath, err)
		}
		files = append(files, htmlPath)
		a.logger.Info().Str("path", htmlPath).Msg("benchmark page written")
	}

	if cfg.Preview {
		widget, err := preview.NewBenchmarkWidget(b, previewWidth, previewHeight)
		if err != nil {
			return files, err
		}
		fmt.Fprintln(a.out, widget.View())
	}

	console.PrintChart(a.out, b, files...)
	return files, nil
}

// RunAll writes both fixtures and the chart, stopping at the first failure.
func (a *App) RunAll(ctx context.Context) error {
	if _, err := a.GenerateClosure(ctx); err != nil {
		return fmt.Errorf("closure fixture: %w", err)
	}
	if _, err := a.GenerateHierarchy(ctx); err != nil {
		return fmt.Errorf("hierarchy fixture: %w", err)
	}
	if _, err := a.RenderBenchmark(ctx); err != nil {
		return fmt.Errorf("benchmark chart: %w", err)
	}
	return nil
}

// htmlName swaps the image extension for .html.
func htmlName(pngName string) string {
	return pngName[:len(pngName)-len(filepath.Ext(pngName))] + ".html"
}

// Main bootstraps an App, runs step and returns the process exit code.
func Main(step func(context.Context, *App) error) int {
	a, closer, err := Bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchkit: %v\n", err)
		return 1
	}
	defer closer.Close()

	if err := step(context.Background(), a); err != nil {
		a.logger.Error().Err(err).Msg("run failed")
		console.PrintFailure(os.Stderr, "benchkit", err)
		return 1
	}
	return 0
}
