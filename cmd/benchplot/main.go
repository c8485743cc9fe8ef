// Command benchplot renders the benchmark timing chart.
package main

import (
	"context"
	"os"

	"benchkit/internal/app"
)

func main() {
	os.Exit(app.Main(func(ctx context.Context, a *app.App) error {
		_, err := a.RenderBenchmark(ctx)
		return err
	}))
}
