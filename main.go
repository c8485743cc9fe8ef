package main

import (
	"context"
	"os"

	"benchkit/internal/app"
	"benchkit/ui/tui"
)

func main() {
	os.Exit(app.Main(func(ctx context.Context, a *app.App) error {
		if a.Config().Interactive {
			return tui.Start(ctx, a.Silent())
		}
		// Fixtures first, then the chart; any failure exits non-zero.
		return a.RunAll(ctx)
	}))
}
