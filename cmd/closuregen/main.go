// Command closuregen writes closure.db, a random edge relation for
// transitive closure benchmarks.
package main

import (
	"context"
	"os"

	"benchkit/internal/app"
)

func main() {
	os.Exit(app.Main(func(ctx context.Context, a *app.App) error {
		_, err := a.GenerateClosure(ctx)
		return err
	}))
}
