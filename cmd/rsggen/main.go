// Command rsggen writes rsg.db, the fixed up/flat/down hierarchy relations.
package main

import (
	"context"
	"os"

	"benchkit/internal/app"
)

func main() {
	os.Exit(app.Main(func(ctx context.Context, a *app.App) error {
		_, err := a.GenerateHierarchy(ctx)
		return err
	}))
}
