// Command benchmcp serves the benchkit steps as MCP tools over stdio.
package main

import (
	"context"
	"os"

	"benchkit/internal/app"
	"benchkit/internal/logger"
	"benchkit/internal/mcpserver"
)

const version = "0.1.0"

func main() {
	os.Exit(app.Main(func(ctx context.Context, a *app.App) error {
		// stdout carries the protocol.
		runner := a.With(app.WithOutput(os.Stderr))
		srv := mcpserver.NewServer(mcpserver.Config{
			ServerName:    "benchkit",
			ServerVersion: version,
		}, runner, logger.Logger)
		return srv.Start(ctx)
	}))
}
