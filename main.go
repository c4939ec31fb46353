// Package main is the entry point for the TianguiStore server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/bootstrap"
)

// run initializes and starts the TianguiStore server.
func run() error {
	ctx := context.Background()

	app, err := bootstrap.NewApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.Start(ctx); err != nil {
		app.Shutdown()
		return fmt.Errorf("failed to start application: %w", err)
	}

	app.WaitForShutdown()
	app.Shutdown()

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
