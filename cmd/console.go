package cmd

import (
	"context"
	"fmt"

	"smart-parking/internal/data/store"
	"smart-parking/internal/wire"
)

// RunConsole drives the interactive session and persists the final state
// when the user exits.
func RunConsole(ctx context.Context, app *wire.App, st store.Store) error {
	fmt.Println("Smart Parking Management System starting...")

	app.Console.Run()

	snapshot := app.Service.Parking.Snapshot()
	if err := st.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save state on exit: %w", err)
	}
	return nil
}
