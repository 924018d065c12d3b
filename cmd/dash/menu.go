package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/dash"
	"github.com/vovakirdan/tui-dash/internal/platform/tui"
)

var flagMenuSpectate string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start dash in interactive menu mode.

From the menu you can start a run (pick a difficulty, then a skin), look
at your best scores or spend coins in the shop. After a run ends you
return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  1-4          - Pick an item directly
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  dash menu
  dash menu --fps 30
  dash menu --profile alice --db ./dash.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuSpectate, "spectate", "", "Serve runs to spectators on this address")
}

func runMenu(_ *cobra.Command, _ []string) error {
	e, err := openEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	var frames dash.FrameSink
	if flagMenuSpectate != "" {
		hub, srv, err := startSpectator(flagMenuSpectate, e.store, e.logger)
		if err != nil {
			return err
		}
		defer stopSpectator(srv)
		frames = hub
	}

	final, err := tui.Run(tui.SessionConfig{
		Dash:      e.cfg,
		Runtime:   runtimeConfig(),
		Profile:   e.profile.Name(),
		Record:    e.record,
		Persister: e.profile,
		Frames:    frames,
		Audio:     tui.NewBellAudio(os.Stdout, e.logger),
		Logger:    e.logger,
	})
	if err != nil {
		return fmt.Errorf("running menu: %w", err)
	}

	rec := final.Record()
	if rec != nil {
		fmt.Printf("Coins: %d  Best: %d\n", rec.Coins, rec.Best())
	}
	return nil
}
