package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/dash"
	"github.com/vovakirdan/tui-dash/internal/platform/tui"
	"github.com/vovakirdan/tui-dash/internal/progress"
)

var (
	flagDifficulty string
	flagSkin       string
	flagSpectate   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run directly",
	Long: `Start a single run without the menu.

Controls:
  Space/Up/Right - Jump
  Down           - Drop to the floor
  P              - Pause
  Esc            - End the run
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - speed 3
  medium - speed 5
  hard   - speed 7
Speed rises by 0.2 every 1000 points.

Examples:
  dash play
  dash play --difficulty hard
  dash play --skin Бобер
  dash play --spectate :8080`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", string(config.TierEasy), "Difficulty tier: easy, medium, hard")
	playCmd.Flags().StringVar(&flagSkin, "skin", "", "Skin name (default: last owned skin)")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve the run to spectators on this address")
}

func runPlay(_ *cobra.Command, _ []string) error {
	tier, err := config.ParseTier(flagDifficulty)
	if err != nil {
		return err
	}

	e, err := openEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	skin, err := pickSkin(e, flagSkin)
	if err != nil {
		return err
	}

	var frames dash.FrameSink
	if flagSpectate != "" {
		hub, srv, err := startSpectator(flagSpectate, e.store, e.logger)
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
		Direct:    &dash.RunConfig{Tier: tier, Skin: skin},
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if res, ok := final.LastResult(); ok {
		printResult(res)
	}
	return nil
}

// pickSkin resolves the skin flag. Without one, the last owned skin or the
// first free skin is used.
func pickSkin(e *env, name string) (string, error) {
	cat := progress.NewCatalog(e.cfg.Skins)
	if name == "" {
		return cat.Skins()[cat.DefaultIndex(e.record)].Name, nil
	}
	if err := cat.CheckSelectable(e.record, name); err != nil {
		return "", err
	}
	return name, nil
}

func printResult(res dash.Result) {
	switch res.Outcome {
	case dash.OutcomeVictory:
		fmt.Println("Victory!")
	case dash.OutcomeDefeat:
		fmt.Println("Game Over!")
	default:
		fmt.Println("Run ended.")
	}
	fmt.Printf("Score: %d  Lives: %d  Coins picked up: %d\n", res.Score, res.Lives, res.PickedUp)
	if res.Record != nil {
		fmt.Printf("Wallet: %d coins  Best: %d\n", res.Record.Coins, res.Record.Best())
	}
	if res.PersistErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: progress was not saved: %v\n", res.PersistErr)
	}
}
