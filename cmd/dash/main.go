// dash is a terminal side-scrolling runner: jump over obstacles, collect
// coins, spend them on skins.
//
// Usage:
//
//	dash play               - Start a run directly
//	dash menu               - Start the interactive menu
//	dash scores             - Show the best scores of a profile
//	dash skins              - List the skin catalog
//	dash shop buy <skin>    - Buy a skin without the TUI
//	dash serve              - Start SSH server for remote play
//	dash sim                - Run headless with an autopilot
//	dash export/import      - Move progress as a JSON document
//	dash reset              - Wipe a profile
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/dash.db)
//	--config <path>     - Custom dash.yaml
//	--profile <name>    - Progress profile (default: local)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagProfile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Dash - a side-scrolling runner in your terminal",
	Long: `Dash is a terminal runner. Your square slides along the floor while
obstacles scroll in from the right; jump over them, grab coins and reach
4000 points to win. Coins buy skins in the shop.

Available commands:
  play     - Start a run directly
  menu     - Interactive menu with scores and shop
  scores   - View best scores
  skins    - List skins and prices
  shop     - Buy skins from the command line
  serve    - Start SSH server for remote play
  sim      - Run headless with an autopilot
  export   - Write progress as JSON
  import   - Replace progress from JSON
  reset    - Wipe a profile

Examples:
  dash play --difficulty hard
  dash menu
  dash serve --ssh :2222 --spectate :8080
  dash sim --difficulty easy --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/dash.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom dash config YAML")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Progress profile name")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
}
