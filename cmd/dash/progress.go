package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/progress"
)

var flagResetYes bool

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write progress as JSON",
	Long: `Write the profile's coins, scores and skins as a JSON document
({"coins", "best_scores", "skins"}). Without a file the document goes to
stdout.

Examples:
  dash export
  dash export backup.json --profile alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace progress from JSON",
	Long: `Replace the profile's progress with a JSON document written by
'dash export'. Use "-" to read stdin.

Examples:
  dash import backup.json
  dash import - --profile alice < backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe a profile",
	Long: `Delete all coins, scores and skins of a profile.

Examples:
  dash reset
  dash reset --profile alice --yes`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Do not ask for confirmation")
}

func runExport(_ *cobra.Command, args []string) error {
	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	if len(args) == 1 && args[0] != "-" {
		if err := (progress.JSONFile{Path: args[0]}).Persist(e.record); err != nil {
			return err
		}
	} else if err := progress.WriteJSON(os.Stdout, e.record); err != nil {
		return err
	}
	e.logger.Debug("progress exported", "profile", e.profile.Name(), "scores", len(e.record.BestScores))
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	rec, err := readDocument(args[0])
	if err != nil {
		return err
	}

	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.store.Replace(e.profile.Name(), rec); err != nil {
		return err
	}

	e.logger.Info("progress imported", "profile", e.profile.Name(), "coins", rec.Coins, "scores", len(rec.BestScores))
	fmt.Printf("Imported %d coins, %d scores and %d skins into %s.\n",
		rec.Coins, len(rec.BestScores), len(rec.Skins), e.profile.Name())
	return nil
}

func runReset(_ *cobra.Command, _ []string) error {
	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	if !flagResetYes && !confirm(fmt.Sprintf("Wipe all progress of %q?", e.profile.Name())) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := e.store.Reset(e.profile.Name()); err != nil {
		return err
	}
	e.logger.Info("profile reset", "profile", e.profile.Name())
	fmt.Printf("Progress of %s wiped.\n", e.profile.Name())
	return nil
}

// readDocument reads a progress document from path, or stdin for "-".
// Unlike JSONFile.Load, a missing file is an error.
func readDocument(path string) (*progress.Record, error) {
	if path == "-" {
		return progress.ReadJSON(os.Stdin)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return progress.JSONFile{Path: path}.Load()
}

func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
