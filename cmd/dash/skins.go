package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/progress"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List the skin catalog",
	Long:  `Shows every skin with its price and whether the profile owns it.`,
	Args:  cobra.NoArgs,
	RunE:  runSkins,
}

func runSkins(_ *cobra.Command, _ []string) error {
	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	cat := progress.NewCatalog(e.cfg.Skins)
	printCatalog(cat, e.record)

	fmt.Println()
	fmt.Printf("Coins: %d\n", e.record.Coins)
	fmt.Println("Run 'dash shop buy <name>' to buy a skin.")
	return nil
}

func printCatalog(cat *progress.Catalog, rec *progress.Record) {
	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range cat.Skins() {
		if n := len([]rune(s.Name)); n > maxNameLen {
			maxNameLen = n
		}
	}

	fmt.Printf("  %-*s  %-5s  %-5s  %s\n", maxNameLen, "Name", "Glyph", "Price", "Status")
	fmt.Printf("  %-*s  %-5s  %-5s  %s\n", maxNameLen, "----", "-----", "-----", "------")

	for _, s := range cat.Skins() {
		status := "locked"
		switch {
		case s.Free():
			status = "free"
		case rec.Owns(s.Name):
			status = "owned"
		}
		pad := maxNameLen - len([]rune(s.Name))
		fmt.Printf("  %s%*s  %-5c  %-5d  %s\n", s.Name, pad, "", s.Glyph, s.Price, status)
	}
}
