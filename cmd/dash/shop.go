package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/progress"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Buy skins from the command line",
	Long: `Browse and buy skins without starting the TUI.

Examples:
  dash shop list
  dash shop buy Бобер`,
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skins for sale",
	Args:  cobra.NoArgs,
	RunE:  runShopList,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <skin>",
	Short: "Buy a skin",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopBuy,
}

func init() {
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
}

func runShopList(_ *cobra.Command, _ []string) error {
	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	cat := progress.NewCatalog(e.cfg.Skins)
	fmt.Printf("Shop - %d coins\n", e.record.Coins)
	fmt.Println()
	for i, s := range cat.ForSale() {
		mark := ""
		if e.record.Owns(s.Name) {
			mark = " ✓"
		}
		fmt.Printf("  %d: %s (%d Coins)%s\n", i+1, s.Name, s.Price, mark)
	}
	return nil
}

func runShopBuy(_ *cobra.Command, args []string) error {
	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	cat := progress.NewCatalog(e.cfg.Skins)
	skin, err := progress.Purchase(e.record, cat, args[0])
	if err != nil {
		return err
	}
	if err := e.profile.Persist(e.record); err != nil {
		return fmt.Errorf("purchase not saved: %w", err)
	}

	e.logger.Info("skin purchased", "profile", e.profile.Name(), "skin", skin.Name, "price", skin.Price)
	fmt.Printf("Bought %s! %d coins left.\n", skin.Name, e.record.Coins)
	return nil
}
