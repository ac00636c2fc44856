package cmd

import (
	"fmt"
	"strconv"

	"github.com/lukman83/sportvision-scrap/internal/models"
	"github.com/lukman83/sportvision-scrap/internal/output"
	"github.com/lukman83/sportvision-scrap/internal/sportvision"
	"github.com/spf13/cobra"
)

var legacyCmd = &cobra.Command{
	Use:   "legacy [pages]",
	Short: "Scrape the full product listing into products.json",
	Long: "Scrape pages 0..pages-1 of the all-products listing and write them to\n" +
		output.DefaultPath + " in the working directory.",
	Args: cobra.ExactArgs(1),
	RunE: runLegacy,
}

func init() {
	rootCmd.AddCommand(legacyCmd)
}

func runLegacy(cmd *cobra.Command, args []string) error {
	pages, err := strconv.Atoi(args[0])
	if err != nil || pages < 0 {
		return fmt.Errorf("argument should be a non-negative number, got %q", args[0])
	}

	selections := []models.Selection{{Category: sportvision.LegacyCategory, Pages: pages}}
	return scrapeAndWrite(cmd.Context(), selections, false, "json", output.DefaultPath)
}
