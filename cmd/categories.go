package cmd

import (
	"fmt"
	"strings"

	"github.com/lukman83/sportvision-scrap/internal/models"
	"github.com/lukman83/sportvision-scrap/internal/sportvision"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories that can be scraped",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Categories on %s:\n\n", cfg.BaseURL)
	for i, c := range sportvision.Categories() {
		fmt.Fprintf(out, " %2d. %-10s  %-22s  %s\n", i+1, c.Name, c.Label, sportvision.PageURL(cfg.BaseURL, c, 0))
	}
	return nil
}

// describeSelections formats selections for progress output, e.g.
// "odeca (2 pages), obuca (1 page)".
func describeSelections(selections []models.Selection) string {
	parts := make([]string, 0, len(selections))
	for _, s := range selections {
		unit := "pages"
		if s.Pages == 1 {
			unit = "page"
		}
		parts = append(parts, fmt.Sprintf("%s (%d %s)", s.Category, s.Pages, unit))
	}
	return strings.Join(parts, ", ")
}
