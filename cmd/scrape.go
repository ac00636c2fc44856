package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/lukman83/sportvision-scrap/internal/models"
	"github.com/lukman83/sportvision-scrap/internal/output"
	"github.com/lukman83/sportvision-scrap/internal/platform"
	"github.com/lukman83/sportvision-scrap/internal/sportvision"
	"github.com/lukman83/sportvision-scrap/internal/ui"
	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [category=pages ...]",
	Short: "Scrape pages 0..pages-1 of each category",
	Long: "Scrape product listings for one or more categories.\n\n" +
		"Each argument is category=pages, e.g. \"odeca=2 obuca=1\" or \"odeca=2,obuca=1\".\n" +
		"Pages are counted from 0 and the upper bound is exclusive.",
	Example: "  sportvision scrape odeca=2 obuca=3 -o sportvision.json",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runScrapeCmd,
}

func init() {
	scrapeCmd.Flags().StringP("output", "o", "", "Output file (default from $SPORTVISION_OUTPUT or products.json)")
	scrapeCmd.Flags().Bool("strict", false, "Abort on the first failed page or listing node")
	scrapeCmd.Flags().String("format", "json", "Output format: json (file), table (stdout)")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrapeCmd(cmd *cobra.Command, args []string) error {
	selections, err := sportvision.ParseSelections(args)
	if err != nil {
		return err
	}

	path := cfg.OutputPath
	if p, _ := cmd.Flags().GetString("output"); p != "" {
		path = p
	}
	strict, _ := cmd.Flags().GetBool("strict")
	format, _ := cmd.Flags().GetString("format")

	return scrapeAndWrite(cmd.Context(), selections, strict, format, path)
}

func scrapeAndWrite(ctx context.Context, selections []models.Selection, strict bool, format, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if format != "json" && format != "table" {
		return fmt.Errorf("unknown format %q (want json or table)", format)
	}

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Scraping %s...", describeSelections(selections)))
	report, err := runScrape(platform.WithProgress(ctx, spin.Update), selections, strict)
	spin.Stop()

	if report != nil {
		printFailures(os.Stderr, report.Failures)
	}
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	switch format {
	case "table":
		printProductsTable(os.Stdout, report.Products)
		return nil
	case "json":
		if err := output.WriteJSON(path, report.Products); err != nil {
			return err
		}
	}

	logger.Info("products written",
		"path", path,
		"products", len(report.Products),
		"pages", report.Pages,
		"skipped", len(report.Failures),
	)
	return nil
}
