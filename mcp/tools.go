package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lukman83/sportvision-scrap/internal/models"
	"github.com/lukman83/sportvision-scrap/internal/sportvision"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ScrapeFunc runs one scrape over the given selections.
type ScrapeFunc func(ctx context.Context, selections []models.Selection, strict bool) (*sportvision.Report, error)

func registerTools(s *server.MCPServer, scrape ScrapeFunc) {
	scrapeTool := mcp.NewTool("scrape_products",
		mcp.WithDescription("Scrape sportvision.rs product listings for one or more categories"),
		mcp.WithString("selections",
			mcp.Required(),
			mcp.Description(`Comma-separated category=pages list, e.g. "odeca=2,obuca=1". Pages run 0..pages-1`),
		),
		mcp.WithBoolean("strict",
			mcp.Description("Fail on the first skipped page or listing node (default: false)"),
		),
	)
	s.AddTool(scrapeTool, scrapeHandler(scrape))

	categoriesTool := mcp.NewTool("list_categories",
		mcp.WithDescription("List the categories that can be scraped"),
	)
	s.AddTool(categoriesTool, handleListCategories)
}

func scrapeHandler(scrape ScrapeFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := request.GetString("selections", "")
		if raw == "" {
			return mcp.NewToolResultError("selections is required"), nil
		}
		selections, err := sportvision.ParseSelections([]string{raw})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid selections: %v", err)), nil
		}

		report, err := scrape(ctx, selections, request.GetBool("strict", false))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("scrape error: %v", err)), nil
		}

		data, _ := json.MarshalIndent(report, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

type categoryInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

func handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var out []categoryInfo
	for _, c := range sportvision.Categories() {
		out = append(out, categoryInfo{Name: c.Name, Label: c.Label, Path: c.Path})
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}
