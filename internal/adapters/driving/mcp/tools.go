package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rfcdex/rfcdex/internal/core/domain"
	"github.com/rfcdex/rfcdex/internal/core/services"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to find RFCs"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 25)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Number int     `json:"number"`
	Title  string  `json:"title"`
	Rank   float64 `json:"rank"`
}

// GetRFCInput is the input schema for the get_rfc tool.
type GetRFCInput struct {
	Number int `json:"number" jsonschema:"the RFC number to retrieve"`
}

// GetRFCOutput is the output schema for the get_rfc tool.
type GetRFCOutput struct {
	Number     int    `json:"number"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Bookmarked bool   `json:"bookmarked"`
	Body       string `json:"body"`
}

// ListBookmarksOutput is the output schema for the list_bookmarks tool.
type ListBookmarksOutput struct {
	Bookmarks []BookmarkOutput `json:"bookmarks"`
	Count     int              `json:"count"`
}

// BookmarkOutput represents a single bookmarked RFC.
type BookmarkOutput struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Full-text search across the local RFC corpus",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_rfc",
		Description: "Retrieve the full text of an RFC by number",
	}, s.handleGetRFC)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_bookmarks",
		Description: "List all bookmarked RFCs",
	}, s.handleListBookmarks)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = services.DefaultSearchLimit
	}

	hits, err := s.ports.Retrieval.ByKeyword(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(hits)),
		Count:   len(hits),
	}
	for i, hit := range hits {
		output.Results[i] = SearchResultOutput{
			Number: hit.Number,
			Title:  hit.Title,
			Rank:   hit.Rank,
		}
	}

	return nil, output, nil
}

// handleGetRFC handles the get_rfc tool invocation.
func (s *Server) handleGetRFC(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetRFCInput,
) (*mcp.CallToolResult, GetRFCOutput, error) {
	rec, err := s.ports.Retrieval.ByNumber(ctx, input.Number)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, GetRFCOutput{}, fmt.Errorf("RFC %d is not in the local corpus", input.Number)
		}
		return nil, GetRFCOutput{}, err
	}

	return nil, GetRFCOutput{
		Number:     rec.Number,
		Title:      rec.Title,
		Category:   rec.Category.String(),
		Bookmarked: rec.Bookmarked,
		Body:       rec.Body,
	}, nil
}

// handleListBookmarks handles the list_bookmarks tool invocation.
func (s *Server) handleListBookmarks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListBookmarksOutput, error) {
	records, err := s.ports.Retrieval.Bookmarked(ctx)
	if err != nil {
		return nil, ListBookmarksOutput{}, err
	}

	output := ListBookmarksOutput{
		Bookmarks: make([]BookmarkOutput, len(records)),
		Count:     len(records),
	}
	for i, rec := range records {
		output.Bookmarks[i] = BookmarkOutput{
			Number:   rec.Number,
			Title:    rec.Title,
			Category: rec.Category.String(),
		}
	}

	return nil, output, nil
}
