package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// URIScheme is the custom URI scheme for rfcdex resources.
	uriScheme = "rfcdex://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for bookmarked RFCs.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "bookmarks",
		Name:        "bookmarks",
		Description: "Bookmarked RFCs in the local corpus",
		MIMEType:    "application/json",
	}, s.handleBookmarksResource)

	// Template for document content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "rfcs/{number}",
		Name:        "rfc-content",
		Description: "Full text of a specific RFC",
		MIMEType:    "text/plain",
	}, s.handleRFCResource)
}

// handleBookmarksResource returns the bookmarked records as JSON.
func (s *Server) handleBookmarksResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Retrieval.Bookmarked(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}

	infos := make([]BookmarkOutput, len(records))
	for i, rec := range records {
		infos[i] = BookmarkOutput{
			Number:   rec.Number,
			Title:    rec.Title,
			Category: rec.Category.String(),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling bookmarks: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRFCResource returns the body of one RFC.
func (s *Server) handleRFCResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract the number from URI: rfcdex://rfcs/{number}
	number := extractNumber(req.Params.URI)
	if number <= 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rec, err := s.ports.Retrieval.ByNumber(ctx, number)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	text := rec.Body
	if rec.Title != "" {
		text = rec.Title + "\n\n" + rec.Body
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}

// extractNumber parses the RFC number out of an rfcdex://rfcs/{number} URI.
// Returns 0 when the URI does not match.
func extractNumber(uri string) int {
	rest, ok := strings.CutPrefix(uri, uriScheme+"rfcs/")
	if !ok {
		return 0
	}
	number, err := strconv.Atoi(rest)
	if err != nil {
		return 0
	}
	return number
}
