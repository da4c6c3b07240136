package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for treeml resources.
	uriScheme = "treeml://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing archived conversions.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "records",
		Name:        "records",
		Description: "List of all archived conversions",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)

	// Template for an archived tree.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "records/{recordId}",
		Name:        "record-tree",
		Description: "JSON node tree of an archived conversion",
		MIMEType:    "application/json",
	}, s.handleRecordTreeResource)

	// Template for the original markup of an archived conversion.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "records/{recordId}/source",
		Name:        "record-source",
		Description: "Original markup of an archived conversion",
		MIMEType:    "text/html",
	}, s.handleRecordSourceResource)
}

// handleRecordsResource returns a list of all archived conversions.
func (s *Server) handleRecordsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Archive == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	records, err := s.ports.Archive.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	// Build simplified record list.
	type recordInfo struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Nodes     int    `json:"nodes"`
		MaxDepth  int    `json:"max_depth"`
		CreatedAt string `json:"created_at"`
	}

	infos := make([]recordInfo, len(records))
	for i := range records {
		infos[i] = recordInfo{
			ID:        records[i].ID,
			Name:      records[i].Name,
			Nodes:     records[i].Stats.TotalNodes(),
			MaxDepth:  records[i].Stats.MaxDepth,
			CreatedAt: records[i].CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling records: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRecordTreeResource returns the JSON tree of one archived conversion.
func (s *Server) handleRecordTreeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Archive == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract recordId from URI: treeml://records/{recordId}
	recordID := extractRecordID(req.Params.URI)
	if recordID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rec, err := s.ports.Archive.Get(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     rec.Tree,
		}},
	}, nil
}

// handleRecordSourceResource returns the original markup of one archived
// conversion.
func (s *Server) handleRecordSourceResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Archive == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract recordId from URI: treeml://records/{recordId}/source
	recordID := extractSourceRecordID(req.Params.URI)
	if recordID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rec, err := s.ports.Archive.Get(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/html",
			Text:     rec.Source,
		}},
	}, nil
}

// extractRecordID extracts the record ID from a URI like treeml://records/{recordId}.
// An ID containing a path separator belongs to another template.
func extractRecordID(uri string) string {
	const prefix = uriScheme + "records/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if id == "" || strings.Contains(id, "/") {
		return ""
	}

	return id
}

// extractSourceRecordID extracts the record ID from a URI like
// treeml://records/{recordId}/source.
func extractSourceRecordID(uri string) string {
	const prefix = uriScheme + "records/"
	const suffix = "/source"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	id := strings.TrimSuffix(uri, suffix)
	if id == "" || strings.Contains(id, "/") {
		return ""
	}

	return id
}
