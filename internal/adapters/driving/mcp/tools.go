package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driving"
)

// ParseInput is the input schema for the parse_markup tool.
type ParseInput struct {
	Markup string `json:"markup" jsonschema:"the markup text to parse"`
	Strict bool   `json:"strict,omitempty" jsonschema:"use the HTML5 fragment parser instead of the relaxed scanner"`
	Pretty bool   `json:"pretty,omitempty" jsonschema:"indent the JSON tree"`
}

// ParseOutput is the output schema for the parse_markup tool.
type ParseOutput struct {
	Tree  string      `json:"tree"`
	Stats StatsOutput `json:"stats"`
}

// RenderInput is the input schema for the render_markup tool.
type RenderInput struct {
	Tree string `json:"tree" jsonschema:"the JSON node tree to render back into markup"`
}

// RenderOutput is the output schema for the render_markup tool.
type RenderOutput struct {
	Markup string `json:"markup"`
}

// InspectInput is the input schema for the inspect_markup tool.
type InspectInput struct {
	Markup string `json:"markup" jsonschema:"the markup text to inspect"`
	Strict bool   `json:"strict,omitempty" jsonschema:"use the HTML5 fragment parser instead of the relaxed scanner"`
}

// StatsOutput summarises a parsed tree.
type StatsOutput struct {
	TotalNodes int `json:"total_nodes"`
	Elements   int `json:"elements"`
	TextNodes  int `json:"text_nodes"`
	Comments   int `json:"comments"`
	Attributes int `json:"attributes"`
	MaxDepth   int `json:"max_depth"`
}

func statsOutput(stats domain.Stats) StatsOutput {
	return StatsOutput{
		TotalNodes: stats.TotalNodes(),
		Elements:   stats.Elements,
		TextNodes:  stats.TextNodes,
		Comments:   stats.Comments,
		Attributes: stats.Attributes,
		MaxDepth:   stats.MaxDepth,
	}
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_markup",
		Description: "Parse markup text into a JSON node tree",
	}, s.handleParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render_markup",
		Description: "Render a JSON node tree back into markup text",
	}, s.handleRender)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "inspect_markup",
		Description: "Parse markup text and report node counts and depth",
	}, s.handleInspect)
}

// handleParse handles the parse_markup tool invocation.
func (s *Server) handleParse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ParseInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	result, err := s.ports.Convert.Convert(ctx, input.Markup, driving.ConvertOptions{
		Strict: input.Strict,
		Pretty: input.Pretty,
	})
	if err != nil {
		return nil, ParseOutput{}, err
	}

	return nil, ParseOutput{
		Tree:  string(result.JSON),
		Stats: statsOutput(result.Stats),
	}, nil
}

// handleRender handles the render_markup tool invocation.
func (s *Server) handleRender(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenderInput,
) (*mcp.CallToolResult, RenderOutput, error) {
	markup, err := s.ports.Convert.Render(ctx, []byte(input.Tree))
	if err != nil {
		return nil, RenderOutput{}, err
	}

	return nil, RenderOutput{Markup: markup}, nil
}

// handleInspect handles the inspect_markup tool invocation.
func (s *Server) handleInspect(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InspectInput,
) (*mcp.CallToolResult, StatsOutput, error) {
	stats, err := s.ports.Convert.Inspect(ctx, input.Markup, driving.ConvertOptions{
		Strict: input.Strict,
	})
	if err != nil {
		return nil, StatsOutput{}, err
	}

	return nil, statsOutput(stats), nil
}
