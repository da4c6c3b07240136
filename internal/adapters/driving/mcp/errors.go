// Package mcp provides an MCP (Model Context Protocol) server adapter for treeml.
// It enables AI assistants like Claude to parse, render and inspect markup locally.
package mcp

import "errors"

// ErrMissingConvertService is returned when the convert service is not provided.
var ErrMissingConvertService = errors.New("mcp: convert service is required")
