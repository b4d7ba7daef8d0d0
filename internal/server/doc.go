// Package server implements the MCP (Model Context Protocol) server for favicon generation.
//
// This package provides a JSON-RPC 2.0 server that exposes the favicon
// generator through the MCP protocol, so that an assistant can produce a
// site's icon set and the matching HTML tags without leaving the editor.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Generation:
//   - favicon_generate: Build the icon set under <root>/favicon
//   - favicon_html: Link and meta tags for the assets present
//   - favicon_settings: Settings persisted by the last run
//
// Analysis:
//   - favicon_crop_offset: Cover scale and crop offset for one target size
//   - favicon_crop_preview: The same, plus the resized image with the crop window outlined
//   - image_dimensions: Get width and height
//
// # Source Images
//
// Images are read from disk on every call. A generation run holds a file lock
// on its asset directory, so two clients cannot generate into the same root
// at once; the second call fails instead of waiting.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal().Err(err).Msg("server error")
//	}
package server
