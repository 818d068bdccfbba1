// Package server implements the MCP (Model Context Protocol) server for the
// color vision deficiency simulator.
//
// The server speaks JSON-RPC 2.0 over stdio:
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
// Color Operations:
//   - color_parse: Parse HEX, RGB or RGBL text
//   - color_simulate: Simulate one color under one variant
//   - color_simulate_all: Simulate one color under every variant
//   - variants_list: Describe the supported variants
//
// Palette Operations:
//   - palette_add, palette_remove, palette_clear: Edit the session palette
//   - palette_show: Render the session palette under a variant
//   - palette_confusable: Find color pairs a variant makes hard to tell apart
//
// Image Operations:
//   - image_load: Load image and get metadata
//   - image_simulate: Simulate a variant on a whole image or a region
//   - image_sample_color: Original and simulated color at a pixel
//   - image_dominant_colors: Dominant palette with simulated entries
//
// Every "variant" argument is optional. When omitted, the variant from
// Config.DefaultVariant is used.
//
// # Session State
//
// A Server owns one image cache and one palette. Both live for the lifetime
// of the process and are shared by every tool call.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.NewWithConfig(server.ConfigFromEnv())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
