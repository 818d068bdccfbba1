package server

import (
	"github.com/ironsheep/colorblind-sim-mcp/internal/colorblind"
	"github.com/ironsheep/colorblind-sim-mcp/internal/palette"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// variantNames lists the canonical variant names for schema enums.
func variantNames() []string {
	vs := colorblind.Variants()
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.String()
	}
	return names
}

func variantProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        variantNames(),
		"description": "Color vision deficiency to simulate. Defaults to the server's configured variant (normal unless overridden).",
	}
}

func colorProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Color as HEX (#FF0000 or FF0000), RGB (255,0,0) or RGBL (255,0,0,128)",
	}
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file (PNG, JPEG, GIF, BMP, TIFF or WebP)",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Operations
		{
			Name:        "color_parse",
			Description: "Parse a color string and return it as RGB, HEX and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty(),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_simulate",
			Description: "Show how a single color appears with a color vision deficiency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":   colorProperty(),
					"variant": variantProperty(),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_simulate_all",
			Description: "Show how a single color appears under every supported color vision deficiency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty(),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "variants_list",
			Description: "List the supported color vision deficiencies with descriptions.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Palette Operations
		{
			Name:        "palette_add",
			Description: "Add a color to the session palette and return the updated palette.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty(),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "palette_remove",
			Description: "Remove the color at a 0-based position from the session palette.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"index": map[string]interface{}{
						"type":        "integer",
						"description": "0-based position of the color to remove",
					},
				},
				"required": []string{"index"},
			},
		},
		{
			Name:        "palette_clear",
			Description: "Remove every color from the session palette.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "palette_show",
			Description: "Show the session palette as seen with a color vision deficiency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"variant": variantProperty(),
				},
			},
		},
		{
			Name:        "palette_confusable",
			Description: "Find pairs of colors that are distinct in normal vision but hard to tell apart with a color vision deficiency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       colorProperty(),
						"description": "Colors to check. If omitted, the session palette is used.",
					},
					"variant": variantProperty(),
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "CIEDE2000 distance below which colors count as confusable",
						"default":     palette.DefaultThreshold,
					},
				},
			},
		},

		// Image Operations
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_simulate",
			Description: "Simulate a color vision deficiency on an image and return it as base64-encoded PNG, scaled to fit the preview bounds.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty(),
					"variant": variantProperty(),
					"max_width": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum preview width in pixels",
						"default":     DefaultMaxWidth,
					},
					"max_height": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum preview height in pixels",
						"default":     DefaultMaxHeight,
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to simulate. If omitted, the entire image is used.",
					},
					"side_by_side": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the original and simulated images next to each other",
						"default":     false,
					},
					"captions": map[string]interface{}{
						"type":        "boolean",
						"description": "Label each panel with its vision type",
						"default":     false,
					},
					"encoding": map[string]interface{}{
						"type":        "string",
						"enum":        []string{encodingPNG, encodingRGB24},
						"description": "Output encoding: base64 PNG, or base64 packed RGB bytes without alpha",
						"default":     encodingPNG,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file path to also save the result to. The format follows the extension.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel and how it appears with a color vision deficiency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
					"variant": variantProperty(),
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the N most dominant colors of an image and show them with a color vision deficiency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
					"variant": variantProperty(),
				},
				"required": []string{"path"},
			},
		},
	}
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
