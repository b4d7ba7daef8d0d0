package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func styleSchema(device string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Background and margin for " + device + " icons",
		"properties": map[string]interface{}{
			"background": map[string]interface{}{
				"type":        "string",
				"description": "Background colour as RRGGBB hex, or a tile colour name (teal, darkblue, lightpurple, darkpurple, darkred, darkorange, yellow, green, blue)",
			},
			"margin": map[string]interface{}{
				"type":        "integer",
				"description": "Margin in pixels around the icon, 0-15. Only applies with a background",
				"minimum":     0,
				"maximum":     15,
			},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Generation
		{
			Name:        "favicon_generate",
			Description: "Generate favicons, Apple touch icons, Android Chrome icons with manifest.json, and Windows tiles with browserconfig.xml from one source image. Assets go to <root>/favicon. Existing files are kept unless the source or an image setting changed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"root": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the site root; assets are written to <root>/favicon",
					},
					"icon": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image. Omit to reuse the previously stored source",
					},
					"compression": map[string]interface{}{
						"type":        "string",
						"description": "PNG compression level",
						"enum":        []string{"original", "low", "high", "veryhigh"},
					},
					"crop_method": map[string]interface{}{
						"type":        "string",
						"description": "How to choose the crop window when the source aspect ratio differs from the icon",
						"enum":        []string{"center", "balanced", "entropy"},
					},
					"styles": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"apple":   styleSchema("Apple touch"),
							"android": styleSchema("Android Chrome"),
							"ms":      styleSchema("Windows tile (background only sets TileColor)"),
						},
					},
					"android": map[string]interface{}{
						"type":        "object",
						"description": "Web app manifest metadata",
						"properties": map[string]interface{}{
							"name":        map[string]interface{}{"type": "string"},
							"url":         map[string]interface{}{"type": "string", "description": "start_url"},
							"orientation": map[string]interface{}{"type": "string", "enum": []string{"portrait", "landscape"}},
						},
					},
					"families": map[string]interface{}{
						"type":        "array",
						"description": "Device families to generate. Default: all",
						"items": map[string]interface{}{
							"type": "string",
							"enum": []string{"basic", "apple", "android", "microsoft"},
						},
					},
					"force": map[string]interface{}{
						"type":        "boolean",
						"description": "Regenerate every asset even if nothing changed",
						"default":     false,
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Random seed for the balanced crop, for reproducible output",
					},
					"url_prefix": map[string]interface{}{
						"type":        "string",
						"description": "Public path of the asset directory. Default /favicon",
					},
				},
				"required": []string{"root"},
			},
		},
		{
			Name:        "favicon_html",
			Description: "Return the <link> and <meta> tags for the favicon assets present under <root>/favicon.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"root": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the site root",
					},
					"url_prefix": map[string]interface{}{
						"type":        "string",
						"description": "Public path of the asset directory. Default /favicon",
					},
				},
				"required": []string{"root"},
			},
		},
		{
			Name:        "favicon_settings",
			Description: "Return the settings persisted by the last generation under <root>/favicon.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"root": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the site root",
					},
				},
				"required": []string{"root"},
			},
		},

		// Analysis
		{
			Name:        "favicon_crop_offset",
			Description: "Show how an image would be scaled and cropped to a target size: the cover scale, the resized dimensions, and the crop offset chosen by the crop method.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels. Default: width",
					},
					"method": map[string]interface{}{
						"type":        "string",
						"description": "Crop method. Default center",
						"enum":        []string{"center", "balanced", "entropy"},
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Random seed for the balanced method",
					},
				},
				"required": []string{"path", "width"},
			},
		},
		{
			Name:        "favicon_crop_preview",
			Description: "Like favicon_crop_offset, but also return the resized image as base64 PNG with the crop window outlined in red and the discarded area dimmed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels. Default: width",
					},
					"method": map[string]interface{}{
						"type":        "string",
						"description": "Crop method. Default center",
						"enum":        []string{"center", "balanced", "entropy"},
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Random seed for the balanced method",
					},
				},
				"required": []string{"path", "width"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Describe a candidate source icon: width, height, detected format, alpha channel, whether it is square, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
