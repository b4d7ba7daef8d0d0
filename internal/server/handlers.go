package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/ironsheep/favicon-tools-mcp/internal/config"
	"github.com/ironsheep/favicon-tools-mcp/internal/crop"
	"github.com/ironsheep/favicon-tools-mcp/internal/devices"
	"github.com/ironsheep/favicon-tools-mcp/internal/favicon"
	"github.com/ironsheep/favicon-tools-mcp/internal/fit"
	"github.com/ironsheep/favicon-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "favicon_generate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Generation
	case "favicon_generate":
		return s.handleFaviconGenerate(args)
	case "favicon_html":
		return s.handleFaviconHTML(args)
	case "favicon_settings":
		return s.handleFaviconSettings(args)

	// Analysis
	case "favicon_crop_offset":
		return s.handleFaviconCropOffset(args)
	case "favicon_crop_preview":
		return s.handleFaviconCropPreview(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Generation Handlers ===

type styleArgs struct {
	Background string `json:"background"`
	Margin     int    `json:"margin"`
}

type faviconGenerateArgs struct {
	Root        string               `json:"root"`
	Icon        string               `json:"icon"`
	Compression string               `json:"compression"`
	CropMethod  string               `json:"crop_method"`
	Styles      map[string]styleArgs `json:"styles"`
	Android     *config.AndroidMeta  `json:"android"`
	Families    []string             `json:"families"`
	Force       bool                 `json:"force"`
	Seed        *uint64              `json:"seed"`
	URLPrefix   string               `json:"url_prefix"`
}

// FaviconGenerateResult is returned by favicon_generate.
type FaviconGenerateResult struct {
	Dir    string          `json:"dir"`
	Stale  bool            `json:"stale"`
	Report favicon.Report  `json:"report"`
	Config config.Settings `json:"settings"`
	HTML   string          `json:"html,omitempty"`
}

func (a faviconGenerateArgs) overrides() (config.Overrides, error) {
	var o config.Overrides

	if a.Compression != "" {
		c, err := config.ParseCompression(a.Compression)
		if err != nil {
			return o, err
		}
		o.Compression = &c
	}

	if a.CropMethod != "" {
		m, err := crop.ParseMethod(a.CropMethod)
		if err != nil {
			return o, fmt.Errorf("%w: %w", config.ErrInvalidConfiguration, err)
		}
		o.CropMethod = &m
	}

	if len(a.Styles) > 0 {
		o.Styles = make(map[config.DeviceKey]config.DeviceStyle, len(a.Styles))
		for key, st := range a.Styles {
			o.Styles[config.DeviceKey(key)] = config.DeviceStyle{
				Background: config.ResolveColor(st.Background),
				Margin:     st.Margin,
			}
		}
	}

	o.Android = a.Android
	return o, nil
}

func generatorOptions(seed *uint64, urlPrefix string, force bool) favicon.Options {
	opts := favicon.Options{Force: force, URLPrefix: urlPrefix}
	if seed != nil {
		opts.CropOptions = []crop.Option{crop.WithSeed(*seed)}
	}
	return opts
}

func (s *Server) handleFaviconGenerate(args json.RawMessage) (result interface{}, err error) {
	var a faviconGenerateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Root == "" {
		return nil, errors.New("root is required")
	}

	families := devices.Families
	if len(a.Families) > 0 {
		families = nil
		for _, name := range a.Families {
			f, err := devices.ParseFamily(name)
			if err != nil {
				return nil, err
			}
			families = append(families, f)
		}
	}

	overrides, err := a.overrides()
	if err != nil {
		return nil, err
	}

	g, err := favicon.New(a.Root, a.Icon, generatorOptions(a.Seed, a.URLPrefix, a.Force))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := g.Close(); cerr != nil && err == nil {
			result, err = nil, cerr
		}
	}()

	if err := g.Apply(overrides); err != nil {
		return nil, err
	}

	res := &FaviconGenerateResult{Dir: g.Dir(), Stale: g.Stale()}
	for _, f := range families {
		r, err := g.Create(f)
		res.Report.Written = append(res.Report.Written, r.Written...)
		res.Report.Skipped = append(res.Report.Skipped, r.Skipped...)
		if err != nil {
			return nil, err
		}
	}
	res.Config = g.Settings()

	if html, err := g.HTML(); err == nil {
		res.HTML = html
	}
	return res, nil
}

type faviconHTMLArgs struct {
	Root      string `json:"root"`
	URLPrefix string `json:"url_prefix"`
}

func (s *Server) handleFaviconHTML(args json.RawMessage) (interface{}, error) {
	var a faviconHTMLArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Root == "" {
		return nil, errors.New("root is required")
	}

	html, err := favicon.ReadHTML(a.Root, favicon.Options{URLPrefix: a.URLPrefix})
	if err != nil {
		return nil, err
	}
	return map[string]string{"html": html}, nil
}

type faviconSettingsArgs struct {
	Root string `json:"root"`
}

func (s *Server) handleFaviconSettings(args json.RawMessage) (interface{}, error) {
	var a faviconSettingsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Root == "" {
		return nil, errors.New("root is required")
	}

	store := config.Store{Dir: filepath.Join(a.Root, favicon.AssetDir)}
	return store.Load()
}

// === Analysis Handlers ===

type faviconCropOffsetArgs struct {
	Path   string  `json:"path"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Method string  `json:"method"`
	Seed   *uint64 `json:"seed"`
}

// target returns the requested size; height defaults to width.
func (a faviconCropOffsetArgs) target() (int, int) {
	if a.Height == 0 {
		return a.Width, a.Width
	}
	return a.Width, a.Height
}

// fitImage loads a.Path and runs the fit pipeline for the requested target.
func (a faviconCropOffsetArgs) fitImage() (image.Image, fit.Result, error) {
	method := crop.Center
	if a.Method != "" {
		m, err := crop.ParseMethod(a.Method)
		if err != nil {
			return nil, fit.Result{}, err
		}
		method = m
	}

	var opts []crop.Option
	if a.Seed != nil {
		opts = append(opts, crop.WithSeed(*a.Seed))
	}
	strategy, err := crop.New(method, opts...)
	if err != nil {
		return nil, fit.Result{}, err
	}

	img, err := imaging.Open(a.Path)
	if err != nil {
		return nil, fit.Result{}, err
	}

	w, h := a.target()
	_, res, err := fit.New(strategy).Fit(img, w, h)
	if err != nil {
		return nil, fit.Result{}, err
	}
	return img, res, nil
}

func (s *Server) handleFaviconCropOffset(args json.RawMessage) (interface{}, error) {
	var a faviconCropOffsetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	_, res, err := a.fitImage()
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FaviconCropPreviewResult is returned by favicon_crop_preview.
type FaviconCropPreviewResult struct {
	fit.Result
	Preview *imaging.PreviewResult `json:"preview"`
}

// previewOutline is the colour of the crop window in previews.
var previewOutline = color.NRGBA{R: 255, A: 255}

func (s *Server) handleFaviconCropPreview(args json.RawMessage) (interface{}, error) {
	var a faviconCropOffsetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, res, err := a.fitImage()
	if err != nil {
		return nil, err
	}

	w, h := a.target()
	window := image.Rectangle{Min: res.Offset, Max: res.Offset.Add(image.Pt(w, h))}

	scaled := imaging.Resize(img, res.ScaledWidth, res.ScaledHeight)
	outlined, err := imaging.OutlineRegion(scaled, window, previewOutline)
	if err != nil {
		return nil, err
	}

	preview, err := imaging.EncodePreview(outlined)
	if err != nil {
		return nil, err
	}
	return &FaviconCropPreviewResult{Result: res, Preview: preview}, nil
}

type imageDimensionsArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageDimensionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(a.Path)
}
