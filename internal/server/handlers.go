package server

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"math"
	"time"

	"github.com/ironsheep/colorblind-sim-mcp/internal/colorblind"
	"github.com/ironsheep/colorblind-sim-mcp/internal/colorparse"
	"github.com/ironsheep/colorblind-sim-mcp/internal/imaging"
	"github.com/ironsheep/colorblind-sim-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_simulate", "image_simulate").
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

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if s.config.Debug {
		log.Printf("DEBUG: tool %s finished in %v (err=%v)", params.Name, time.Since(start), err)
	}
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Resolves the variant and other optional parameters
//  3. Loads images from cache as needed
//  4. Calls the colorblind, palette or imaging package
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Color Operations
	case "color_parse":
		return s.handleColorParse(args)
	case "color_simulate":
		return s.handleColorSimulate(args)
	case "color_simulate_all":
		return s.handleColorSimulateAll(args)
	case "variants_list":
		return s.handleVariantsList()

	// Palette Operations
	case "palette_add":
		return s.handlePaletteAdd(args)
	case "palette_remove":
		return s.handlePaletteRemove(args)
	case "palette_clear":
		return s.handlePaletteClear()
	case "palette_show":
		return s.handlePaletteShow(args)
	case "palette_confusable":
		return s.handlePaletteConfusable(args)

	// Image Operations
	case "image_load":
		return s.handleImageLoad(args)
	case "image_simulate":
		return s.handleImageSimulate(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

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
// On marshal failure the error is logged and an empty string is returned.
func mustMarshalJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Failed to marshal tool result: %v", err)
		return ""
	}
	return string(b)
}

// resolveVariant maps an optional variant argument to a Variant. An empty
// name selects the configured default.
func (s *Server) resolveVariant(name string) (colorblind.Variant, error) {
	if name == "" {
		return s.config.DefaultVariant, nil
	}
	return colorblind.ParseVariant(name)
}

func roundDeltaE(d float64) float64 {
	return math.Round(d*100) / 100
}

// === Color Operation Handlers ===

type colorArgs struct {
	Color   string `json:"color"`
	Variant string `json:"variant,omitempty"`
}

type colorParseResult struct {
	Input string              `json:"input"`
	Color imaging.ColorResult `json:"color"`
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colorparse.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	return &colorParseResult{Input: a.Color, Color: imaging.NewColorResult(c)}, nil
}

type colorSimulateResult struct {
	Variant   colorblind.Variant  `json:"variant"`
	Original  imaging.ColorResult `json:"original"`
	Simulated imaging.ColorResult `json:"simulated"`
	DeltaE    float64             `json:"delta_e"` // CIEDE2000 between original and simulated
}

func simulateColor(c colorblind.RGB, v colorblind.Variant) colorSimulateResult {
	sim := colorblind.Simulate(c, v)
	return colorSimulateResult{
		Variant:   v,
		Original:  imaging.NewColorResult(c),
		Simulated: imaging.NewColorResult(sim),
		DeltaE:    roundDeltaE(c.DeltaE(sim)),
	}
}

func (s *Server) handleColorSimulate(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	v, err := s.resolveVariant(a.Variant)
	if err != nil {
		return nil, err
	}
	c, err := colorparse.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	result := simulateColor(c, v)
	return &result, nil
}

type variantSimulation struct {
	Variant colorblind.Variant  `json:"variant"`
	Label   string              `json:"label"`
	Color   imaging.ColorResult `json:"color"`
	DeltaE  float64             `json:"delta_e"`
}

type colorSimulateAllResult struct {
	Original    imaging.ColorResult `json:"original"`
	Simulations []variantSimulation `json:"simulations"`
}

func (s *Server) handleColorSimulateAll(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colorparse.Parse(a.Color)
	if err != nil {
		return nil, err
	}

	variants := colorblind.Variants()
	result := &colorSimulateAllResult{
		Original:    imaging.NewColorResult(c),
		Simulations: make([]variantSimulation, len(variants)),
	}
	for i, v := range variants {
		sim := colorblind.Simulate(c, v)
		result.Simulations[i] = variantSimulation{
			Variant: v,
			Label:   v.Label(),
			Color:   imaging.NewColorResult(sim),
			DeltaE:  roundDeltaE(c.DeltaE(sim)),
		}
	}
	return result, nil
}

type variantInfo struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Default     bool   `json:"default,omitempty"`
}

func (s *Server) handleVariantsList() (interface{}, error) {
	variants := colorblind.Variants()
	infos := make([]variantInfo, len(variants))
	for i, v := range variants {
		infos[i] = variantInfo{
			Name:        v.String(),
			Label:       v.Label(),
			Description: v.Description(),
			Default:     v == s.config.DefaultVariant,
		}
	}
	return map[string]interface{}{"variants": infos}, nil
}

// === Palette Operation Handlers ===

type paletteResult struct {
	Message string          `json:"message,omitempty"`
	Report  *palette.Report `json:"report"`
}

func (s *Server) handlePaletteAdd(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := s.palette.Add(a.Color)
	if err != nil {
		return nil, err
	}
	return &paletteResult{
		Message: fmt.Sprintf("Added color: RGB(%d, %d, %d)", c.R, c.G, c.B),
		Report:  s.palette.Report(s.config.DefaultVariant),
	}, nil
}

type paletteRemoveArgs struct {
	Index *int `json:"index"`
}

func (s *Server) handlePaletteRemove(args json.RawMessage) (interface{}, error) {
	var a paletteRemoveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Index == nil {
		return nil, fmt.Errorf("index is required")
	}
	if _, err := s.palette.Remove(*a.Index); err != nil {
		return nil, err
	}
	return &paletteResult{
		Message: fmt.Sprintf("Removed color at position %d", *a.Index),
		Report:  s.palette.Report(s.config.DefaultVariant),
	}, nil
}

func (s *Server) handlePaletteClear() (interface{}, error) {
	s.palette.Clear()
	return &paletteResult{
		Message: "Palette cleared",
		Report:  s.palette.Report(s.config.DefaultVariant),
	}, nil
}

type paletteShowArgs struct {
	Variant string `json:"variant,omitempty"`
}

func (s *Server) handlePaletteShow(args json.RawMessage) (interface{}, error) {
	var a paletteShowArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	v, err := s.resolveVariant(a.Variant)
	if err != nil {
		return nil, err
	}
	return &paletteResult{Report: s.palette.Report(v)}, nil
}

type paletteConfusableArgs struct {
	Colors    []string `json:"colors,omitempty"`
	Variant   string   `json:"variant,omitempty"`
	Threshold float64  `json:"threshold,omitempty"`
}

type paletteConfusableResult struct {
	Variant   colorblind.Variant `json:"variant"`
	Threshold float64            `json:"threshold"`
	Colors    []colorblind.RGB   `json:"colors"`
	Pairs     []palette.Pair     `json:"pairs"`
}

func (s *Server) handlePaletteConfusable(args json.RawMessage) (interface{}, error) {
	var a paletteConfusableArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	v, err := s.resolveVariant(a.Variant)
	if err != nil {
		return nil, err
	}

	var colors []colorblind.RGB
	if a.Colors == nil {
		colors = s.palette.Colors()
	} else {
		colors = make([]colorblind.RGB, len(a.Colors))
		for i, text := range a.Colors {
			c, err := colorparse.Parse(text)
			if err != nil {
				return nil, fmt.Errorf("colors[%d]: %w", i, err)
			}
			colors[i] = c
		}
	}

	threshold := a.Threshold
	if threshold <= 0 {
		threshold = palette.DefaultThreshold
	}

	return &paletteConfusableResult{
		Variant:   v,
		Threshold: threshold,
		Colors:    colors,
		Pairs:     palette.Confusable(colors, v, threshold),
	}, nil
}

// === Image Operation Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// Output encodings accepted by image_simulate.
const (
	encodingPNG   = "png"
	encodingRGB24 = "rgb24"
)

type imageSimulateArgs struct {
	Path       string          `json:"path"`
	Variant    string          `json:"variant,omitempty"`
	MaxWidth   int             `json:"max_width,omitempty"`
	MaxHeight  int             `json:"max_height,omitempty"`
	Region     *imaging.Region `json:"region,omitempty"`
	SideBySide bool            `json:"side_by_side,omitempty"`
	Captions   bool            `json:"captions,omitempty"`
	Encoding   string          `json:"encoding,omitempty"`
	OutputPath string          `json:"output_path,omitempty"`
}

type imageSimulateResult struct {
	Variant      colorblind.Variant     `json:"variant"`
	SourceWidth  int                    `json:"source_width"`
	SourceHeight int                    `json:"source_height"`
	SideBySide   bool                   `json:"side_by_side"`
	Image        *imaging.EncodedImage  `json:"image"`
	Comparison   *imaging.CompareResult `json:"comparison"`
	SavedTo      string                 `json:"saved_to,omitempty"`
}

// handleImageSimulate crops, fits, simulates and encodes an image. The
// comparison is computed on the fitted preview, not the full-size source.
func (s *Server) handleImageSimulate(args json.RawMessage) (interface{}, error) {
	var a imageSimulateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	v, err := s.resolveVariant(a.Variant)
	if err != nil {
		return nil, err
	}
	if a.MaxWidth == 0 {
		a.MaxWidth = s.config.MaxWidth
	}
	if a.MaxHeight == 0 {
		a.MaxHeight = s.config.MaxHeight
	}
	if a.Encoding == "" {
		a.Encoding = encodingPNG
	}
	if a.Encoding != encodingPNG && a.Encoding != encodingRGB24 {
		return nil, fmt.Errorf("unknown encoding %q: use %q or %q", a.Encoding, encodingPNG, encodingRGB24)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	var source *image.NRGBA
	if a.Region != nil {
		if source, err = imaging.Crop(img, *a.Region); err != nil {
			return nil, err
		}
	} else {
		source = imaging.ToNRGBA(img)
	}

	fitted, err := imaging.FitWithin(source, a.MaxWidth, a.MaxHeight)
	if err != nil {
		return nil, err
	}
	simulated := imaging.Simulate(fitted, v)

	comparison, err := imaging.CompareImages(fitted, simulated)
	if err != nil {
		return nil, err
	}

	original, output := fitted, simulated
	if a.Captions {
		original = imaging.Caption(fitted, "Original")
		output = imaging.Caption(simulated, v.Label())
	}
	if a.SideBySide {
		output = imaging.SideBySide(original, output)
	}

	result := &imageSimulateResult{
		Variant:      v,
		SourceWidth:  source.Bounds().Dx(),
		SourceHeight: source.Bounds().Dy(),
		SideBySide:   a.SideBySide,
		Comparison:   comparison,
	}

	if a.OutputPath != "" {
		if err := imaging.Save(output, a.OutputPath); err != nil {
			return nil, err
		}
		result.SavedTo = a.OutputPath
	}

	if a.Encoding == encodingRGB24 {
		result.Image = imaging.EncodeRGB24(output)
	} else if result.Image, err = imaging.EncodePNG(output); err != nil {
		return nil, err
	}

	return result, nil
}

type imageSampleColorArgs struct {
	Path    string `json:"path"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Variant string `json:"variant,omitempty"`
}

type imageSampleColorResult struct {
	X         int                 `json:"x"`
	Y         int                 `json:"y"`
	Alpha     uint8               `json:"alpha"`
	Variant   colorblind.Variant  `json:"variant"`
	Original  imaging.ColorResult `json:"original"`
	Simulated imaging.ColorResult `json:"simulated"`
	DeltaE    float64             `json:"delta_e"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	v, err := s.resolveVariant(a.Variant)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	sample, err := imaging.SampleColor(img, a.X, a.Y)
	if err != nil {
		return nil, err
	}

	sim := simulateColor(sample.Color.RGB, v)
	return &imageSampleColorResult{
		X:         sample.X,
		Y:         sample.Y,
		Alpha:     sample.Alpha,
		Variant:   v,
		Original:  sim.Original,
		Simulated: sim.Simulated,
		DeltaE:    sim.DeltaE,
	}, nil
}

type imageDominantColorsArgs struct {
	Path    string `json:"path"`
	Count   int    `json:"count,omitempty"`
	Variant string `json:"variant,omitempty"`
}

type imageDominantColorsResult struct {
	Colors     []imaging.ColorFrequency `json:"colors"`
	Simulation *palette.Report          `json:"simulation"`
	Confusable []palette.Pair           `json:"confusable"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	v, err := s.resolveVariant(a.Variant)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	dominant, err := imaging.DominantColors(img, a.Count)
	if err != nil {
		return nil, err
	}

	colors := make([]colorblind.RGB, len(dominant.Colors))
	for i, f := range dominant.Colors {
		colors[i] = f.RGB
	}
	return &imageDominantColorsResult{
		Colors:     dominant.Colors,
		Simulation: palette.Simulate(colors, v),
		Confusable: palette.Confusable(colors, v, palette.DefaultThreshold),
	}, nil
}
