package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/colorblind-sim-mcp/internal/colorblind"
)

// createTestImageFile creates a solid-color PNG and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "handler-test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return path
}

func toolRequest(t *testing.T, name string, args interface{}) *MCPRequest {
	t.Helper()
	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}
	return &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	}
}

// callTool runs a tool through tools/call and decodes its JSON text result.
func callTool(t *testing.T, s *Server, name string, args interface{}) map[string]interface{} {
	t.Helper()

	resp := s.handleToolsCall(toolRequest(t, name, args))
	if resp.Error != nil {
		t.Fatalf("%s: unexpected error: %+v", name, resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	if len(content) != 1 || content[0]["type"] != "text" {
		t.Fatalf("%s: unexpected content %v", name, content)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), &decoded); err != nil {
		t.Fatalf("%s: result is not JSON: %v", name, err)
	}
	return decoded
}

// callToolError runs a tool that is expected to fail and returns the error.
func callToolError(t *testing.T, s *Server, name string, args interface{}) *MCPError {
	t.Helper()

	resp := s.handleToolsCall(toolRequest(t, name, args))
	if resp.Error == nil {
		t.Fatalf("%s: expected error, got result %v", name, resp.Result)
	}
	if resp.Error.Code != -32000 {
		t.Errorf("%s: error code got %d, want -32000", name, resp.Error.Code)
	}
	return resp.Error
}

func hexOf(t *testing.T, v interface{}) string {
	t.Helper()
	m, ok := v.(map[string]interface{})
	if !ok {
		t.Fatalf("expected color object, got %T", v)
	}
	hex, _ := m["hex"].(string)
	return hex
}

// === Color Operations ===

func TestHandleToolsCall_ColorParse(t *testing.T) {
	s := New()

	tests := []struct {
		input   string
		wantHex string
	}{
		{"#FF0000", "#FF0000"},
		{"00ff00", "#00FF00"},
		{"18, 52, 86", "#123456"},
		{"255,0,0,128", "#FF0000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := callTool(t, s, "color_parse", map[string]interface{}{"color": tt.input})
			if result["input"] != tt.input {
				t.Errorf("input: got %v, want %s", result["input"], tt.input)
			}
			if got := hexOf(t, result["color"]); got != tt.wantHex {
				t.Errorf("hex: got %s, want %s", got, tt.wantHex)
			}
		})
	}
}

func TestHandleToolsCall_ColorParse_Invalid(t *testing.T) {
	s := New()

	mcpErr := callToolError(t, s, "color_parse", map[string]interface{}{"color": "#FFF"})
	if !strings.Contains(mcpErr.Data.(string), "6 characters") {
		t.Errorf("error data: got %v", mcpErr.Data)
	}

	mcpErr = callToolError(t, s, "color_parse", map[string]interface{}{"color": "300,0,0"})
	if !strings.Contains(mcpErr.Data.(string), "red") {
		t.Errorf("error data should name the red channel: got %v", mcpErr.Data)
	}
}

func TestHandleToolsCall_ColorSimulate(t *testing.T) {
	s := New()

	result := callTool(t, s, "color_simulate", map[string]interface{}{
		"color":   "#FF0000",
		"variant": "protanopia",
	})

	if result["variant"] != "protanopia" {
		t.Errorf("variant: got %v, want protanopia", result["variant"])
	}
	if got := hexOf(t, result["original"]); got != "#FF0000" {
		t.Errorf("original: got %s, want #FF0000", got)
	}
	if got := hexOf(t, result["simulated"]); got != "#908E00" {
		t.Errorf("simulated: got %s, want #908E00", got)
	}
	if d, _ := result["delta_e"].(float64); d <= 0 {
		t.Errorf("delta_e: got %v, want > 0", result["delta_e"])
	}
}

func TestHandleToolsCall_ColorSimulate_DefaultVariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultVariant = colorblind.Achromatopsia
	s := NewWithConfig(cfg)

	result := callTool(t, s, "color_simulate", map[string]interface{}{"color": "255,0,0"})
	if result["variant"] != "achromatopsia" {
		t.Errorf("variant: got %v, want achromatopsia", result["variant"])
	}
	if got := hexOf(t, result["simulated"]); got != "#4C4C4C" {
		t.Errorf("simulated: got %s, want #4C4C4C", got)
	}

	// Without a configured default the color is unchanged.
	result = callTool(t, New(), "color_simulate", map[string]interface{}{"color": "255,0,0"})
	if got := hexOf(t, result["simulated"]); got != "#FF0000" {
		t.Errorf("normal simulated: got %s, want #FF0000", got)
	}
	if result["delta_e"] != 0.0 {
		t.Errorf("normal delta_e: got %v, want 0", result["delta_e"])
	}
}

func TestHandleToolsCall_ColorSimulate_UnknownVariant(t *testing.T) {
	mcpErr := callToolError(t, New(), "color_simulate", map[string]interface{}{
		"color":   "#FF0000",
		"variant": "infrared",
	})
	if !strings.Contains(mcpErr.Data.(string), "infrared") {
		t.Errorf("error data should name the variant: got %v", mcpErr.Data)
	}
}

func TestHandleToolsCall_ColorSimulateAll(t *testing.T) {
	result := callTool(t, New(), "color_simulate_all", map[string]interface{}{"color": "#0000FF"})

	sims, ok := result["simulations"].([]interface{})
	if !ok {
		t.Fatalf("simulations should be a list, got %T", result["simulations"])
	}
	if len(sims) != len(colorblind.Variants()) {
		t.Fatalf("simulations: got %d, want %d", len(sims), len(colorblind.Variants()))
	}

	want := map[string]string{
		"normal":        "#0000FF",
		"protanopia":    "#0000C1",
		"deuteranopia":  "#0000B2",
		"tritanopia":    "#009085",
		"tritanomaly":   "#0056B5",
		"achromatopsia": "#1D1D1D",
	}
	for _, item := range sims {
		sim := item.(map[string]interface{})
		name := sim["variant"].(string)
		if sim["label"] == "" {
			t.Errorf("%s: empty label", name)
		}
		if wantHex, ok := want[name]; ok {
			if got := hexOf(t, sim["color"]); got != wantHex {
				t.Errorf("%s: got %s, want %s", name, got, wantHex)
			}
		}
	}
}

func TestHandleToolsCall_VariantsList(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultVariant = colorblind.Deuteranopia
	result := callTool(t, NewWithConfig(cfg), "variants_list", map[string]interface{}{})

	variants, ok := result["variants"].([]interface{})
	if !ok {
		t.Fatalf("variants should be a list, got %T", result["variants"])
	}
	if len(variants) != 8 {
		t.Fatalf("variants: got %d, want 8", len(variants))
	}

	defaults := 0
	for _, item := range variants {
		v := item.(map[string]interface{})
		if v["name"] == "" || v["label"] == "" || v["description"] == "" {
			t.Errorf("incomplete variant entry: %v", v)
		}
		if v["default"] == true {
			defaults++
			if v["name"] != "deuteranopia" {
				t.Errorf("default variant: got %v, want deuteranopia", v["name"])
			}
		}
	}
	if defaults != 1 {
		t.Errorf("default count: got %d, want 1", defaults)
	}
}

// === Palette Operations ===

func reportEntries(t *testing.T, result map[string]interface{}) []interface{} {
	t.Helper()
	report, ok := result["report"].(map[string]interface{})
	if !ok {
		t.Fatalf("report should be an object, got %T", result["report"])
	}
	entries, _ := report["entries"].([]interface{})
	return entries
}

func TestHandleToolsCall_PaletteLifecycle(t *testing.T) {
	s := New()

	result := callTool(t, s, "palette_add", map[string]interface{}{"color": "#FF0000"})
	if result["message"] != "Added color: RGB(255, 0, 0)" {
		t.Errorf("message: got %v", result["message"])
	}
	if n := len(reportEntries(t, result)); n != 1 {
		t.Fatalf("entries after first add: got %d, want 1", n)
	}

	result = callTool(t, s, "palette_add", map[string]interface{}{"color": "0, 0, 255"})
	entries := reportEntries(t, result)
	if len(entries) != 2 {
		t.Fatalf("entries after second add: got %d, want 2", len(entries))
	}
	first := entries[0].(map[string]interface{})
	if first["simulated_text"] != "No simulation applied" {
		t.Errorf("normal simulated_text: got %v", first["simulated_text"])
	}

	result = callTool(t, s, "palette_show", map[string]interface{}{"variant": "protanopia"})
	entries = reportEntries(t, result)
	if len(entries) != 2 {
		t.Fatalf("entries in show: got %d, want 2", len(entries))
	}
	first = entries[0].(map[string]interface{})
	if first["original_text"] != "RGB(255, 0, 0) / #FF0000" {
		t.Errorf("original_text: got %v", first["original_text"])
	}
	if first["simulated_text"] != "RGB(144, 142, 0) / #908E00" {
		t.Errorf("simulated_text: got %v", first["simulated_text"])
	}

	result = callTool(t, s, "palette_remove", map[string]interface{}{"index": 0})
	if result["message"] != "Removed color at position 0" {
		t.Errorf("message: got %v", result["message"])
	}
	entries = reportEntries(t, result)
	if len(entries) != 1 {
		t.Fatalf("entries after remove: got %d, want 1", len(entries))
	}
	remaining := entries[0].(map[string]interface{})
	if remaining["original_text"] != "RGB(0, 0, 255) / #0000FF" {
		t.Errorf("remaining color: got %v", remaining["original_text"])
	}

	result = callTool(t, s, "palette_clear", map[string]interface{}{})
	if n := len(reportEntries(t, result)); n != 0 {
		t.Errorf("entries after clear: got %d, want 0", n)
	}
	if s.palette.Len() != 0 {
		t.Errorf("palette length after clear: got %d, want 0", s.palette.Len())
	}
}

func TestHandleToolsCall_PaletteErrors(t *testing.T) {
	s := New()

	callToolError(t, s, "palette_add", map[string]interface{}{"color": "not a color"})
	callToolError(t, s, "palette_remove", map[string]interface{}{"index": 0})
	callToolError(t, s, "palette_remove", map[string]interface{}{})
	callToolError(t, s, "palette_show", map[string]interface{}{"variant": "bogus"})

	if s.palette.Len() != 0 {
		t.Errorf("failed calls should not change the palette, got %d colors", s.palette.Len())
	}
}

func TestHandleToolsCall_PaletteConfusable(t *testing.T) {
	s := New()

	// Red and a teal blue both become the same gray without color vision.
	args := map[string]interface{}{
		"colors":  []string{"#FF0000", "0,100,152", "#FFFFFF"},
		"variant": "achromatopsia",
	}
	result := callTool(t, s, "palette_confusable", args)

	if result["threshold"] != 10.0 {
		t.Errorf("threshold: got %v, want 10", result["threshold"])
	}
	pairs, ok := result["pairs"].([]interface{})
	if !ok {
		t.Fatalf("pairs should be a list, got %T", result["pairs"])
	}
	if len(pairs) != 1 {
		t.Fatalf("pairs: got %d, want 1", len(pairs))
	}
	pair := pairs[0].(map[string]interface{})
	if pair["first"] != 0.0 || pair["second"] != 1.0 {
		t.Errorf("pair indices: got (%v, %v), want (0, 1)", pair["first"], pair["second"])
	}

	// Normal vision confuses nothing.
	args["variant"] = "normal"
	result = callTool(t, s, "palette_confusable", args)
	if pairs := result["pairs"].([]interface{}); len(pairs) != 0 {
		t.Errorf("normal pairs: got %d, want 0", len(pairs))
	}
}

func TestHandleToolsCall_PaletteConfusable_SessionPalette(t *testing.T) {
	s := New()
	callTool(t, s, "palette_add", map[string]interface{}{"color": "#FF0000"})
	callTool(t, s, "palette_add", map[string]interface{}{"color": "#006498"})

	result := callTool(t, s, "palette_confusable", map[string]interface{}{
		"variant":   "achromatopsia",
		"threshold": 2.5,
	})
	if result["threshold"] != 2.5 {
		t.Errorf("threshold: got %v, want 2.5", result["threshold"])
	}
	if colors := result["colors"].([]interface{}); len(colors) != 2 {
		t.Errorf("colors: got %d, want the 2 palette colors", len(colors))
	}
	if pairs := result["pairs"].([]interface{}); len(pairs) != 1 {
		t.Errorf("pairs: got %d, want 1", len(pairs))
	}
}

func TestHandleToolsCall_PaletteConfusable_BadColor(t *testing.T) {
	mcpErr := callToolError(t, New(), "palette_confusable", map[string]interface{}{
		"colors": []string{"#FF0000", "#XYZXYZ"},
	})
	if !strings.Contains(mcpErr.Data.(string), "colors[1]") {
		t.Errorf("error data should name the bad entry: got %v", mcpErr.Data)
	}
}

// === Image Operations ===

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	imgPath := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255})

	result := callTool(t, New(), "image_load", map[string]interface{}{"path": imgPath})

	if result["width"] != 100.0 || result["height"] != 80.0 {
		t.Errorf("dimensions: got %vx%v, want 100x80", result["width"], result["height"])
	}
	if result["format"] != "png" {
		t.Errorf("format: got %v, want png", result["format"])
	}
}

func TestHandleToolsCall_NonExistentFile(t *testing.T) {
	s := New()
	for _, name := range []string{"image_load", "image_simulate", "image_dominant_colors"} {
		callToolError(t, s, name, map[string]interface{}{"path": "/nonexistent/image.png"})
	}
}

func TestHandleToolsCall_ImageSimulate(t *testing.T) {
	imgPath := createTestImageFile(t, 40, 20, color.RGBA{255, 0, 0, 255})

	result := callTool(t, New(), "image_simulate", map[string]interface{}{
		"path":    imgPath,
		"variant": "protanopia",
	})

	if result["variant"] != "protanopia" {
		t.Errorf("variant: got %v", result["variant"])
	}
	if result["source_width"] != 40.0 || result["source_height"] != 20.0 {
		t.Errorf("source: got %vx%v, want 40x20", result["source_width"], result["source_height"])
	}

	img := decodeResultImage(t, result)
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Errorf("image size: got %v, want 40x20", img.Bounds().Size())
	}
	r, g, b, _ := img.At(5, 5).RGBA()
	if r>>8 != 144 || g>>8 != 142 || b>>8 != 0 {
		t.Errorf("pixel: got (%d,%d,%d), want (144,142,0)", r>>8, g>>8, b>>8)
	}

	comparison := result["comparison"].(map[string]interface{})
	if comparison["total_pixels"] != 800.0 {
		t.Errorf("total_pixels: got %v, want 800", comparison["total_pixels"])
	}
	if comparison["percent_changed"] != 100.0 {
		t.Errorf("percent_changed: got %v, want 100", comparison["percent_changed"])
	}
}

func TestHandleToolsCall_ImageSimulate_FitsPreview(t *testing.T) {
	imgPath := createTestImageFile(t, 1000, 500, color.RGBA{0, 128, 0, 255})
	s := New()

	result := callTool(t, s, "image_simulate", map[string]interface{}{"path": imgPath})
	img := result["image"].(map[string]interface{})
	if img["width"] != 700.0 || img["height"] != 350.0 {
		t.Errorf("default preview: got %vx%v, want 700x350", img["width"], img["height"])
	}

	result = callTool(t, s, "image_simulate", map[string]interface{}{
		"path":       imgPath,
		"max_width":  100,
		"max_height": 100,
	})
	img = result["image"].(map[string]interface{})
	if img["width"] != 100.0 || img["height"] != 50.0 {
		t.Errorf("explicit preview: got %vx%v, want 100x50", img["width"], img["height"])
	}

	cfg := DefaultConfig()
	cfg.MaxWidth = 200
	result = callTool(t, NewWithConfig(cfg), "image_simulate", map[string]interface{}{"path": imgPath})
	img = result["image"].(map[string]interface{})
	if img["width"] != 200.0 || img["height"] != 100.0 {
		t.Errorf("configured preview: got %vx%v, want 200x100", img["width"], img["height"])
	}

	callToolError(t, s, "image_simulate", map[string]interface{}{"path": imgPath, "max_width": -5})
}

func TestHandleToolsCall_ImageSimulate_RegionAndSideBySide(t *testing.T) {
	imgPath := createTestImageFile(t, 100, 100, color.RGBA{0, 0, 255, 255})
	s := New()

	result := callTool(t, s, "image_simulate", map[string]interface{}{
		"path":         imgPath,
		"variant":      "tritanopia",
		"region":       map[string]interface{}{"x1": 10, "y1": 20, "x2": 40, "y2": 30},
		"side_by_side": true,
	})

	if result["source_width"] != 30.0 || result["source_height"] != 10.0 {
		t.Errorf("source: got %vx%v, want 30x10", result["source_width"], result["source_height"])
	}
	img := decodeResultImage(t, result)
	if img.Bounds().Dx() != 30+8+30 || img.Bounds().Dy() != 10 {
		t.Errorf("composite size: got %v, want 68x10", img.Bounds().Size())
	}

	// Original on the left, simulated on the right.
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 0 || g>>8 != 0 || b>>8 != 255 {
		t.Errorf("left pixel: got (%d,%d,%d), want (0,0,255)", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(67, 9).RGBA()
	if r>>8 != 0 || g>>8 != 144 || b>>8 != 133 {
		t.Errorf("right pixel: got (%d,%d,%d), want (0,144,133)", r>>8, g>>8, b>>8)
	}

	result = callTool(t, s, "image_simulate", map[string]interface{}{
		"path":         imgPath,
		"variant":      "tritanopia",
		"side_by_side": true,
		"captions":     true,
		"max_width":    50,
	})
	img = decodeResultImage(t, result)
	if img.Bounds().Dx() != 50+8+50 || img.Bounds().Dy() != 50+17 {
		t.Errorf("captioned composite size: got %v, want 108x67", img.Bounds().Size())
	}

	callToolError(t, s, "image_simulate", map[string]interface{}{
		"path":   imgPath,
		"region": map[string]interface{}{"x1": 50, "y1": 50, "x2": 150, "y2": 60},
	})
}

func TestHandleToolsCall_ImageSimulate_RGB24AndSave(t *testing.T) {
	imgPath := createTestImageFile(t, 4, 3, color.RGBA{255, 255, 255, 255})
	outPath := filepath.Join(t.TempDir(), "simulated.png")

	result := callTool(t, New(), "image_simulate", map[string]interface{}{
		"path":        imgPath,
		"variant":     "deuteranomaly",
		"encoding":    "rgb24",
		"output_path": outPath,
	})

	img := result["image"].(map[string]interface{})
	if img["mime_type"] != "application/x-rgb24" {
		t.Errorf("mime_type: got %v", img["mime_type"])
	}
	data, err := base64.StdEncoding.DecodeString(img["image_base64"].(string))
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	if len(data) != 4*3*3 {
		t.Fatalf("buffer length: got %d, want 36", len(data))
	}
	for i, v := range data {
		if v != 255 {
			t.Fatalf("byte %d: got %d, want 255 (white is unchanged)", i, v)
		}
	}

	if result["saved_to"] != outPath {
		t.Errorf("saved_to: got %v, want %s", result["saved_to"], outPath)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("output file missing: %v", err)
	}

	callToolError(t, New(), "image_simulate", map[string]interface{}{"path": imgPath, "encoding": "jpeg"})
}

func decodeResultImage(t *testing.T, result map[string]interface{}) image.Image {
	t.Helper()
	img, ok := result["image"].(map[string]interface{})
	if !ok {
		t.Fatalf("image should be an object, got %T", result["image"])
	}
	if img["mime_type"] != "image/png" {
		t.Fatalf("mime_type: got %v, want image/png", img["mime_type"])
	}
	data, err := base64.StdEncoding.DecodeString(img["image_base64"].(string))
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	decoded, err := png.Decode(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return decoded
}

func TestHandleToolsCall_SampleColor(t *testing.T) {
	imgPath := createTestImageFile(t, 100, 100, color.RGBA{255, 128, 64, 255})
	s := New()

	result := callTool(t, s, "image_sample_color", map[string]interface{}{
		"path":    imgPath,
		"x":       50,
		"y":       50,
		"variant": "protanopia",
	})

	if result["alpha"] != 255.0 {
		t.Errorf("alpha: got %v, want 255", result["alpha"])
	}
	if got := hexOf(t, result["original"]); got != "#FF8040" {
		t.Errorf("original: got %s, want #FF8040", got)
	}
	if got := hexOf(t, result["simulated"]); got != "#C8C64F" {
		t.Errorf("simulated: got %s, want #C8C64F", got)
	}

	callToolError(t, s, "image_sample_color", map[string]interface{}{"path": imgPath, "x": 100, "y": 0})
}

func TestHandleToolsCall_DominantColors(t *testing.T) {
	imgPath := createTestImageFile(t, 50, 50, color.RGBA{255, 0, 0, 255})
	s := New()

	result := callTool(t, s, "image_dominant_colors", map[string]interface{}{
		"path":    imgPath,
		"variant": "achromatopsia",
	})

	colors := result["colors"].([]interface{})
	if len(colors) != 1 {
		t.Fatalf("colors: got %d, want 1", len(colors))
	}
	if got := colors[0].(map[string]interface{})["hex"]; got != "#F00000" {
		t.Errorf("dominant hex: got %v, want #F00000", got)
	}

	simulation := result["simulation"].(map[string]interface{})
	if simulation["variant"] != "achromatopsia" {
		t.Errorf("simulation variant: got %v", simulation["variant"])
	}
	if entries := simulation["entries"].([]interface{}); len(entries) != 1 {
		t.Errorf("simulation entries: got %d, want 1", len(entries))
	}

	callToolError(t, s, "image_dominant_colors", map[string]interface{}{"path": imgPath, "count": -1})
}

// === Protocol Errors ===

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  json.RawMessage(`{invalid`),
	}

	resp := s.handleToolsCall(req)
	if resp.Error == nil {
		t.Fatal("expected error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidTool(t *testing.T) {
	mcpErr := callToolError(t, New(), "nonexistent_tool", map[string]interface{}{})
	if mcpErr.Data != "unknown tool: nonexistent_tool" {
		t.Errorf("error data: got %v", mcpErr.Data)
	}
}

func TestExecuteTool_AllTools(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 100, color.RGBA{128, 128, 128, 255})

	// Test each tool to ensure executeTool correctly dispatches
	toolTests := []struct {
		name string
		args map[string]interface{}
	}{
		{"color_parse", map[string]interface{}{"color": "#808080"}},
		{"color_simulate", map[string]interface{}{"color": "#808080", "variant": "tritanomaly"}},
		{"color_simulate_all", map[string]interface{}{"color": "#808080"}},
		{"variants_list", map[string]interface{}{}},
		{"palette_add", map[string]interface{}{"color": "#808080"}},
		{"palette_show", map[string]interface{}{}},
		{"palette_confusable", map[string]interface{}{}},
		{"palette_remove", map[string]interface{}{"index": 0}},
		{"palette_clear", map[string]interface{}{}},
		{"image_load", map[string]interface{}{"path": imgPath}},
		{"image_simulate", map[string]interface{}{"path": imgPath}},
		{"image_sample_color", map[string]interface{}{"path": imgPath, "x": 50, "y": 50}},
		{"image_dominant_colors", map[string]interface{}{"path": imgPath}},
	}

	if len(toolTests) != len(GetToolDefinitions()) {
		t.Fatalf("test covers %d tools, %d are defined", len(toolTests), len(GetToolDefinitions()))
	}

	for _, tt := range toolTests {
		t.Run(tt.name, func(t *testing.T) {
			argsJSON, _ := json.Marshal(tt.args)
			result, err := s.executeTool(tt.name, argsJSON)
			if err != nil {
				t.Fatalf("executeTool(%s) failed: %v", tt.name, err)
			}
			if result == nil {
				t.Errorf("executeTool(%s) returned nil result", tt.name)
			}
		})
	}
}

func TestExecuteTool_NoArguments(t *testing.T) {
	s := New()

	if _, err := s.executeTool("variants_list", nil); err != nil {
		t.Errorf("variants_list without arguments failed: %v", err)
	}
	if _, err := s.executeTool("palette_show", nil); err != nil {
		t.Errorf("palette_show without arguments failed: %v", err)
	}
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	s := New()

	_, err := s.executeTool("unknown_tool", json.RawMessage(`{}`))
	if err == nil {
		t.Error("executeTool should fail for unknown tool")
	}
}

func TestExecuteTool_InvalidJSON(t *testing.T) {
	s := New()

	_, err := s.executeTool("image_load", json.RawMessage(`{invalid`))
	if err == nil {
		t.Error("executeTool should fail for invalid JSON")
	}
}

func TestMustMarshalJSON(t *testing.T) {
	if got := mustMarshalJSON(map[string]int{"count": 3}); got != "{\n  \"count\": 3\n}" {
		t.Errorf("got %q", got)
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	if got := mustMarshalJSON(map[string]float64{"delta_e": math.Inf(1)}); got != "" {
		t.Errorf("unmarshalable value: got %q, want empty string", got)
	}
	if !strings.Contains(buf.String(), "Failed to marshal tool result") {
		t.Errorf("marshal failure was not logged, log output: %q", buf.String())
	}
}
