package server

import (
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/colorblind-sim-mcp/internal/colorblind"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel       = "COLORBLIND_MCP_LOG_LEVEL"
	EnvMaxWidth       = "COLORBLIND_MCP_MAX_WIDTH"
	EnvMaxHeight      = "COLORBLIND_MCP_MAX_HEIGHT"
	EnvDefaultVariant = "COLORBLIND_MCP_DEFAULT_VARIANT"
)

// Preview bounds used when neither the environment nor the tool call sets
// them.
const (
	DefaultMaxWidth  = 700
	DefaultMaxHeight = 400
)

// Config holds server settings.
type Config struct {
	// MaxWidth and MaxHeight bound the size of simulated image previews.
	// Larger images are scaled down to fit before simulation.
	MaxWidth  int
	MaxHeight int

	// DefaultVariant is used by tools when the call omits "variant".
	DefaultVariant colorblind.Variant

	// Debug enables per-call debug logging.
	Debug bool
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		MaxWidth:       DefaultMaxWidth,
		MaxHeight:      DefaultMaxHeight,
		DefaultVariant: colorblind.Normal,
	}
}

// ConfigFromEnv builds a Config from the process environment. Invalid values
// are logged and replaced by defaults.
func ConfigFromEnv() Config {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) Config {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvLogLevel); ok && v == "debug" {
		cfg.Debug = true
	}
	if v, ok := lookup(EnvMaxWidth); ok {
		cfg.MaxWidth = positiveInt(EnvMaxWidth, v, DefaultMaxWidth)
	}
	if v, ok := lookup(EnvMaxHeight); ok {
		cfg.MaxHeight = positiveInt(EnvMaxHeight, v, DefaultMaxHeight)
	}
	if v, ok := lookup(EnvDefaultVariant); ok {
		variant, err := colorblind.ParseVariant(v)
		if err != nil {
			log.Printf("Ignoring %s: %v", EnvDefaultVariant, err)
		} else {
			cfg.DefaultVariant = variant
		}
	}

	return cfg
}

func positiveInt(name, value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Ignoring %s=%q: must be a positive integer", name, value)
		return fallback
	}
	return n
}
