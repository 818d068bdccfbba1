package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/colorblind-sim-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("%s %s\n", server.ServerName, Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Printf("%s - MCP server that simulates color vision deficiencies\n", server.ServerName)
			fmt.Println()
			fmt.Println("Usage: colorblind-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug                 Enable debug logging\n", server.EnvLogLevel)
			fmt.Printf("  %s=<pixels>              Preview width limit (default %d)\n", server.EnvMaxWidth, server.DefaultMaxWidth)
			fmt.Printf("  %s=<pixels>             Preview height limit (default %d)\n", server.EnvMaxHeight, server.DefaultMaxHeight)
			fmt.Printf("  %s=<variant>       Variant used when a tool call omits one\n", server.EnvDefaultVariant)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.ConfigFromEnv()
	if cfg.Debug {
		log.Printf("Colorblind Sim MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Preview bounds %dx%d, default variant %s", cfg.MaxWidth, cfg.MaxHeight, cfg.DefaultVariant)
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
