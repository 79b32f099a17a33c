// Package main provides the CLI for laying out YAML tree manifests.
//
// Usage:
//
//	webobj layout [options] [path...]   Lay out manifests and print geometry
//	webobj check [path...]              Validate manifests
//	webobj preview manifest.yaml        Interactive preview that follows the terminal size
//	webobj help                         Show help
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/grindlemire/go-webobj/internal/debug"
	"github.com/grindlemire/go-webobj/internal/telemetry"
)

const version = "0.1.0"

const usage = `webobj - recursive container sizing for docked, flowed and gridded trees

Usage:
  webobj <command> [options] [path...]

Commands:
  layout      Lay out manifests and print the computed geometry
  check       Validate manifests without printing geometry
  preview     Preview a manifest interactively in the terminal
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output

Examples:
  webobj layout dashboard.yaml              Print a geometry table
  webobj layout --draw dashboard.yaml       Also draw the boxes
  webobj layout --width 120 ./examples/...  Override the viewport width
  webobj check ./...                        Validate every manifest recursively
  webobj preview dashboard.yaml             Resize the terminal to watch relayout

Environment:
  WEBOBJ_DEBUG                  Append debug logs to this file
  OTEL_EXPORTER_OTLP_ENDPOINT   Export layout pass traces over OTLP/HTTP
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}
	defer debug.Close()

	command := os.Args[1]
	args := os.Args[2:]

	ctx := context.Background()
	tp, err := telemetry.Setup(ctx, "webobj")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: tracing disabled: %v\n", err)
		tp = telemetry.Disabled()
	}
	defer tp.Shutdown(ctx)

	switch command {
	case "layout":
		err = runLayout(ctx, tp, args)
	case "check":
		err = runCheck(ctx, args)
	case "preview":
		err = runPreview(tp, args)
	case "version":
		fmt.Printf("webobj version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		tp.Shutdown(ctx)
		debug.Close()
		os.Exit(1)
	}
}
