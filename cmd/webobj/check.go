package main

import (
	"context"
	"fmt"
	"os"

	"github.com/grindlemire/go-webobj/internal/manifest"
)

// runCheck implements the check subcommand. A manifest passes when it
// validates and survives a full layout pass, which also reports engine
// configuration errors such as malformed templates.
func runCheck(ctx context.Context, args []string) error {
	paths, verbose := splitArgs(args)

	files, err := collectManifests(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no manifest files found")
	}
	if verbose {
		fmt.Printf("Checking %d manifest(s)\n", len(files))
	}

	var errorCount int
	for _, file := range files {
		if verbose {
			fmt.Printf("Checking %s\n", file)
		}
		if err := checkFile(ctx, file); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(files))
	}
	return nil
}

func checkFile(ctx context.Context, file string) error {
	doc, err := manifest.Load(file)
	if err != nil {
		return err
	}
	inst, err := doc.Instantiate(doc.Options())
	if err != nil {
		return err
	}
	return inst.Engine.Resize(ctx, inst.Root)
}
