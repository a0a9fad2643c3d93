// Package main implements the main entry point for a Game Boy cartridge inspector
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/gbinspect/internal/cli"
	"github.com/retroenv/gbinspect/internal/config"
	"github.com/retroenv/gbinspect/internal/fileprocessor"
	"github.com/retroenv/gbinspect/internal/options"
	"github.com/retroenv/retrogolib/app"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	if err := cli.Execute(ctx, fileprocessor.VersionString(version, commit), run); err != nil {
		os.Exit(1)
	}
}

// run processes all selected files with the parsed options.
func run(ctx context.Context, opts options.Program, disasmOpts options.Disassembler, stdout io.Writer) error {
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		return fmt.Errorf("selecting files: %w", err)
	}

	w, closeWriter, err := fileprocessor.CreateWriter(opts, stdout)
	if err != nil {
		return err
	}

	processor := fileprocessor.New(logger)
	err = processor.ProcessFiles(ctx, opts, disasmOpts, files, w)
	if closeErr := closeWriter(); closeErr != nil && err == nil {
		err = fmt.Errorf("closing output: %w", closeErr)
	}

	// Handle context cancellation (Ctrl+C) gracefully
	if errors.Is(err, context.Canceled) {
		logger.Info("Operation cancelled")
		return nil
	}
	return err
}
