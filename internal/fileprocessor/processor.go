// Package fileprocessor handles file selection and batch processing operations
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/retroenv/gbinspect/internal/options"
	"github.com/retroenv/gbinspect/internal/pipeline"
	"github.com/retroenv/gbinspect/internal/report"
	"github.com/retroenv/retrogolib/log"
)

// ErrNoFiles is returned when the batch pattern does not match any file.
var ErrNoFiles = errors.New("no files to process")

// Processor runs the pipeline for all input files.
type Processor struct {
	logger   *log.Logger
	pipeline *pipeline.Pipeline
}

// New creates a new file processor.
func New(logger *log.Logger) *Processor {
	return &Processor{
		logger:   logger,
		pipeline: pipeline.New(logger),
	}
}

// ProcessFiles processes all files and writes the output to w. A failing
// file does not stop the processing of the remaining files, the returned
// error reports the number of failed files. Cancellation stops processing
// immediately.
func (p *Processor) ProcessFiles(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	files []string, w io.Writer) error {

	docs := make([]report.Document, 0, len(files))
	var failed int

	for i, file := range files {
		if i > 0 && opts.Format != report.FormatJSON {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}

		opts.Input = file
		doc, err := p.pipeline.Execute(ctx, opts, disasmOpts, w)
		docs = append(docs, doc)
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("processing '%s': %w", file, err)
			}
			p.logger.Error("Processing failed", log.String("file", file), log.Err(err))
			if doc.Error == "" {
				docs[len(docs)-1].Error = err.Error()
			}
			failed++
		}
	}

	if opts.Format == report.FormatJSON {
		if err := report.WriteJSON(w, docs...); err != nil {
			return fmt.Errorf("writing json: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("processing failed for %d of %d files", failed, len(files))
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch == "" {
		return []string{opts.Input}, nil
	}

	matches, err := filepath.Glob(opts.Batch)
	if err != nil {
		return nil, fmt.Errorf("globbing batch pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: pattern '%s' did not match", ErrNoFiles, opts.Batch)
	}
	slices.Sort(matches)
	return matches, nil
}

// CreateWriter returns the output writer and a function to close it. If no
// output file is set, the standard output is returned.
func CreateWriter(opts options.Program, stdout io.Writer) (io.Writer, func() error, error) {
	if opts.Output == "" {
		return stdout, func() error { return nil }, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, file.Close, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Debug("gbinspect", log.String("version", VersionString(version, commit)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}

// VersionString returns the version with the short commit hash appended.
func VersionString(version, commit string) string {
	if commit == "" {
		return version
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", version, commit)
}
