// Package pipeline orchestrates the inspection workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/gbinspect/internal/arch/sm83"
	"github.com/retroenv/gbinspect/internal/cartridge"
	"github.com/retroenv/gbinspect/internal/detector"
	"github.com/retroenv/gbinspect/internal/disasm"
	"github.com/retroenv/gbinspect/internal/image"
	"github.com/retroenv/gbinspect/internal/loader"
	"github.com/retroenv/gbinspect/internal/options"
	"github.com/retroenv/gbinspect/internal/report"
	"github.com/retroenv/gbinspect/internal/writer"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete inspection workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new inspection pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete pipeline for the input file of the options.
// Text and markdown output is written to w while processing, JSON output is
// only collected in the returned document.
// Files that can not be read are reported as invalid instead of failing.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	w io.Writer) (report.Document, error) {

	doc := report.Document{File: opts.Input}

	system, err := p.detector.Detect(opts.Input)
	if err != nil {
		return doc, fmt.Errorf("detecting system of '%s': %w", opts.Input, err)
	}

	data, err := p.loader.Load(opts.Input)
	if err != nil {
		p.logger.Error("Loading cartridge failed", log.String("file", opts.Input), log.Err(err))
		doc.Error = err.Error()
		if err := p.writeMetadata(opts, doc, w); err != nil {
			return doc, err
		}
		return doc, nil
	}

	p.logger.Debug("Processing cartridge",
		log.String("file", opts.Input),
		log.Stringer("system", system),
		log.Int("size", len(data)))

	return p.ExecuteWithImage(ctx, data, opts, disasmOpts, w, system)
}

// ExecuteWithImage runs the pipeline with a pre-loaded cartridge image.
// This is useful for testing and programmatic usage where the image is already in memory.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, data []byte, opts options.Program,
	disasmOpts options.Disassembler, w io.Writer, system arch.System) (report.Document, error) {

	disasmOpts.System = system

	doc := report.Document{
		File:     opts.Input,
		Metadata: cartridge.Inspect(data),
	}
	if err := p.writeMetadata(opts, doc, w); err != nil {
		return doc, err
	}

	if !opts.Disassemble {
		return doc, nil
	}
	if !doc.Metadata.Valid && !disasmOpts.Force {
		p.logger.Warn("Invalid cartridge header, skipping disassembly", log.String("file", opts.Input))
		return doc, nil
	}

	stats, err := p.runDisassembly(ctx, data, opts, disasmOpts, w, &doc)
	if err != nil {
		doc.Error = err.Error()
		return doc, fmt.Errorf("disassembling: %w", err)
	}
	doc.Stats = &stats
	return doc, nil
}

// runDisassembly walks the image and writes the instructions to the sink
// matching the output format. The instructions decoded before an unknown
// opcode was found are still written.
func (p *Pipeline) runDisassembly(ctx context.Context, data []byte, opts options.Program,
	disasmOpts options.Disassembler, w io.Writer, doc *report.Document) (disasm.Stats, error) {

	dec, err := newDecoder(disasmOpts)
	if err != nil {
		return disasm.Stats{}, err
	}
	walker := disasm.New(p.logger, dec, disasmOpts.Policy)

	if opts.Format == report.FormatJSON {
		var sink writer.JSON
		stats, err := walker.Walk(ctx, image.New(data), disasmOpts.Start, &sink)
		doc.Instructions = sink.Entries
		p.logWalkError(err)
		return stats, err
	}

	color, err := writer.UseColor(opts.Color, outputFile(w))
	if err != nil {
		return disasm.Stats{}, fmt.Errorf("selecting color mode: %w", err)
	}
	listing := writer.NewListing(w, writer.Options{
		Color:  color && opts.Format == report.FormatText,
		Labels: !opts.NoLabels,
	})

	stats, walkErr := walker.Walk(ctx, image.New(data), disasmOpts.Start, listing)
	p.logWalkError(walkErr)
	if ctx.Err() != nil {
		return stats, walkErr
	}

	if err := writeListing(w, listing, opts.Format); err != nil {
		return stats, err
	}
	return stats, walkErr
}

// newDecoder creates the instruction decoder for the CPU of the system.
func newDecoder(disasmOpts options.Disassembler) (*sm83.Decoder, error) {
	switch disasmOpts.System {
	case arch.GameBoy:
		dec, err := sm83.NewDecoder(disasmOpts.Decoder)
		if err != nil {
			return nil, fmt.Errorf("creating %s decoder: %w", arch.SM83, err)
		}
		return dec, nil
	default:
		return nil, fmt.Errorf("unsupported system '%s'", disasmOpts.System)
	}
}

func (p *Pipeline) logWalkError(err error) {
	var unknown *sm83.UnknownOpcodeError
	if errors.As(err, &unknown) {
		p.logger.Error("Unknown opcode",
			log.Hex("opcode", unknown.Opcode),
			log.Hex("address", unknown.Address))
	}
}

// writeListing flushes the listing, as fenced code block for markdown output.
func writeListing(w io.Writer, listing *writer.Listing, format string) error {
	fenced := format == report.FormatMarkdown
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	if fenced {
		if _, err := fmt.Fprintln(w, "```asm"); err != nil {
			return fmt.Errorf("writing code block: %w", err)
		}
	}
	if err := listing.Flush(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	if fenced {
		if _, err := fmt.Fprintln(w, "```"); err != nil {
			return fmt.Errorf("writing code block: %w", err)
		}
	}
	return nil
}

// writeMetadata writes the metadata report for text and markdown output.
func (p *Pipeline) writeMetadata(opts options.Program, doc report.Document, w io.Writer) error {
	color, err := writer.UseColor(opts.Color, outputFile(w))
	if err != nil {
		return fmt.Errorf("selecting color mode: %w", err)
	}

	switch opts.Format {
	case report.FormatJSON:
		return nil
	case report.FormatMarkdown:
		err = report.WriteMarkdown(w, doc.File, doc.Metadata, color)
	case report.FormatText, "":
		err = report.WriteText(w, doc.File, doc.Metadata, color)
	default:
		return fmt.Errorf("unsupported output format '%s'", opts.Format)
	}
	if err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}

// outputFile returns the file of the writer, or nil if it does not write to a file.
func outputFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
