// Package cli handles command line interface logic
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/retroenv/gbinspect/internal/config"
	"github.com/retroenv/gbinspect/internal/options"
	"github.com/retroenv/gbinspect/internal/report"
	"github.com/retroenv/gbinspect/internal/writer"
	"github.com/spf13/cobra"
)

// ErrMissingInput is returned when neither a file nor a batch pattern is given.
var ErrMissingInput = errors.New("missing file to inspect, pass a file or use --batch")

// Runner processes the files selected by the parsed options.
type Runner func(ctx context.Context, opts options.Program, disasmOpts options.Disassembler, out io.Writer) error

// Execute parses the command line and calls run for the inspecting commands.
func Execute(ctx context.Context, version string, run Runner) error {
	if err := fang.Execute(ctx, NewRootCommand(run), fang.WithVersion(version)); err != nil {
		return fmt.Errorf("executing command: %w", err)
	}
	return nil
}

// NewRootCommand returns the command tree of the program.
func NewRootCommand(run Runner) *cobra.Command {
	opts := options.New()

	root := &cobra.Command{
		Use:   "gbinspect",
		Short: "Game Boy cartridge inspector and disassembler",
		Long: `gbinspect validates the header of Game Boy cartridge images, prints the
cartridge metadata and disassembles all code reachable from the entry point.`,
		Example: `
# Print the cartridge metadata
gbinspect info tetris.gb

# Disassemble a cartridge as JSON
gbinspect disasm --format json tetris.gb

# Inspect all cartridges of a directory
gbinspect info --batch 'roms/*.gb'
  `,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.Config, "config", "c", "", "JSON config file to read options from")
	flags.StringVarP(&opts.Output, "output", "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of files matching the pattern, for example *.gb")
	flags.StringVarP(&opts.Format, "format", "f", opts.Format, "output format (text/json/markdown)")
	flags.StringVar(&opts.Color, "color", opts.Color, "colored output (auto/always/never)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "perform operations quietly")

	root.AddCommand(
		newInfoCommand(&opts, run),
		newDisasmCommand(&opts, run),
		newSchemaCommand(),
	)
	return root
}

func newInfoCommand(opts *options.Program, run Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Print the cartridge metadata",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, args, *opts, run)
		},
	}
}

func newDisasmCommand(opts *options.Program, run Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disasm [file]",
		Short: "Print the cartridge metadata and disassemble the reachable code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := *opts
			o.Disassemble = true
			return runCommand(cmd, args, o, run)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Targets, "targets", opts.Targets, "relative jump targets (relative/literal)")
	flags.StringVar(&opts.Prefix, "prefix", opts.Prefix, "decoding of the 0xCB prefix (opaque/decoded)")
	flags.BoolVar(&opts.StopAfterJump, "stop-after-jump", false, "end a code path after an unconditional jump")
	flags.BoolVar(&opts.Force, "force", false, "disassemble cartridges with an invalid header")
	flags.IntVar(&opts.Start, "start", opts.Start, "start offset of the disassembly")
	flags.BoolVar(&opts.NoLabels, "no-labels", false, "do not output labels for branch destinations")
	return cmd
}

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "schema",
		Short:  "Generate JSON schema for configuration",
		Long:   "Generate JSON schema for the gbinspect configuration file",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.Schema()
			if err != nil {
				return fmt.Errorf("generating schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}

// runCommand applies the config file, validates the options and calls the runner.
func runCommand(cmd *cobra.Command, args []string, opts options.Program, run Runner) error {
	if len(args) == 0 && opts.Batch == "" {
		return ErrMissingInput
	}
	if len(args) > 0 {
		opts.Input = args[0]
	}

	if opts.Config != "" {
		cfg, err := config.Load(opts.Config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg.Apply(&opts, cmd.Flags().Changed)
	}

	if err := normalizeOptions(&opts); err != nil {
		return err
	}

	disasmOpts, err := options.NewDisassembler(opts)
	if err != nil {
		return fmt.Errorf("creating disassembler options: %w", err)
	}

	return run(cmd.Context(), opts, disasmOpts, cmd.OutOrStdout())
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(opts.Format)
	opts.Color = strings.ToLower(opts.Color)
	opts.Targets = strings.ToLower(opts.Targets)
	opts.Prefix = strings.ToLower(opts.Prefix)

	if opts.Format == "md" {
		opts.Format = report.FormatMarkdown
	}

	validFormats := []string{report.FormatText, report.FormatJSON, report.FormatMarkdown}
	if !slices.Contains(validFormats, opts.Format) {
		return fmt.Errorf("unsupported format: %s. Valid options: %s",
			opts.Format, strings.Join(validFormats, ", "))
	}

	validColors := []string{writer.ColorAuto, writer.ColorAlways, writer.ColorNever}
	if !slices.Contains(validColors, opts.Color) {
		return fmt.Errorf("unsupported color mode: %s. Valid options: %s",
			opts.Color, strings.Join(validColors, ", "))
	}
	return nil
}
