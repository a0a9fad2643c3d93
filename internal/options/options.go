// Package options contains the program options.
package options

import (
	"fmt"

	"github.com/retroenv/gbinspect/internal/arch/sm83"
	"github.com/retroenv/gbinspect/internal/disasm"
	"github.com/retroenv/gbinspect/internal/header"
	"github.com/retroenv/retrogolib/arch"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string // cartridge image to inspect
	Output string // output file, stdout if empty
	Config string // JSON config file
	Batch  string // batch process files matching pattern (e.g. *.gb)
}

// Flags contains behavior options.
type Flags struct {
	Disassemble   bool // walk the code after the header report
	Force         bool // disassemble images with an invalid header
	StopAfterJump bool // end a path after an unconditional jump
	Start         int  // start offset of the walk
	Debug         bool
	Quiet         bool
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Format   string // text, json or markdown
	Color    string // auto, always or never
	Targets  string // relative jump target mode
	Prefix   string // 0xCB prefix decoding mode
	NoLabels bool   // omit labels of branch destinations
}

// Program options of the inspector.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// New returns program options with default values.
func New() Program {
	dec := sm83.DefaultOptions()
	return Program{
		Flags: Flags{
			Start: header.EntryPointOffset,
		},
		OutputFlags: OutputFlags{
			Format:  "text",
			Color:   "auto",
			Targets: string(dec.Targets),
			Prefix:  string(dec.Prefix),
		},
	}
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	System  arch.System // set by the pipeline from the detected system
	Decoder sm83.Options
	Policy  disasm.Policy
	Start   int
	Force   bool
}

// NewDisassembler returns the disassembler options of the program options.
func NewDisassembler(opts Program) (Disassembler, error) {
	dec := sm83.Options{
		Prefix:  sm83.PrefixMode(opts.Prefix),
		Targets: sm83.TargetMode(opts.Targets),
	}
	if err := dec.Validate(); err != nil {
		return Disassembler{}, fmt.Errorf("invalid decoder options: %w", err)
	}
	if opts.Start < 0 {
		return Disassembler{}, fmt.Errorf("invalid start offset %d", opts.Start)
	}

	return Disassembler{
		Decoder: dec,
		Policy: disasm.Policy{
			StopAfterJump: opts.StopAfterJump,
		},
		Start: opts.Start,
		Force: opts.Force,
	}, nil
}
