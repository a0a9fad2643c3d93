// Package disasm implements the control flow walker that disassembles all
// code reachable from a start address.
package disasm

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/gbinspect/internal/arch/sm83"
	"github.com/retroenv/gbinspect/internal/image"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Record is one decoded instruction handed to a Sink.
type Record struct {
	Depth       int // number of branches and calls followed to reach the instruction
	Address     int
	Instruction sm83.Instruction
}

// Sink receives the decoded instructions in traversal order.
type Sink interface {
	Write(rec Record) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(rec Record) error

// Write calls f(rec).
func (f SinkFunc) Write(rec Record) error {
	return f(rec)
}

// Policy controls the traversal order decisions of the walker.
type Policy struct {
	// StopAfterJump ends a path after an unconditional jump instead of
	// continuing with the bytes following it.
	StopAfterJump bool
}

// Stats summarizes a walk.
type Stats struct {
	Instructions int `json:"instructions"` // instructions emitted
	Paths        int `json:"paths"`        // paths started, including the initial one
	MaxDepth     int `json:"max_depth"`
}

// frame is a pending path of the work list.
type frame struct {
	address int
	depth   int
}

// Walker follows the control flow of a cartridge image.
type Walker struct {
	logger  *log.Logger
	decoder *sm83.Decoder
	policy  Policy
}

// New returns a new walker.
func New(logger *log.Logger, decoder *sm83.Decoder, policy Policy) *Walker {
	return &Walker{
		logger:  logger,
		decoder: decoder,
		policy:  policy,
	}
}

// Walk decodes every instruction reachable from start and writes it to the
// sink. Branch and call targets are walked before the instruction following
// the branch. Every address is decoded at most once per call.
// An unknown opcode aborts the walk; the instructions written so far remain
// in the sink.
func (w *Walker) Walk(ctx context.Context, v image.View, start int, sink Sink) (Stats, error) {
	var stats Stats
	visited := set.New[int]()
	pending := []frame{{address: start}}

	for len(pending) > 0 {
		f := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		stats.Paths++

		var err error
		pending, err = w.walkPath(ctx, v, f, visited, pending, sink, &stats)
		if err != nil {
			return stats, err
		}
	}

	w.logger.Debug("Walk finished",
		log.Hex("start", start),
		log.Int("instructions", stats.Instructions),
		log.Int("paths", stats.Paths),
		log.Int("max_depth", stats.MaxDepth))
	return stats, nil
}

// walkPath decodes instructions sequentially until the path ends. When a
// branch or call is found, the continuation is pushed to the pending list and
// the path continues at the target.
func (w *Walker) walkPath(ctx context.Context, v image.View, f frame, visited set.Set[int],
	pending []frame, sink Sink, stats *Stats) ([]frame, error) {

	address, depth := f.address, f.depth
	for {
		if err := ctx.Err(); err != nil {
			return pending, fmt.Errorf("walking: %w", err)
		}
		if !v.Contains(address) || visited.Contains(address) {
			return pending, nil
		}
		visited.Add(address)

		ins, err := w.decoder.Decode(v, address)
		if err != nil {
			if errors.Is(err, image.ErrOutOfBounds) {
				w.logger.Debug("Path ends at image end", log.Hex("address", address))
				return pending, nil
			}
			return pending, fmt.Errorf("decoding instruction: %w", err)
		}

		if err := sink.Write(Record{Depth: depth, Address: address, Instruction: ins}); err != nil {
			return pending, fmt.Errorf("writing instruction at 0x%04x: %w", address, err)
		}
		stats.Instructions++
		stats.MaxDepth = max(stats.MaxDepth, depth)

		if endsPath(ins.Kind) {
			return pending, nil
		}

		next := address + ins.Length
		jump := ins.Kind == sm83.UnconditionalBranch && w.policy.StopAfterJump

		if ins.HasTarget && (ins.IsJump() || ins.IsCall()) {
			if !jump {
				pending = append(pending, frame{address: next, depth: depth})
			}
			address, depth = ins.Target, depth+1
			continue
		}

		if jump {
			return pending, nil
		}
		address = next
	}
}

// endsPath returns whether execution does not continue after an instruction
// of the given kind. A conditional return ends the path as well, its fall
// through is reached through the caller.
func endsPath(kind sm83.Kind) bool {
	switch kind {
	case sm83.Return, sm83.ConditionalReturn, sm83.Halt:
		return true
	default:
		return false
	}
}
