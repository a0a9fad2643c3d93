// Package writer implements the output sinks for disassembled instructions.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/gbinspect/internal/disasm"
)

const branchIntoComment = "branch into instruction detected"

// Options of the writer.
type Options struct {
	Color  bool // highlight the listing with terminal colors
	Labels bool // print labels for branch destinations
}

// Listing is a sink that prints the instructions in traversal order.
// The records are buffered until Flush is called, as the labels depend on
// all branch destinations of the walk.
type Listing struct {
	options Options
	writer  io.Writer
	styles  *styles

	records []disasm.Record
}

// NewListing creates a new listing writer.
func NewListing(writer io.Writer, options Options) *Listing {
	l := &Listing{
		options: options,
		writer:  writer,
	}
	if options.Color {
		l.styles = newStyles()
	}
	return l
}

// Write buffers the record.
func (l *Listing) Write(rec disasm.Record) error {
	l.records = append(l.records, rec)
	return nil
}

// Flush writes all buffered records and resets the buffer.
func (l *Listing) Flush() error {
	var labels *disasm.Labels
	if l.options.Labels {
		labels = disasm.NewLabels(l.records)
	}

	for _, rec := range l.records {
		if labels != nil {
			if name, ok := labels.Name(rec.Address); ok {
				if _, err := fmt.Fprintln(l.writer, l.label(name)); err != nil {
					return fmt.Errorf("writing label: %w", err)
				}
			}
		}

		if _, err := fmt.Fprintln(l.writer, l.line(rec, labels)); err != nil {
			return fmt.Errorf("writing instruction line: %w", err)
		}
	}

	l.records = l.records[:0]
	return nil
}

// line formats a record as depth, address, encoded bytes and instruction.
func (l *Listing) line(rec disasm.Record, labels *disasm.Labels) string {
	ins := rec.Instruction
	depth := fmt.Sprintf("%-3d", rec.Depth)
	address := fmt.Sprintf("0x%04X", rec.Address)
	encoded := fmt.Sprintf("%-8s", hexBytes(ins.Bytes()))
	code := ins.String()

	var comments []string
	if labels != nil {
		if ins.HasTarget {
			if name, ok := labels.Name(ins.Target); ok {
				comments = append(comments, name)
			}
		}
		if labels.BranchedInto(rec.Address) {
			comments = append(comments, branchIntoComment)
		}
	}

	if l.styles == nil {
		line := fmt.Sprintf("%s %s  %s  %s", depth, address, encoded, code)
		if len(comments) > 0 {
			line = fmt.Sprintf("%-40s ; %s", line, strings.Join(comments, ", "))
		}
		return line
	}

	line := fmt.Sprintf("%s %s  %s  %s",
		l.styles.depth.Render(depth),
		l.styles.address.Render(address),
		l.styles.bytes.Render(encoded),
		l.styles.highlight(code))
	if len(comments) > 0 {
		line += "  " + l.styles.comment.Render("; "+strings.Join(comments, ", "))
	}
	return line
}

func (l *Listing) label(name string) string {
	if l.styles == nil {
		return name + ":"
	}
	return l.styles.label.Render(name + ":")
}

// hexBytes returns the bytes as space separated upper case hex values.
func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
