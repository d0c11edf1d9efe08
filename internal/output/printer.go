// Package output draws FreeCell boards to a terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/freecell-go/internal/board"
	"github.com/lgbarn/freecell-go/internal/config"
)

// Margin is the number of columns between tiled boards.
const Margin = 2

// Printer is the interface for writing board snapshots.
// The TTY printer writes immediately; the line printer batches boards
// and tiles them side by side on Flush.
type Printer interface {
	// PrintHeader sets the caption of the next board.
	PrintHeader(text string)

	// PrintBoard writes a snapshot of b.
	PrintBoard(b *board.Board)

	// Flush writes any buffered boards and returns the first write error.
	Flush() error
}

// New returns the printer named by cfg.Printer.
func New(w io.Writer, cfg config.OutputConfig) Printer {
	if cfg.Printer == config.TTYPrinter {
		return NewTTYPrinter(w, StyleFor(cfg))
	}
	return NewLinePrinter(w, StyleFor(cfg), cfg.Width)
}

// TTYPrinter prints boards one below the other.
type TTYPrinter struct {
	w     io.Writer
	style Style
	err   error
}

// NewTTYPrinter creates a new TTY printer.
func NewTTYPrinter(w io.Writer, style Style) *TTYPrinter {
	return &TTYPrinter{w: w, style: style}
}

func (p *TTYPrinter) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

// PrintHeader writes a blank line and the header.
func (p *TTYPrinter) PrintHeader(text string) {
	p.println("")
	p.println(text)
}

// PrintBoard writes the board.
func (p *TTYPrinter) PrintBoard(b *board.Board) {
	for _, line := range Render(b, p.style) {
		p.println(line)
	}
}

// Flush returns the first write error (no buffering for TTY).
func (p *TTYPrinter) Flush() error {
	return p.err
}

// block is one captioned board, padded to a fixed width.
type block struct {
	lines []string
	cols  int
}

func newBlock(lines []string) block {
	b := block{lines: lines}
	for _, l := range lines {
		b.cols = max(b.cols, PrintingWidth(l))
	}
	return b
}

func (b block) row(i int) string {
	if i >= len(b.lines) {
		return strings.Repeat(" ", b.cols)
	}
	return b.lines[i] + strings.Repeat(" ", b.cols-PrintingWidth(b.lines[i]))
}

// LinePrinter tiles boards horizontally, as many as fit in the width,
// before starting a new band.
type LinePrinter struct {
	w      io.Writer
	style  Style
	width  int
	header string
	blocks []block
	err    error
}

// NewLinePrinter creates a line printer for a terminal width columns wide.
func NewLinePrinter(w io.Writer, style Style, width int) *LinePrinter {
	if width < config.MinWidth {
		width = config.MinWidth
	}
	return &LinePrinter{w: w, style: style, width: width}
}

// PrintHeader sets the first line of the next board's block.
func (p *LinePrinter) PrintHeader(text string) {
	p.header = text
}

// PrintBoard buffers a block holding the pending header and the board.
func (p *LinePrinter) PrintBoard(b *board.Board) {
	lines := append([]string{p.header}, Render(b, p.style)...)
	p.blocks = append(p.blocks, newBlock(lines))
	p.header = ""
}

// Pending returns the number of buffered boards.
func (p *LinePrinter) Pending() int {
	return len(p.blocks)
}

// Flush writes the buffered boards in bands that fit the width.
func (p *LinePrinter) Flush() error {
	for len(p.blocks) > 0 {
		n := p.fitting()
		p.writeBand(p.blocks[:n])
		p.blocks = p.blocks[n:]
	}
	p.blocks = nil
	return p.err
}

// fitting returns how many leading blocks fit in one band, at least one.
func (p *LinePrinter) fitting() int {
	budget := p.width
	n := 0
	for _, b := range p.blocks {
		need := b.cols + Margin
		if need > budget && n > 0 {
			break
		}
		budget -= need
		n++
	}
	return n
}

func (p *LinePrinter) writeBand(band []block) {
	rows := 0
	for _, b := range band {
		rows = max(rows, len(b.lines))
	}
	pad := strings.Repeat(" ", Margin)
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		var line strings.Builder
		for _, b := range band {
			line.WriteString(b.row(r))
			line.WriteString(pad)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	if p.err == nil {
		_, p.err = io.WriteString(p.w, sb.String())
	}
}
