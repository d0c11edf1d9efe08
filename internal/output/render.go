package output

import (
	"strings"

	"github.com/lgbarn/freecell-go/internal/board"
	"github.com/lgbarn/freecell-go/internal/cards"
	"github.com/lgbarn/freecell-go/internal/config"
)

// cellWidth is the number of columns one card occupies.
const cellWidth = 3

// Style selects how cards and headers are drawn.
type Style struct {
	Glyphs bool
	Colour bool
}

// StyleFor returns the style described by cfg.
func StyleFor(cfg config.OutputConfig) Style {
	return Style{Glyphs: cfg.Glyphs, Colour: cfg.Colour}
}

// Paint wraps text in the given ANSI colour when colour is enabled.
func (s Style) Paint(colour, text string) string {
	if !s.Colour {
		return text
	}
	return colour + text + Reset
}

func (s Style) cell(card cards.Card, ok bool) string {
	if !ok {
		return strings.Repeat(" ", cellWidth)
	}
	name := card.String()
	if s.Glyphs {
		name = card.Glyph()
	}
	if !s.Colour {
		return name + " "
	}
	if card.IsRed() {
		return FgRed + name + " "
	}
	return FgBlack + name + " "
}

func (s Style) row(cells []string) string {
	line := strings.Join(cells, "")
	if !s.Colour {
		return strings.TrimRight(line, " ")
	}
	return BgGreen + line + BgBlack + Reset
}

// Render draws b as lines: free cells and foundations first, then the
// cascades row by row, then the cascade names.
func Render(b *board.Board, s Style) []string {
	var lines []string

	var top []string
	for _, c := range b.FreeCells {
		top = append(top, s.cell(c.Top()))
	}
	for _, c := range b.Foundations {
		top = append(top, s.cell(c.Top()))
	}
	lines = append(lines, s.row(top))

	for r := 0; r < b.Cascades.RowCount(); r++ {
		cells := make([]string, len(b.Cascades))
		for i, c := range b.Cascades {
			cells[i] = s.cell(c.CardAt(r))
		}
		lines = append(lines, s.row(cells))
	}

	var names strings.Builder
	for _, c := range b.Cascades {
		names.WriteByte(c.Location)
		names.WriteString(strings.Repeat(" ", cellWidth-1))
	}
	lines = append(lines, strings.TrimRight(names.String(), " "))
	return lines
}
