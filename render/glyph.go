package render

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid is returned when there is nothing to draw.
	ErrNilGrid = errors.New("render: grid is nil")

	// ErrScreenTooSmall is returned when the terminal cannot fit the grid.
	ErrScreenTooSmall = errors.New("render: screen too small")
)

// CellWidth is the number of columns used per grid cell.
const CellWidth = 3

var glyphs = [...]rune{
	grid.Empty:    '•',
	grid.Obstacle: '■',
	grid.Start:    '▣',
	grid.End:      '▢',
	grid.Path:     '⊡',
}

var styles = [...]tcell.Style{
	grid.Empty:    tcell.StyleDefault.Foreground(tcell.ColorGray),
	grid.Obstacle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	grid.Start:    tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	grid.End:      tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	grid.Path:     tcell.StyleDefault.Foreground(tcell.ColorYellow),
}

// Glyph returns the display rune for b; unknown blocks render as '?'.
func Glyph(b grid.Block) rune {
	if int(b) < len(glyphs) {
		return glyphs[b]
	}
	return '?'
}

// Style returns the terminal style for b.
func Style(b grid.Block) tcell.Style {
	if int(b) < len(styles) {
		return styles[b]
	}
	return tcell.StyleDefault
}

// Summary formats the one-line outcome of res.
func Summary(res *search.Result) string {
	if res == nil {
		return ""
	}
	if !res.Found {
		return fmt.Sprintf("%s: no path found", res.Algorithm.Name())
	}
	return fmt.Sprintf("%s: path length %d (expanded %d)", res.Algorithm.Name(), res.Cost, res.Expanded)
}
