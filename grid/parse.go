package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// layoutGlyphs maps text-layout characters to blocks. Both the ASCII set and
// the renderer's glyph set are accepted, so rendered output can be re-read.
var layoutGlyphs = map[rune]Block{
	'.': Empty, '•': Empty,
	'#': Obstacle, '■': Obstacle,
	'S': Start, '▣': Start,
	'E': End, '▢': End,
	'*': Path, '⊡': Path,
}

// Parse reads a hand-edited layout, one grid row per line.
// Whitespace inside a line and blank lines are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownGlyph, ErrDimensions,
// or ErrPlacement for a duplicated Start/End.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]Block
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.Join(strings.Fields(sc.Text()), "")
		if text == "" {
			continue
		}
		row := make([]Block, 0, len(text))
		for col, ch := range []rune(text) {
			b, ok := layoutGlyphs[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrUnknownGlyph, ch, line, col+1)
			}
			row = append(row, b)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read layout: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	g, err := New(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, b := range row {
			c := Coord{X: x, Y: y}
			switch b {
			case Start:
				if g.hasStart {
					return nil, fmt.Errorf("%w: second Start at %s", ErrPlacement, c)
				}
				err = g.MarkStart(c)
			case End:
				if g.hasEnd {
					return nil, fmt.Errorf("%w: second End at %s", ErrPlacement, c)
				}
				err = g.MarkEnd(c)
			default:
				g.cells[g.Index(c)] = b
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
