package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Screen draws grids onto a tcell terminal.
type Screen struct {
	s tcell.Screen
}

// NewScreen initializes s and wraps it. A nil s opens the controlling
// terminal.
func NewScreen(s tcell.Screen) (*Screen, error) {
	if s == nil {
		var err error
		if s, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("render: open terminal: %w", err)
		}
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("render: init terminal: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()

	return &Screen{s: s}, nil
}

// Draw paints g and the summary of res, then shows the frame.
// Returns ErrScreenTooSmall if the grid plus the summary row do not fit.
func (sc *Screen) Draw(g *grid.Grid, res *search.Result) error {
	if g == nil {
		return ErrNilGrid
	}
	sw, sh := sc.s.Size()
	needW, needH := g.Width()*CellWidth, g.Height()+2
	if sw < needW || sh < needH {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrScreenTooSmall, needW, needH, sw, sh)
	}

	sc.s.Clear()
	for i := 0; i < g.Len(); i++ {
		c := g.Coordinate(i)
		b := g.At(i)
		x := c.X * CellWidth
		sc.s.SetContent(x, c.Y, ' ', nil, tcell.StyleDefault)
		sc.s.SetContent(x+1, c.Y, Glyph(b), nil, Style(b))
		sc.s.SetContent(x+2, c.Y, ' ', nil, tcell.StyleDefault)
	}
	col := 0
	for _, r := range Summary(res) {
		sc.s.SetContent(col, g.Height()+1, r, nil, tcell.StyleDefault)
		col++
	}
	sc.s.Show()

	return nil
}

// Wait blocks until the user presses q, Esc, Enter or Ctrl-C, or the
// screen is finalized.
func (sc *Screen) Wait() {
	for {
		switch ev := sc.s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return
				}
			}
		case *tcell.EventResize:
			sc.s.Sync()
		}
	}
}

// Close restores the terminal.
func (sc *Screen) Close() {
	sc.s.Fini()
}
