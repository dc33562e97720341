package render

import (
	"bufio"
	"io"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Text writes g to w, one grid row per line, followed by the summary of
// res. A nil res renders the grid only.
func Text(w io.Writer, g *grid.Grid, res *search.Result) error {
	if g == nil {
		return ErrNilGrid
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < g.Len(); i++ {
		bw.WriteByte(' ')
		bw.WriteRune(Glyph(g.At(i)))
		bw.WriteByte(' ')
		if (i+1)%g.Width() == 0 {
			bw.WriteByte('\n')
		}
	}
	if res != nil {
		bw.WriteString(Summary(res))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
