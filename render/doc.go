// Package render draws a grid.Grid and its search.Result, either as plain
// text to any io.Writer or onto a tcell terminal screen.
//
// Every block has one glyph:
//
//	Start    ▣
//	End      ▢
//	Obstacle ■
//	Path     ⊡
//	Empty    •
//
// A cell occupies three columns (" <glyph> ") so the grid keeps a roughly
// square aspect in a terminal. After the grid a single summary line reports
// either the route length and expansion count or that no route exists.
//
// Rendering never changes the grid; paint the route first with route.Paint.
package render
