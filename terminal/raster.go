// Package terminal is the tcell frontend: it rasterizes composed frames into
// half-block cells, pumps key and mouse events into the scene and shows pages.
package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/portfolio-quest/parameter"
	"github.com/lixenwraith/portfolio-quest/render"
)

// HalfBlock draws the upper dot in the foreground and the lower dot in the background
const HalfBlock = '▀'

var blank = color.RGBA{A: 0xff}

// WorldSize returns the world pixels covered by cols x rows cells
func WorldSize(cols, rows int) (w, h float64) {
	return float64(cols) * parameter.CellWidth, float64(rows) * 2 * parameter.DotHeight
}

// CellToWorld maps a cell to the world point at its centre
func CellToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * parameter.CellWidth, (float64(row) + 0.5) * 2 * parameter.DotHeight
}

// WorldToCell maps a world point to the cell containing it
func WorldToCell(x, y float64) (col, row int) {
	return int(x / parameter.CellWidth), int(y / (2 * parameter.DotHeight))
}

// RGB converts a frame colour to a tcell colour
func RGB(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func sample(f *render.Frame, x, y float64) color.RGBA {
	if c, ok := f.Sample(x, y); ok {
		return c
	}
	return blank
}

// Rasterize paints f over the whole screen and overlays its text
func Rasterize(scr tcell.Screen, f *render.Frame) {
	cols, rows := scr.Size()
	for row := 0; row < rows; row++ {
		topY := (float64(2*row) + 0.5) * parameter.DotHeight
		bottomY := topY + parameter.DotHeight
		for col := 0; col < cols; col++ {
			x := (float64(col) + 0.5) * parameter.CellWidth
			style := tcell.StyleDefault.
				Foreground(RGB(sample(f, x, topY))).
				Background(RGB(sample(f, x, bottomY)))
			scr.SetContent(col, row, HalfBlock, nil, style)
		}
	}

	for _, op := range f.Texts() {
		drawLabel(scr, f, op, cols, rows)
	}
}

// drawLabel centres text on the op's X in the row holding its top edge
func drawLabel(scr tcell.Screen, f *render.Frame, op render.Op, cols, rows int) {
	centre, row := WorldToCell(op.X, op.Y)
	if row < 0 || row >= rows {
		return
	}
	col := centre - runewidth.StringWidth(op.Text)/2
	for _, r := range op.Text {
		w := runewidth.RuneWidth(r)
		if col >= 0 && col+w <= cols {
			x, y := CellToWorld(col, row)
			style := tcell.StyleDefault.
				Foreground(RGB(op.Color)).
				Background(RGB(sample(f, x, y))).
				Bold(true)
			scr.SetContent(col, row, r, nil, style)
		}
		col += w
	}
}
