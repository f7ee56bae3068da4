package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/portfolio-quest/content"
)

const viewerHint = "Esc/Backspace: back   Up/Down PgUp/PgDn: scroll"

var (
	viewerText   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	viewerTitle  = viewerText.Foreground(tcell.ColorGold).Bold(true)
	viewerFooter = viewerText.Foreground(tcell.ColorDarkSlateGray)
)

// Viewer shows one page as scrollable wrapped text
type Viewer struct {
	page   content.Page
	lines  []string
	width  int
	offset int
}

// NewViewer wraps page for a screen width
func NewViewer(page content.Page, width int) *Viewer {
	v := &Viewer{page: page}
	v.SetWidth(width)
	return v
}

// Page returns the page being shown
func (v *Viewer) Page() content.Page { return v.page }

// SetWidth rewraps the page, keeping the scroll offset in range
func (v *Viewer) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	v.width = width
	v.lines = v.page.Lines(max(width-2, 1))
	v.offset = min(v.offset, max(len(v.lines)-1, 0))
}

// Scroll moves the view by delta lines
func (v *Viewer) Scroll(delta int) {
	v.offset = min(max(v.offset+delta, 0), max(len(v.lines)-1, 0))
}

// Offset returns the first visible line
func (v *Viewer) Offset() int { return v.offset }

// Draw renders the visible lines above a key hint on the last row
func (v *Viewer) Draw(scr tcell.Screen) {
	cols, rows := scr.Size()
	if cols != v.width {
		v.SetWidth(cols)
	}
	scr.Fill(' ', viewerText)
	if rows == 0 {
		return
	}

	body := rows - 1
	for i := 0; i < body && v.offset+i < len(v.lines); i++ {
		style := viewerText
		if v.offset+i == 0 {
			style = viewerTitle
		}
		putLine(scr, 1, i, v.lines[v.offset+i], style)
	}
	if rows > 1 {
		putLine(scr, 1, rows-1, runewidth.Truncate(viewerHint, max(cols-2, 0), ""), viewerFooter)
	}
}

func putLine(scr tcell.Screen, col, row int, s string, style tcell.Style) {
	cols, _ := scr.Size()
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if col+w > cols {
			return
		}
		scr.SetContent(col, row, r, nil, style)
		col += w
	}
}
