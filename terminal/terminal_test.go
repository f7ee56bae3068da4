package terminal

import (
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-quest/content"
	"github.com/lixenwraith/portfolio-quest/engine"
	"github.com/lixenwraith/portfolio-quest/parameter"
	"github.com/lixenwraith/portfolio-quest/render"
	"github.com/lixenwraith/portfolio-quest/theme"
)

// 160x50 cells cover the 1280x800 desktop world
func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	scr.SetSize(cols, rows)
	t.Cleanup(scr.Fini)
	return scr
}

func cellColors(scr tcell.Screen, col, row int) (r rune, fg, bg tcell.Color) {
	r, _, style, _ := scr.GetContent(col, row)
	fg, bg, _ = style.Decompose()
	return r, fg, bg
}

func TestWorldMapping(t *testing.T) {
	w, h := WorldSize(160, 50)
	if w != 1280 || h != 800 {
		t.Fatalf("WorldSize = %vx%v, want 1280x800", w, h)
	}
	for _, c := range [][2]int{{0, 0}, {92, 16}, {159, 49}} {
		x, y := CellToWorld(c[0], c[1])
		if col, row := WorldToCell(x, y); col != c[0] || row != c[1] {
			t.Errorf("round trip of %v = (%d, %d)", c, col, row)
		}
	}
}

func TestRasterizeHalfBlocks(t *testing.T) {
	scr := newSimScreen(t, 4, 2)
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	f := render.Frame{Width: 32, Height: 32, Ops: []render.Op{
		{Kind: render.KindRect, X: 0, Y: 0, W: 32, H: 8, Color: red, Alpha: 1},
		{Kind: render.KindRect, X: 0, Y: 8, W: 32, H: 24, Color: blue, Alpha: 1},
	}}
	Rasterize(scr, &f)

	r, fg, bg := cellColors(scr, 0, 0)
	if r != HalfBlock || fg != RGB(red) || bg != RGB(blue) {
		t.Errorf("cell (0,0) = %q fg=%v bg=%v, want red over blue", r, fg, bg)
	}
	if _, fg, bg = cellColors(scr, 3, 1); fg != RGB(blue) || bg != RGB(blue) {
		t.Errorf("cell (3,1) fg=%v bg=%v, want blue", fg, bg)
	}
}

func TestRasterizeLabel(t *testing.T) {
	scr := newSimScreen(t, 20, 4)
	f := render.Frame{Width: 160, Height: 64, Ops: []render.Op{
		{Kind: render.KindRect, X: 0, Y: 0, W: 160, H: 64, Color: color.RGBA{G: 100, A: 255}, Alpha: 1},
		{Kind: render.KindText, X: 80, Y: 20, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}, Alpha: 1, Text: "ABOUT"},
	}}
	Rasterize(scr, &f)

	got := make([]rune, 5)
	for i := range got {
		got[i], _, _ = cellColors(scr, 8+i, 1)
	}
	if string(got) != "ABOUT" {
		t.Errorf("label row = %q, want ABOUT centred at column 10", string(got))
	}
}

type testApp struct {
	*App
	scr   tcell.SimulationScreen
	clock *engine.ManualClock
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	scr := newSimScreen(t, 160, 50)
	clock := engine.NewManualClock(time.Unix(0, 0), parameter.FrameUpdateInterval)
	app := NewApp(scr, Options{
		Theme:   theme.NewProvider(theme.Light),
		Library: content.MustLoad(),
		Clock:   clock,
		Seed:    3,
	})
	t.Cleanup(app.Close)
	return testApp{App: app, scr: scr, clock: clock}
}

func (a testApp) runUntil(t *testing.T, frames int, done func() bool) {
	t.Helper()
	for i := 0; i < frames; i++ {
		a.clock.Step()
		a.Step()
		if done() {
			return
		}
	}
	t.Fatalf("condition not reached in %d frames", frames)
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSelectOpensPageAndReturns(t *testing.T) {
	a := newTestApp(t)
	first := a.Scene()

	a.HandleEvent(key('2'))
	if a.Scene().Phase() != engine.PhaseWalkingToTarget {
		t.Fatalf("phase = %v after selecting a portal", a.Scene().Phase())
	}
	a.runUntil(t, 400, func() bool { return a.Viewer() != nil })

	if got := a.Viewer().Page().ID; got != "projects" {
		t.Errorf("page = %q, want projects", got)
	}
	if a.Scene() != nil {
		t.Error("scene still mounted behind the page")
	}
	if first.Active() {
		t.Error("old scene not torn down")
	}
	if h := a.Navigation().History(); len(h) != 1 || h[0] != "projects" {
		t.Errorf("history = %v", h)
	}
	snap := a.Stats().Snapshot()
	if snap.Counters["pages opened"] != 1 || snap.Labels["page"] != "projects" || snap.Counters["frames"] == 0 {
		t.Errorf("stats = %+v", snap)
	}

	if quit := a.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); quit {
		t.Fatal("Esc in the viewer quit the app")
	}
	if a.Viewer() != nil || a.Scene() == nil || a.Scene() == first {
		t.Fatal("Esc did not remount a fresh scene")
	}
	if a.Scene().Phase() != engine.PhaseFree {
		t.Errorf("remounted phase = %v", a.Scene().Phase())
	}
}

func TestMouseClickStartsWalk(t *testing.T) {
	a := newTestApp(t)
	p, ok := a.Scene().Portal("about")
	if !ok {
		t.Fatal("no about portal")
	}
	col, row := WorldToCell(p.X, p.Y)

	a.HandleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	if a.Scene().Phase() != engine.PhaseWalkingToTarget {
		t.Fatalf("phase = %v after click", a.Scene().Phase())
	}

	// Motion with the button still down is not a second click
	a.HandleEvent(tcell.NewEventMouse(col+1, row, tcell.Button1, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone))
}

func TestMouseMissDoesNothing(t *testing.T) {
	a := newTestApp(t)
	a.HandleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	if a.Scene().Phase() != engine.PhaseFree {
		t.Errorf("phase = %v after clicking empty sky", a.Scene().Phase())
	}
}

func TestHeldArrowMovesAvatar(t *testing.T) {
	a := newTestApp(t)
	start := a.Scene().Avatar().X

	a.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	for i := 0; i < 10; i++ {
		a.clock.Step()
		a.Step()
	}
	if moved := a.Scene().Avatar().X; moved <= start {
		t.Fatalf("avatar x = %v, want > %v while held", moved, start)
	}

	// The emulated hold expires without repeats
	a.clock.Advance(time.Second)
	a.Step()
	x := a.Scene().Avatar().X
	a.clock.Step()
	a.Step()
	if a.Scene().Avatar().X != x {
		t.Error("avatar kept moving after the hold window")
	}
}

func TestThemeToggleKey(t *testing.T) {
	a := newTestApp(t)
	a.HandleEvent(key('t'))
	if a.opts.Theme.Mode() != theme.Dark {
		t.Errorf("mode = %v, want dark", a.opts.Theme.Mode())
	}
	if !a.Scene().Palette().Stars {
		t.Error("scene sky did not switch to the dark palette")
	}
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t)
	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if !a.HandleEvent(ev) {
			t.Errorf("%v did not quit", ev.Name())
		}
	}
	if a.HandleEvent(key('x')) {
		t.Error("unbound key quit")
	}
}

func TestResizeEvent(t *testing.T) {
	a := newTestApp(t)
	a.scr.SetSize(128, 48)
	a.HandleEvent(tcell.NewEventResize(128, 48))
	if w := a.Scene().World().Width; w != 1024 {
		t.Errorf("world width = %v, want 1024", w)
	}
}

func TestDefaultTerminalSizeLayout(t *testing.T) {
	a := newTestApp(t)
	a.scr.SetSize(80, 24)
	a.HandleEvent(tcell.NewEventResize(80, 24))

	world := a.Scene().World()
	if world.Width != 640 || world.Height != 384 {
		t.Fatalf("world = %vx%v, want 640x384", world.Width, world.Height)
	}
	for _, p := range world.Portals {
		if p.Surface.Top() <= p.Bottom() {
			t.Errorf("portal %s bottom %v overlaps its surface top %v", p.ID, p.Bottom(), p.Surface.Top())
		}
	}
}

func TestViewerScroll(t *testing.T) {
	lib := content.MustLoad()
	page, err := lib.Page("projects")
	if err != nil {
		t.Fatal(err)
	}
	v := NewViewer(page, 40)
	v.Scroll(-5)
	if v.Offset() != 0 {
		t.Errorf("offset = %d after scrolling above the top", v.Offset())
	}
	v.Scroll(1 << 20)
	last := v.Offset()
	if last == 0 {
		t.Fatal("page did not scroll")
	}
	v.Scroll(1)
	if v.Offset() != last {
		t.Errorf("scrolled past the end: %d > %d", v.Offset(), last)
	}

	scr := newSimScreen(t, 40, 10)
	v.Scroll(-v.Offset())
	v.Draw(scr)
	title := make([]rune, 0, len(page.Title))
	for i := range []rune(page.Title) {
		r, _, _ := cellColors(scr, 1+i, 0)
		title = append(title, r)
	}
	if string(title) != page.Title {
		t.Errorf("row 0 = %q, want %q", string(title), page.Title)
	}
}
