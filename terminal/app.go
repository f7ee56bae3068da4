package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-quest/asset"
	"github.com/lixenwraith/portfolio-quest/content"
	"github.com/lixenwraith/portfolio-quest/core"
	"github.com/lixenwraith/portfolio-quest/engine"
	"github.com/lixenwraith/portfolio-quest/input"
	"github.com/lixenwraith/portfolio-quest/navigation"
	"github.com/lixenwraith/portfolio-quest/parameter"
	"github.com/lixenwraith/portfolio-quest/sprite"
	"github.com/lixenwraith/portfolio-quest/status"
	"github.com/lixenwraith/portfolio-quest/theme"
)

// Options are the collaborators of an App; nil fields get defaults
type Options struct {
	Supplier asset.Supplier
	Theme    *theme.Provider
	Sounds   engine.SoundPlayer
	Library  *content.Library
	Clock    engine.Clock
	Stats    *status.Registry
	Seed     uint64
}

// App runs the game on a tcell screen and swaps to the page viewer on navigation
type App struct {
	screen tcell.Screen
	opts   Options

	life  *engine.Lifecycle
	nav   *navigation.Service
	hold  *input.HoldTracker
	timer *engine.FrameTimer

	viewer    *Viewer
	pending   string
	mouseDown bool
}

// NewApp mounts the first scene sized to the screen
func NewApp(scr tcell.Screen, opts Options) *App {
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	if opts.Theme == nil {
		opts.Theme = theme.NewProvider(theme.Light)
	}
	if opts.Library == nil {
		opts.Library = content.MustLoad()
	}
	if opts.Supplier == nil {
		opts.Supplier = sprite.NewBuiltin()
	}
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}

	a := &App{
		screen: scr,
		opts:   opts,
		life:   engine.NewLifecycle(),
		hold:   input.NewHoldTracker(),
	}
	a.nav = navigation.NewService(func(dest string) { a.pending = dest })
	a.mount()
	return a
}

// Scene returns the mounted scene, nil while a page is shown
func (a *App) Scene() *engine.Scene { return a.life.Current() }

// Viewer returns the open page viewer, or nil
func (a *App) Viewer() *Viewer { return a.viewer }

// Navigation exposes the dispatch history
func (a *App) Navigation() *navigation.Service { return a.nav }

// Stats returns the frame and navigation counters
func (a *App) Stats() *status.Registry { return a.opts.Stats }

func (a *App) mount() {
	w, h := WorldSize(a.screen.Size())
	a.life.Init(engine.Config{
		Width:     w,
		Height:    h,
		Supplier:  a.opts.Supplier,
		Navigator: a.nav,
		Theme:     a.opts.Theme,
		Sounds:    a.opts.Sounds,
		Seed:      a.opts.Seed,
	})
	a.hold.Reset()
	a.mouseDown = false
	a.timer = engine.NewFrameTimer(a.opts.Clock)
}

func (a *App) openPage(dest string) {
	page, err := a.opts.Library.Page(dest)
	if err != nil {
		log.Printf("terminal: %v", err)
		return
	}
	a.life.Teardown()
	cols, _ := a.screen.Size()
	a.viewer = NewViewer(page, cols)
	a.opts.Stats.Counter("pages opened").Add(1)
	a.opts.Stats.Label("page").Store(page.ID)
}

func (a *App) closePage() {
	a.viewer = nil
	a.mount()
}

// Step advances one frame and redraws
func (a *App) Step() {
	if scene := a.life.Current(); scene != nil && a.viewer == nil {
		keys := a.hold.Sample(a.opts.Clock.Now())
		scene.Update(keys, a.timer.Tick())
		a.opts.Stats.Counter("frames").Add(1)
		a.opts.Stats.Label("phase").Store(scene.Phase().String())
	}
	if dest := a.pending; dest != "" {
		a.pending = ""
		a.openPage(dest)
	}
	a.draw()
}

func (a *App) draw() {
	if a.viewer != nil {
		a.viewer.Draw(a.screen)
	} else if scene := a.life.Current(); scene != nil {
		f := scene.Frame()
		Rasterize(a.screen, &f)
	}
	a.screen.Show()
}

// HandleEvent applies one tcell event and reports whether the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a.viewer != nil {
			return a.viewerKey(ev)
		}
		return a.gameKey(ev)
	case *tcell.EventMouse:
		a.mouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		cols, rows := a.screen.Size()
		if a.viewer != nil {
			a.viewer.SetWidth(cols)
		}
		if scene := a.life.Current(); scene != nil {
			scene.Resize(WorldSize(cols, rows))
		}
	}
	return false
}

// movementKey maps arrows and their letter aliases to held keys
func movementKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyUp:
		return input.KeyJump, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return input.KeyLeft, true
		case 'd', 'l':
			return input.KeyRight, true
		case ' ', 'w', 'k':
			return input.KeyJump, true
		}
	}
	return 0, false
}

func (a *App) gameKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if k, ok := movementKey(ev); ok {
		a.hold.Press(k, a.opts.Clock.Now())
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return true
	case r == 't':
		a.opts.Theme.Toggle()
	case r >= '1' && int(r-'1') < len(core.PortalOrder):
		if scene := a.life.Current(); scene != nil {
			scene.Select(core.PortalOrder[r-'1'])
		}
	}
	return false
}

func (a *App) viewerKey(ev *tcell.EventKey) bool {
	_, rows := a.screen.Size()
	page := max(rows-2, 1)

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		a.closePage()
	case tcell.KeyUp:
		a.viewer.Scroll(-1)
	case tcell.KeyDown:
		a.viewer.Scroll(1)
	case tcell.KeyPgUp:
		a.viewer.Scroll(-page)
	case tcell.KeyPgDn:
		a.viewer.Scroll(page)
	case tcell.KeyHome:
		a.viewer.Scroll(-a.viewer.Offset())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			a.viewer.Scroll(-1)
		case 'j':
			a.viewer.Scroll(1)
		case 't':
			a.opts.Theme.Toggle()
		}
	}
	return false
}

// mouse clicks on press only; tcell repeats the button mask on every motion event
func (a *App) mouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	if a.viewer != nil {
		switch {
		case buttons&tcell.WheelUp != 0:
			a.viewer.Scroll(-1)
		case buttons&tcell.WheelDown != 0:
			a.viewer.Scroll(1)
		}
		return
	}

	down := buttons&tcell.Button1 != 0
	if down && !a.mouseDown {
		if scene := a.life.Current(); scene != nil {
			scene.Click(CellToWorld(ev.Position()))
		}
	}
	a.mouseDown = down
}

// Close tears down the scene
func (a *App) Close() {
	a.life.Teardown()
}

// Run pumps events and frames until quit or ctx is done
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	a.Step()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Step()
		}
	}
}
