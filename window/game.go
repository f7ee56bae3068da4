// Package window is the ebiten frontend: it draws composed frames with real pixels
// and samples the keyboard and mouse once per tick.
package window

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/portfolio-quest/asset"
	"github.com/lixenwraith/portfolio-quest/content"
	"github.com/lixenwraith/portfolio-quest/core"
	"github.com/lixenwraith/portfolio-quest/engine"
	"github.com/lixenwraith/portfolio-quest/input"
	"github.com/lixenwraith/portfolio-quest/navigation"
	"github.com/lixenwraith/portfolio-quest/render"
	"github.com/lixenwraith/portfolio-quest/sprite"
	"github.com/lixenwraith/portfolio-quest/theme"
)

// debug font metrics of ebitenutil.DebugPrint
const (
	glyphW = 6
	lineH  = 16
)

var (
	pageBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	digitKeys      = [...]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}
)

// Options are the collaborators of a Game; nil fields get defaults
type Options struct {
	Width, Height int
	Supplier      asset.Supplier
	Theme         *theme.Provider
	Sounds        engine.SoundPlayer
	Library       *content.Library
	Seed          uint64
}

// Game adapts the scene lifecycle to ebiten.Game
type Game struct {
	opts   Options
	life   *engine.Lifecycle
	nav    *navigation.Service
	timer  *engine.FrameTimer
	images map[*asset.Bitmap]*ebiten.Image

	width, height int

	page    *content.Page
	lines   []string
	scroll  int
	pending string
	quit    bool
}

// NewGame mounts the first scene
func NewGame(opts Options) *Game {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 800
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

	g := &Game{
		opts:   opts,
		life:   engine.NewLifecycle(),
		images: make(map[*asset.Bitmap]*ebiten.Image),
		width:  opts.Width,
		height: opts.Height,
	}
	g.nav = navigation.NewService(func(dest string) { g.pending = dest })
	g.mount()
	return g
}

// Run opens the window and blocks until it is closed
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Portfolio Quest")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	defer g.life.Teardown()
	return ebiten.RunGame(g)
}

func (g *Game) mount() {
	g.life.Init(engine.Config{
		Width:     float64(g.width),
		Height:    float64(g.height),
		Supplier:  g.opts.Supplier,
		Navigator: g.nav,
		Theme:     g.opts.Theme,
		Sounds:    g.opts.Sounds,
		Seed:      g.opts.Seed,
	})
	g.timer = engine.NewFrameTimer(engine.NewTimeProvider())
}

// Update samples input and advances the scene by one tick
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.opts.Theme.Toggle()
	}

	if g.page != nil {
		g.updatePage()
		return nil
	}

	scene := g.life.Current()
	if scene == nil {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.quit = true
		return nil
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) && i < len(core.PortalOrder) {
			scene.Select(core.PortalOrder[i])
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		scene.Click(float64(x), float64(y))
	}

	scene.Update(sampleKeys(), g.timer.Tick())

	if dest := g.pending; dest != "" {
		g.pending = ""
		g.openPage(dest)
	}
	return nil
}

func sampleKeys() input.Keys {
	return input.Keys{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump: ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) ||
			ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (g *Game) openPage(dest string) {
	page, err := g.opts.Library.Page(dest)
	if err != nil {
		log.Printf("window: %v", err)
		return
	}
	g.life.Teardown()
	g.page = &page
	g.scroll = 0
	g.wrapPage()
}

func (g *Game) wrapPage() {
	if g.page != nil {
		g.lines = g.page.Lines(max(g.width/glyphW-4, 1))
	}
}

func (g *Game) updatePage() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.page, g.lines = nil, nil
		g.mount()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.scroll++
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.scroll--
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scroll -= int(dy)
	}
	g.scroll = min(max(g.scroll, 0), max(len(g.lines)-1, 0))
}

// Draw renders the page or the scene frame
func (g *Game) Draw(screen *ebiten.Image) {
	if g.page != nil {
		screen.Fill(pageBackground)
		y := lineH / 2
		for _, line := range g.lines[g.scroll:] {
			if y > g.height-2*lineH {
				break
			}
			ebitenutil.DebugPrintAt(screen, line, 2*glyphW, y)
			y += lineH
		}
		ebitenutil.DebugPrintAt(screen, "Esc: back   Up/Down: scroll", 2*glyphW, g.height-lineH-4)
		return
	}

	scene := g.life.Current()
	if scene == nil {
		return
	}
	f := scene.Frame()
	for i := range f.Ops {
		g.drawOp(screen, &f.Ops[i])
	}
}

func (g *Game) drawOp(screen *ebiten.Image, op *render.Op) {
	switch op.Kind {
	case render.KindRect:
		c := color.NRGBA{R: op.Color.R, G: op.Color.G, B: op.Color.B, A: uint8(float64(op.Color.A) * op.Alpha)}
		vector.DrawFilledRect(screen, float32(op.X), float32(op.Y), float32(op.W), float32(op.H), c, false)
	case render.KindSprite:
		img := g.image(op.Sprite)
		if img == nil {
			return
		}
		b := img.Bounds()
		opts := &ebiten.DrawImageOptions{}
		sx, sy := op.W/float64(b.Dx()), op.H/float64(b.Dy())
		if op.FlipX {
			opts.GeoM.Scale(-sx, sy)
			opts.GeoM.Translate(op.X+op.W, op.Y)
		} else {
			opts.GeoM.Scale(sx, sy)
			opts.GeoM.Translate(op.X, op.Y)
		}
		opts.ColorScale.ScaleAlpha(float32(op.Alpha))
		screen.DrawImage(img, opts)
	case render.KindText:
		ebitenutil.DebugPrintAt(screen, op.Text, int(op.X)-len(op.Text)*glyphW/2, int(op.Y))
	}
}

// image uploads a sprite bitmap once and reuses the texture
func (g *Game) image(d *asset.Drawable) *ebiten.Image {
	if d == nil || d.Art == nil || d.Art.W == 0 || d.Art.H == 0 {
		return nil
	}
	if img, ok := g.images[d.Art]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(d.Art.Image())
	g.images[d.Art] = img
	return img
}

// Layout uses the window size as the world size and relays resizes to the scene
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if scene := g.life.Current(); scene != nil {
			scene.Resize(float64(g.width), float64(g.height))
		}
		g.wrapPage()
	}
	return g.width, g.height
}
