// Command portfolio-window plays the portfolio platformer in a desktop window
package main

import (
	"flag"
	"log"

	"github.com/lixenwraith/portfolio-quest/audio"
	"github.com/lixenwraith/portfolio-quest/config"
	"github.com/lixenwraith/portfolio-quest/content"
	"github.com/lixenwraith/portfolio-quest/sprite"
	"github.com/lixenwraith/portfolio-quest/theme"
	"github.com/lixenwraith/portfolio-quest/window"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 800, "window height")
	flag.Parse()

	library, err := content.Load()
	if err != nil {
		log.Fatalf("content: %v", err)
	}

	audioCfg := audio.DefaultConfig().WithVolume(cfg.Volume)
	audioCfg.Enabled = cfg.Audio
	player := audio.NewPlayer(audioCfg)
	if err := player.Init(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Close()

	game := window.NewGame(window.Options{
		Width:    *width,
		Height:   *height,
		Supplier: sprite.NewBuiltin(),
		Theme:    theme.NewProvider(cfg.Theme),
		Sounds:   player,
		Library:  library,
	})
	if err := game.Run(); err != nil {
		log.Fatalf("window: %v", err)
	}
}
