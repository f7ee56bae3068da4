// Command portfolio plays the portfolio platformer in the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-quest/audio"
	"github.com/lixenwraith/portfolio-quest/config"
	"github.com/lixenwraith/portfolio-quest/content"
	"github.com/lixenwraith/portfolio-quest/engine"
	"github.com/lixenwraith/portfolio-quest/sprite"
	"github.com/lixenwraith/portfolio-quest/status"
	"github.com/lixenwraith/portfolio-quest/terminal"
	"github.com/lixenwraith/portfolio-quest/theme"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	library, err := content.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "content: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	terminal.SetCrashScreen(screen)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// audio is optional; the game runs silent when the device is unavailable
	audioCfg := audio.DefaultConfig().WithVolume(cfg.Volume)
	audioCfg.Enabled = cfg.Audio
	player := audio.NewPlayer(audioCfg)
	if err := player.Init(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Close()

	stats := status.NewRegistry()
	app := terminal.NewApp(screen, terminal.Options{
		Supplier: sprite.NewBuiltin(),
		Theme:    theme.NewProvider(cfg.Theme),
		Sounds:   player,
		Library:  library,
		Clock:    engine.NewTimeProvider(),
		Stats:    stats,
	})
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("run: %v", err)
	}
	snap := stats.Snapshot()
	log.Printf("=== portfolio exited: %d frames, %d pages opened ===", snap.Counters["frames"], snap.Counters["pages opened"])
}
