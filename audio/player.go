package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/portfolio-quest/core"
	"github.com/lixenwraith/portfolio-quest/parameter"
)

// Player plays one-shot effects through a single speaker mixer.
// Every method is safe before Init and after Close; playback is then a no-op.
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	played      map[core.Sound]int
}

// NewPlayer creates a player; a nil cfg uses DefaultConfig
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		played: make(map[core.Sound]int),
	}
}

// Init opens the speaker; a disabled config skips it
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("audio: speaker ready at %d Hz", p.cfg.SampleRate)
	return nil
}

// Play queues the effect for s
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[s]++
	if !p.initialized {
		return
	}
	streamer := Effect(s, p.cfg)
	if streamer == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Played reports how many times s was requested, including while silent
func (p *Player) Played(s core.Sound) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[s]
}

// Close drains the mixer and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	// let the device flush its buffer before closing
	time.Sleep(parameter.AudioBufferDuration)
	speaker.Close()
	p.initialized = false
}
