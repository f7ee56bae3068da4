package audio

import (
	"github.com/lixenwraith/portfolio-quest/core"
	"github.com/lixenwraith/portfolio-quest/parameter"
)

// Config holds audio settings
type Config struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[core.Sound]float64
}

// DefaultConfig returns enabled audio at the default volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: parameter.DefaultVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[core.Sound]float64{
			core.SoundJump: 0.5,
			core.SoundBump: 0.8,
			core.SoundCoin: 0.6,
		},
	}
}

// WithVolume returns a copy with the master volume set from a 0-100 percentage, clamped
func (c *Config) WithVolume(percent int) *Config {
	out := *c
	out.MasterVolume = min(max(float64(percent)/100, 0), 1)
	return &out
}

func (c *Config) volume(s core.Sound) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
