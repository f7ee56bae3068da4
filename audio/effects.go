package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/portfolio-quest/core"
	"github.com/lixenwraith/portfolio-quest/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a finite tone whose frequency slides linearly from start to end
type oscillator struct {
	start, end float64
	phase      float64
	duration   int
	position   int
	wave       WaveType
	rate       beep.SampleRate
}

// NewSweep creates a tone sliding from one frequency to another over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		start:    from,
		end:      to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// NewOscillator creates a fixed-frequency tone
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.start + (o.end-o.start)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream of known length
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// JumpSound is a short rising square blip
func JumpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.JumpSoundDuration

	osc := NewSweep(330, 880, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, parameter.SoundAttack, parameter.SoundRelease, rate)
	return newVolume(shaped, 0.4*cfg.volume(core.SoundJump))
}

// BumpSound is a low thud with a falling triangle body
func BumpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.BumpSoundDuration

	body := NewSweep(180, 90, d, WaveTriangle, rate)
	shaped := NewEnvelope(body, d, parameter.SoundAttack, d/2, rate)
	return newVolume(shaped, cfg.volume(core.SoundBump))
}

// CoinSound is the two-note B5 then E6 chime
func CoinSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d1, d2 := parameter.CoinSoundNote1Duration, parameter.CoinSoundNote2Duration

	n1 := NewEnvelope(NewOscillator(987.77, d1, WaveSquare, rate), d1, parameter.SoundAttack, parameter.SoundRelease, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, d2, WaveSquare, rate), d2, parameter.SoundAttack, d2/2, rate)

	var second beep.Streamer = n2
	if shimmer, err := generators.SineTone(rate, 2637.02); err == nil {
		overtone := NewEnvelope(beep.Take(rate.N(d2), shimmer), d2, parameter.SoundAttack, d2/2, rate)
		second = beep.Mix(newVolume(n2, 0.8), newVolume(overtone, 0.2))
	}

	return newVolume(beep.Seq(n1, second), 0.3*cfg.volume(core.SoundCoin))
}

// Effect returns the streamer for s, or nil for an unknown sound
func Effect(s core.Sound, cfg *Config) beep.Streamer {
	switch s {
	case core.SoundJump:
		return JumpSound(cfg)
	case core.SoundBump:
		return BumpSound(cfg)
	case core.SoundCoin:
		return CoinSound(cfg)
	}
	return nil
}
