package parameter

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the master volume in [0, 1]
	DefaultVolume = 0.6
)

// Sound effect shapes
const (
	SoundAttack  = 5 * time.Millisecond
	SoundRelease = 30 * time.Millisecond

	JumpSoundDuration = 120 * time.Millisecond
	BumpSoundDuration = 90 * time.Millisecond

	CoinSoundNote1Duration = 70 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
)
