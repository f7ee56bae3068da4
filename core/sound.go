package core

// Sound identifies a one-shot sound effect
type Sound uint8

const (
	SoundJump Sound = iota
	SoundBump
	SoundCoin
)

func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundBump:
		return "bump"
	case SoundCoin:
		return "coin"
	}
	return "unknown"
}
