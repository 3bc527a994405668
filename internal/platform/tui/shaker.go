package tui

import (
	"math"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// maxShake is the horizontal jitter, in columns, at full rumble.
const maxShake = 4

// Shaker stands in for a rumble motor: while a game rumbles, the rendered
// frame jitters sideways.
type Shaker struct {
	intensity float64
	frame     int
}

var _ core.Rumbler = (*Shaker)(nil)

// SetRumble implements core.Rumbler. Intensity is clamped to [0, 1].
func (s *Shaker) SetRumble(intensity float64) {
	s.intensity = core.ClampF(intensity, 0, 1)
	if s.intensity == 0 {
		s.frame = 0
	}
}

// Intensity reports the current rumble level.
func (s *Shaker) Intensity() float64 {
	return s.intensity
}

// Offset returns the column shift for the next frame, alternating sides.
func (s *Shaker) Offset() int {
	if s.intensity <= 0 {
		return 0
	}
	s.frame++
	amp := max(1, int(math.Round(s.intensity*maxShake)))
	if s.frame%2 == 0 {
		return -amp
	}
	return amp
}
