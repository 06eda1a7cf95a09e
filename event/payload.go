package event

import (
	"github.com/lixenwraith/wordchips/core"
)

// MeasuredPayload carries a measurement; Fragment is ignored for container events
type MeasuredPayload struct {
	Fragment int
	Bounds   core.Bounds
}

// SoundRequestPayload contains the sound type to play
type SoundRequestPayload struct {
	SoundType core.SoundType
}

// VerdictPayload carries the assembled response and whether it was accepted
type VerdictPayload struct {
	Response string
	Correct  bool
}
