package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/wordchips/core"
)

// note is a sine tone of fixed length; Freq 0 is a rest
type note struct {
	Freq     float64
	Duration time.Duration
}

// recipes lists the notes of each feedback sound
var recipes = map[core.SoundType][]note{
	core.SoundCorrect: {{660, 80 * time.Millisecond}, {880, 120 * time.Millisecond}},
	core.SoundMistake: {{220, 90 * time.Millisecond}, {0, 30 * time.Millisecond}, {196, 140 * time.Millisecond}},
	core.SoundPick:    {{880, 30 * time.Millisecond}},
	core.SoundDrop:    {{587, 40 * time.Millisecond}},
}

// Tone builds the streamer for a sound scaled by gain (0.0-1.0)
func Tone(sr beep.SampleRate, st core.SoundType, gain float64) (beep.Streamer, error) {
	notes, ok := recipes[st]
	if !ok {
		return nil, fmt.Errorf("no tone for sound %s", st)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sr.N(n.Duration)
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		sine, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %s: %w", st, err)
		}
		parts = append(parts, beep.Take(samples, sine))
	}

	// effects.Gain multiplies samples by 1+Gain
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: gain - 1}, nil
}

// ToneLength returns the number of samples a sound plays for
func ToneLength(sr beep.SampleRate, st core.SoundType) int {
	n := 0
	for _, nt := range recipes[st] {
		n += sr.N(nt.Duration)
	}
	return n
}
