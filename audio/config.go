package audio

import (
	"github.com/lixenwraith/wordchips/core"
)

// DefaultSampleRate is the speaker rate used for generated tones
const DefaultSampleRate = 44100

// Config holds playback settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	// EffectVolumes scales individual sounds; missing entries play at 1.0
	EffectVolumes map[core.SoundType]float64
}

// DefaultConfig returns enabled playback at half volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   DefaultSampleRate,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundCorrect: 1.0,
			core.SoundMistake: 0.8,
			core.SoundPick:    0.4,
			core.SoundDrop:    0.4,
		},
	}
}

func (c *Config) effectVolume(st core.SoundType) float64 {
	if v, ok := c.EffectVolumes[st]; ok {
		return v
	}
	return 1.0
}
