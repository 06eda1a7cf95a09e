// Package audio plays short feedback tones through the system speaker.
// When no device is available the player switches to silent mode and every
// Play call becomes a no-op.
package audio

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/event"
)

// Backend is the output device
type Backend interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Close()
}

// SpeakerBackend plays through the beep speaker
type SpeakerBackend struct{}

func (SpeakerBackend) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (SpeakerBackend) Play(s beep.Streamer) { speaker.Play(s) }

func (SpeakerBackend) Close() { speaker.Close() }

// Player plays feedback sounds; safe for concurrent use
type Player struct {
	backend Backend
	logger  *slog.Logger

	mu     sync.RWMutex // Protects config
	config *Config

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
	played     atomic.Uint64
}

// NewPlayer creates a stopped player; nil backend uses the speaker
func NewPlayer(cfg *Config, backend Backend, logger *slog.Logger) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if backend == nil {
		backend = SpeakerBackend{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Player{
		backend: backend,
		logger:  logger,
		config:  cfg,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start initializes the backend; failure switches to silent mode and is not an error
func (p *Player) Start() {
	if p.running.Load() {
		return
	}

	p.mu.RLock()
	sr := beep.SampleRate(p.config.SampleRate)
	p.mu.RUnlock()

	if err := p.backend.Init(sr, sr.N(time.Second/10)); err != nil {
		p.logger.Warn("audio unavailable, running silent", "error", err)
		p.silentMode.Store(true)
	}
	p.running.Store(true)
}

// Stop releases the backend
func (p *Player) Stop() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	if !p.silentMode.Load() {
		p.backend.Close()
	}
}

// Play queues a sound; returns false when not audible
func (p *Player) Play(st core.SoundType) bool {
	if !p.running.Load() || p.muted.Load() || p.silentMode.Load() {
		return false
	}

	p.mu.RLock()
	sr := beep.SampleRate(p.config.SampleRate)
	gain := p.config.MasterVolume * p.config.effectVolume(st)
	p.mu.RUnlock()

	s, err := Tone(sr, st, gain)
	if err != nil {
		p.logger.Debug("tone unavailable", "sound", st.String(), "error", err)
		return false
	}
	p.backend.Play(s)
	p.played.Add(1)
	return true
}

// HandleEvent plays sound request events; returns false for other events
func (p *Player) HandleEvent(ev event.Event) bool {
	if ev.Type != event.EventSoundRequest {
		return false
	}
	req, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok || req == nil {
		return false
	}
	return p.Play(req.SoundType)
}

// ToggleMute toggles mute state, returns true if now enabled
func (p *Player) ToggleMute() bool {
	newMute := !p.muted.Load()
	p.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsSilent reports whether no output device is available
func (p *Player) IsSilent() bool {
	return p.silentMode.Load()
}

// SetVolume updates master volume (0.0-1.0)
func (p *Player) SetVolume(vol float64) {
	vol = min(max(vol, 0), 1)
	p.mu.Lock()
	p.config.MasterVolume = vol
	p.mu.Unlock()
}

// Played returns the number of sounds sent to the backend
func (p *Player) Played() uint64 {
	return p.played.Load()
}
