// Package audio synthesizes and plays the game's sound effects and music.
// All sounds are generated at runtime; there are no sample files.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/fruit-gravity/internal/games/fruit/sim"
)

// DefaultSampleRate is the output rate when Config leaves it unset.
const DefaultSampleRate = beep.SampleRate(44100)

// Config holds mixing levels in [0, 1].
type Config struct {
	SampleRate  int
	SFXVolume   float64
	MusicVolume float64
	Muted       bool
}

// DefaultConfig returns full effects and quieter music.
func DefaultConfig() Config {
	return Config{
		SampleRate:  int(DefaultSampleRate),
		SFXVolume:   0.8,
		MusicVolume: 0.5,
	}
}

// Player mixes one-shot effects with a pausable music track.
// A Player that was never initialized accepts every call and stays silent.
type Player struct {
	mu       sync.Mutex
	cfg      Config
	rate     beep.SampleRate
	mixer    *beep.Mixer
	music    *beep.Ctrl
	musicVol *effects.Volume
	seed     int64

	ready  bool // sounds are mixed
	output bool // the speaker consumes the mixer
}

// NewPlayer creates a player. Call Init to open the audio device.
func NewPlayer(cfg Config) *Player {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	cfg.SampleRate = int(rate)
	return &Player{
		cfg:   cfg,
		rate:  rate,
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts streaming the mixer.
// Calling Init again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.output = true
	return nil
}

// Ready reports whether sounds are being mixed.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// locked runs fn while the speaker is not reading the mixer.
func (p *Player) locked(fn func()) {
	if p.output {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// Play starts a sound. Music keeps playing if it already is.
func (p *Player) Play(s sim.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	p.seed++
	switch s {
	case sim.SoundCut:
		if !p.cfg.Muted {
			snd := CutSound(p.rate, p.cfg.SFXVolume, p.seed)
			p.locked(func() { p.mixer.Add(snd) })
		}
	case sim.SoundExplosion:
		if !p.cfg.Muted {
			snd := ExplosionSound(p.rate, p.cfg.SFXVolume, p.seed)
			p.locked(func() { p.mixer.Add(snd) })
		}
	case sim.SoundMusic:
		if p.music != nil && !p.music.Paused {
			return
		}
		p.musicVol = newVolume(NewMusic(p.rate), p.musicGain())
		p.music = &beep.Ctrl{Streamer: p.musicVol}
		p.locked(func() { p.mixer.Add(p.music) })
	}
}

// Stop stops the music. One-shot effects always play to the end.
func (p *Player) Stop(s sim.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s != sim.SoundMusic || p.music == nil {
		return
	}
	p.locked(func() {
		p.music.Paused = true
		// A nil streamer drains the Ctrl so the mixer drops it.
		p.music.Streamer = nil
	})
	p.music = nil
	p.musicVol = nil
}

// MusicPlaying reports whether the music track is active.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil && !p.music.Paused
}

// SetConfig applies new levels. The running music track follows immediately;
// effects pick them up on their next start.
func (p *Player) SetConfig(cfg Config) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cfg.SampleRate = p.cfg.SampleRate
	p.cfg = cfg
	if p.musicVol != nil {
		gain := p.musicGain()
		p.locked(func() { setGain(p.musicVol, gain) })
	}
}

func (p *Player) musicGain() float64 {
	if p.cfg.Muted {
		return 0
	}
	return p.cfg.MusicVolume
}

// Close stops every sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.locked(func() {
		if p.music != nil {
			p.music.Paused = true
		}
		p.mixer.Clear()
	})
	p.music = nil
	p.musicVol = nil
	p.ready = false
}
