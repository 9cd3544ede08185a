package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a finite wave whose frequency slides linearly from
// freq to freqEnd over its duration.
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate, 1)
}

// NewSweep creates an oscillator gliding from freq to freqEnd.
// seed drives the noise wave so renders are reproducible.
func NewSweep(freq, freqEnd float64, duration time.Duration, wave WaveType, rate beep.SampleRate, seed int64) beep.Streamer {
	return &oscillator{
		freq:     freq,
		freqEnd:  freqEnd,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(seed)), //#nosec G404 -- audio noise
	}
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release ramp ending at duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = max(total-att, 0)
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.totalSamples - e.releaseSamples; e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, vol)
	return v
}

func setGain(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume, v.Silent = 0, true
		return
	}
	v.Volume, v.Silent = math.Log2(vol), false
}

// Durations of the one-shot effects.
const (
	CutDuration       = 140 * time.Millisecond
	ExplosionDuration = 700 * time.Millisecond
)

// CutSound is a short rising swish: filtered noise over a saw glide.
func CutSound(rate beep.SampleRate, vol float64, seed int64) beep.Streamer {
	noise := NewEnvelope(NewSweep(0, 0, CutDuration, WaveNoise, rate, seed),
		CutDuration, 5*time.Millisecond, 100*time.Millisecond, rate)
	glide := NewEnvelope(NewSweep(300, 1200, CutDuration, WaveSaw, rate, seed),
		CutDuration, 5*time.Millisecond, 120*time.Millisecond, rate)

	return newVolume(beep.Mix(
		newVolume(noise, 0.35),
		newVolume(glide, 0.25),
	), vol)
}

// ExplosionSound is a long noise burst over a falling square rumble.
func ExplosionSound(rate beep.SampleRate, vol float64, seed int64) beep.Streamer {
	noise := NewEnvelope(NewSweep(0, 0, ExplosionDuration, WaveNoise, rate, seed),
		ExplosionDuration, 2*time.Millisecond, 650*time.Millisecond, rate)
	rumble := NewEnvelope(NewSweep(90, 30, ExplosionDuration, WaveSquare, rate, seed),
		ExplosionDuration, 2*time.Millisecond, 600*time.Millisecond, rate)

	return newVolume(beep.Mix(
		newVolume(noise, 0.5),
		newVolume(rumble, 0.3),
	), vol)
}

// musicNotes is the background arpeggio in Hz (A minor).
var musicNotes = []float64{220.00, 261.63, 329.63, 440.00, 329.63, 261.63, 196.00, 246.94}

const musicNoteLength = 220 * time.Millisecond

// music is an endless arpeggio. Each note is a sine with a soft square
// overtone and a fast attack, exponentially decaying.
type music struct {
	rate     beep.SampleRate
	noteLen  int
	position int
	phase    float64
}

// NewMusic creates the looping background track.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	return &music{rate: rate, noteLen: rate.N(musicNoteLength)}
}

func (m *music) Stream(samples [][2]float64) (n int, ok bool) {
	attack := m.rate.N(8 * time.Millisecond)
	for i := range samples {
		note := (m.position / m.noteLen) % len(musicNotes)
		inNote := m.position % m.noteLen
		freq := musicNotes[note]

		env := math.Exp(-3 * float64(inNote) / float64(m.noteLen))
		if inNote < attack {
			env *= float64(inNote) / float64(attack)
		}

		square := 1.0
		if m.phase >= 0.5 {
			square = -1.0
		}
		val := env * (0.25*math.Sin(2*math.Pi*m.phase) + 0.05*square)

		samples[i][0] = val
		samples[i][1] = val

		m.phase += freq / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.position++
	}
	return len(samples), true
}

func (m *music) Err() error { return nil }
