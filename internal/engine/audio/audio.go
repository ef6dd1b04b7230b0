// Package audio plays the tap chime. All sound is synthesized, no
// asset files are shipped.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// chimeNotes is a rising major arpeggio (C5, E5, G5, C6), one note
// every noteGap with each note decaying over noteDecay.
var chimeNotes = []float64{523.25, 659.25, 783.99, 1046.50}

const (
	noteGap   = 90 * time.Millisecond
	noteDecay = 600 * time.Millisecond
)

// Manager owns the speaker and mixes chimes into it.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings
	masterVolume float64
	muted        bool

	mixer *beep.Mixer
}

// New creates an audio manager. Call Init before playing anything.
func New() *Manager {
	return &Manager{
		masterVolume: 1.0,
		mixer:        &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer. Safe to call twice.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Clear()
	m.initialized = false
}

// IsInitialized reports whether Init has succeeded.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetMuted mutes or unmutes all playback.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports whether playback is muted.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// Chime plays the tap chime once. Concurrent chimes mix together.
func (m *Manager) Chime() error {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.masterVolume
	muted := m.muted
	m.mu.RUnlock()

	if !initialized {
		return fmt.Errorf("audio not initialized")
	}
	if muted || vol <= 0 {
		return nil
	}

	streamer := newChimeStreamer(m.sampleRate)
	shaped := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volumeToDb(vol),
	}

	speaker.Lock()
	m.mixer.Add(shaped)
	speaker.Unlock()
	return nil
}

// volumeToDb converts a 0-1 volume to the decibel scale effects.Volume
// expects: vol=1 -> 0dB, vol=0.5 -> -6dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// chimeStreamer synthesizes the arpeggio sample by sample. It reports
// done once the last note has fully decayed, so the mixer drops it.
type chimeStreamer struct {
	sampleRate beep.SampleRate
	pos        int
	total      int
}

func newChimeStreamer(sr beep.SampleRate) *chimeStreamer {
	last := time.Duration(len(chimeNotes)-1) * noteGap
	return &chimeStreamer{
		sampleRate: sr,
		total:      sr.N(last + noteDecay),
	}
}

func (c *chimeStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.total {
			return i, true
		}
		t := float64(c.pos) / float64(c.sampleRate)
		var v float64
		for ni, freq := range chimeNotes {
			onset := float64(ni) * noteGap.Seconds()
			if t < onset {
				break
			}
			age := t - onset
			if age >= noteDecay.Seconds() {
				continue
			}
			env := math.Exp(-6 * age / noteDecay.Seconds())
			v += 0.22 * env * math.Sin(2*math.Pi*freq*age)
		}
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *chimeStreamer) Err() error {
	return nil
}
