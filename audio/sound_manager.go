package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/PugPostsCode/pug-pipes/constants"
)

const (
	sampleRate = beep.SampleRate(constants.ChimeSampleRate)
)

// SoundManager plays the optional reset chime. Every method is safe to call
// before Initialize or after Cleanup; they do nothing in that state
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Fails without an audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBuffer))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all pending sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker shutdown that allows a later Init; clearing the
	// mixer is enough to stop output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayReset queues the short two-tone chime marking a simulation reset
func (sm *SoundManager) PlayReset() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newChime())
	speaker.Unlock()
}

// newChime builds the finite, volume-scaled chime streamer
func newChime() beep.Streamer {
	tone := beep.Take(sampleRate.N(constants.ChimeDuration), NewChimeGenerator(sampleRate))
	return &effects.Volume{Streamer: tone, Base: 2, Volume: constants.ChimeVolume}
}

// ChimeGenerator generates a decaying fundamental plus fifth
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates a chime sound generator
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * constants.ChimeDecayRate)
		sample := 0.3 * math.Sin(2*math.Pi*constants.ChimeFrequency*t)
		sample += 0.12 * math.Sin(2*math.Pi*constants.ChimeOvertone*t)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
