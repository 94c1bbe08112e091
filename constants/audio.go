package constants

import "time"

// Reset Chime
const (
	ChimeSampleRate = 48000
	ChimeDuration   = 250 * time.Millisecond
	ChimeFrequency  = 660.0
	ChimeOvertone   = 990.0

	// ChimeDecayRate is the exponential envelope decay per second
	ChimeDecayRate = 14.0

	// ChimeVolume is the beep effects volume exponent (base 2), negative is quieter
	ChimeVolume = -2.0

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)
