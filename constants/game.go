package constants

// Simulation defaults, overridable from the command line
const (
	// DefaultPipeCount is the number of pipes simulated when -p is not given
	DefaultPipeCount = 4

	// DefaultUpdateSpeedMs is the tick interval in milliseconds
	DefaultUpdateSpeedMs = 10

	// DefaultResetCycles is the cycle count after which the simulation restarts
	DefaultResetCycles = 1000
)

// Turn policy: a turn is attempted only when TurnFlips fair coins all land true
const TurnFlips = 3
