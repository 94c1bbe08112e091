package engine

// ScriptedCoin replays a fixed sequence of flips, then returns Default forever
type ScriptedCoin struct {
	Flips   []bool
	Default bool

	// Calls counts every Flip, including those past the script
	Calls int
}

// NewScriptedCoin creates a coin that replays flips, then lands false
func NewScriptedCoin(flips ...bool) *ScriptedCoin {
	return &ScriptedCoin{Flips: flips}
}

// Flip returns the next scripted outcome
func (c *ScriptedCoin) Flip() bool {
	c.Calls++
	if len(c.Flips) == 0 {
		return c.Default
	}
	f := c.Flips[0]
	c.Flips = c.Flips[1:]
	return f
}

// ConstantCoin always lands the same way
type ConstantCoin bool

// Flip returns the constant outcome
func (c ConstantCoin) Flip() bool {
	return bool(c)
}
