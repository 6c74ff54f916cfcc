package core

import "time"

// DefaultTickRate is used when RuntimeConfig.TickRate is unset.
const DefaultTickRate = 60

// RuntimeConfig describes the host a game runs in: screen size, frame rate and seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 asks for a time-based seed
}

// Normalize fills unset fields: the default tick rate and a time-based seed.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// EffectiveTickRate returns TickRate, or DefaultTickRate when unset.
func (c RuntimeConfig) EffectiveTickRate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// TickInterval is the virtual time covered by one Step.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.EffectiveTickRate())
}
