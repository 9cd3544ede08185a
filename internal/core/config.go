package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the surface size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in cells (characters or pixels)
	ScreenH  int   // Surface height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// CellRatio is the height/width ratio of one cell.
	// Terminal characters are roughly twice as tall as wide; pixels are square.
	// Zero means TerminalCellRatio.
	CellRatio float64
}

// TerminalCellRatio is the typical height/width ratio of a terminal character.
const TerminalCellRatio = 2.0

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
		CellRatio: TerminalCellRatio,
	}
}

// Aspect returns the width/height ratio of the surface in physical units.
// This is the aspect a perspective projection must use so that circles stay round.
func (c RuntimeConfig) Aspect() float64 {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return 1
	}
	ratio := c.CellRatio
	if ratio <= 0 {
		ratio = TerminalCellRatio
	}
	return float64(c.ScreenW) / (float64(c.ScreenH) * ratio)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Started  bool // Whether a run has been started
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Hits  int // Pointer hits resolved this tick
}

// RunStats summarizes one run for the leaderboard.
type RunStats struct {
	Score         int
	Launched      int // objects spawned
	Cut           int // objects hit and split
	Missed        int // ordinary objects that expired uncut
	HazardsDodged int // hazards that expired untouched
	Duration      time.Duration
}
