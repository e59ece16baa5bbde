package quiz

import (
	"errors"
	"fmt"
)

// Mode selects which operators a session draws from.
type Mode string

const (
	ModeSum Mode = "sum"
	ModeSub Mode = "sub"
	ModeMix Mode = "mix"
)

// Modes lists the modes in menu order.
var Modes = []Mode{ModeSum, ModeSub, ModeMix}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeSum, ModeSub, ModeMix:
		return true
	}
	return false
}

const (
	MinDifficulty = 1
	MaxDifficulty = 6
)

// CountOptions are the session lengths offered on the setup screen.
var CountOptions = []int{10, 15, 20, 30, 40, 50}

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("quiz: invalid session configuration")

// Config is chosen by the learner before a session starts and is
// immutable afterwards.
type Config struct {
	Mode            Mode `json:"mode"`
	Difficulty      int  `json:"difficulty"`
	TotalOperations int  `json:"total_operations"`
}

// DefaultConfig mirrors the setup screen's initial selection.
func DefaultConfig() Config {
	return Config{
		Mode:            ModeMix,
		Difficulty:      MinDifficulty,
		TotalOperations: CountOptions[0],
	}
}

// Validate checks mode, difficulty range and a positive operation count.
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.Difficulty < MinDifficulty || c.Difficulty > MaxDifficulty {
		return fmt.Errorf("%w: difficulty %d outside %d-%d", ErrInvalidConfig, c.Difficulty, MinDifficulty, MaxDifficulty)
	}
	if c.TotalOperations <= 0 {
		return fmt.Errorf("%w: total operations must be positive, got %d", ErrInvalidConfig, c.TotalOperations)
	}
	return nil
}
