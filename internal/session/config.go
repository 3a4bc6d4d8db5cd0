package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mathgame/internal/difficulty"
)

// DefaultTimeAttackSeconds is the length of a TimeAttack round.
const DefaultTimeAttackSeconds = 15

// DefaultTickInterval is the countdown period.
const DefaultTickInterval = time.Second

// Config controls session behaviour.
type Config struct {
	Difficulty difficulty.Config

	// TimeAttackSeconds is the countdown start value.
	TimeAttackSeconds int

	// TickInterval is how often the host should call Tick.
	TickInterval time.Duration

	// MaxDivisionAttempts caps the exact-division search. Zero means the
	// generator default.
	MaxDivisionAttempts int
}

// DefaultConfig returns the standard session settings.
func DefaultConfig() Config {
	return Config{
		Difficulty:        difficulty.DefaultConfig(),
		TimeAttackSeconds: DefaultTimeAttackSeconds,
		TickInterval:      DefaultTickInterval,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Difficulty.Validate(); err != nil {
		return err
	}
	if c.TimeAttackSeconds < 1 {
		return fmt.Errorf("time attack seconds must be positive, got %d", c.TimeAttackSeconds)
	}
	if c.TickInterval <= 0 {
		return errors.New("tick interval must be positive")
	}
	if c.MaxDivisionAttempts < 0 {
		return fmt.Errorf("max division attempts must not be negative, got %d", c.MaxDivisionAttempts)
	}
	return nil
}
