package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition   = errors.New("invalid cell position")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

type PositionError struct {
	X, Y          int
	Width, Height int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf(
		"position (%d, %d) is outside of the %dx%d grid",
		e.X, e.Y, e.Width, e.Height,
	)
}

func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

type ConfigError struct {
	Difficulty Difficulty
	reason     string
}

func (e *ConfigError) Error() string {
	return "invalid difficulty: " + e.reason
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidDifficulty
}
