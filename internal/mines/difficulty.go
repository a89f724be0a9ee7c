package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Preset uint8

const (
	Easy Preset = iota + 1
	Medium
	Hard
)

func (p Preset) String() string {
	switch p {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "custom"
	}
}

// ParsePreset accepts a preset id ("1".."3") or its name.
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "easy":
		return Easy, nil
	case "2", "medium":
		return Medium, nil
	case "3", "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("unknown preset %q (want 1, 2, 3, easy, medium or hard)", s)
}

// Difficulty holds interior dimensions; the grid adds a one-cell border on
// every side.
type Difficulty struct {
	Width, Height, MineCount int
	Preset                   Preset
}

var (
	EasyDifficulty   = Difficulty{Width: 9, Height: 9, MineCount: 10, Preset: Easy}
	MediumDifficulty = Difficulty{Width: 17, Height: 17, MineCount: 40, Preset: Medium}
	HardDifficulty   = Difficulty{Width: 31, Height: 16, MineCount: 99, Preset: Hard}
)

func PresetDifficulty(p Preset) (Difficulty, error) {
	switch p {
	case Easy:
		return EasyDifficulty, nil
	case Medium:
		return MediumDifficulty, nil
	case Hard:
		return HardDifficulty, nil
	}
	return Difficulty{}, &ConfigError{
		Difficulty: Difficulty{Preset: p},
		reason:     "unknown preset " + strconv.Itoa(int(p)),
	}
}

func (d Difficulty) Validate() error {
	switch {
	case d.Width < 1:
		return &ConfigError{d, fmt.Sprintf("width must be positive, got %d", d.Width)}
	case d.Height < 1:
		return &ConfigError{d, fmt.Sprintf("height must be positive, got %d", d.Height)}
	case d.MineCount < 0:
		return &ConfigError{d, fmt.Sprintf("negative mine count %d", d.MineCount)}
	case d.MineCount >= d.Width*d.Height:
		return &ConfigError{d, fmt.Sprintf(
			"not enough space for %d mines (%d >= %d * %d)",
			d.MineCount, d.MineCount, d.Width, d.Height,
		)}
	}
	return nil
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s %dx%d(%d)", d.Preset, d.Width, d.Height, d.MineCount)
}
