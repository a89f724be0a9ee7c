package config

import "fmt"

type Logging struct {
	File       string `schema:"log_file"`
	MaxSize    int    `schema:"log_max_size"`    // megabytes
	MaxBackups int    `schema:"log_max_backups"`
	MaxAge     int    `schema:"log_max_age"` // days
}

func NewLogging() (*Logging, error) {
	logging := &Logging{
		File:       "minesweeper.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	if err := decodeEnv(logging); err != nil {
		return nil, fmt.Errorf("unable to decode logging config: %w", err)
	}
	if logging.MaxSize < 0 || logging.MaxBackups < 0 || logging.MaxAge < 0 {
		return nil, fmt.Errorf("log rotation limits must not be negative")
	}
	return logging, nil
}
