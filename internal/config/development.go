package config

import "os"

// Development reports whether DEVELOPMENT or MINES_DEVELOPMENT is set to
// anything other than "0".
func Development() bool {
	for _, key := range []string{"DEVELOPMENT", envPrefix + "DEVELOPMENT"} {
		if value, ok := os.LookupEnv(key); ok && value != "0" {
			return true
		}
	}
	return false
}
