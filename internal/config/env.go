package config

import (
	"os"
	"strings"

	"github.com/gorilla/schema"
)

const envPrefix = "MINES_"

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// environ collects MINES_* variables into the form gorilla/schema decodes:
// MINES_LOG_FILE=x becomes log_file=[x].
func environ() map[string][]string {
	values := make(map[string][]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, envPrefix))
		values[name] = append(values[name], value)
	}
	return values
}

func decodeEnv(dst any) error {
	return decoder.Decode(dst, environ())
}
