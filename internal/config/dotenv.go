package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DotEnvSwitch disables .env loading when set to 0, false, off, or no.
const DotEnvSwitch = "FURRY_STORE_DOTENV"

// DefaultDotEnvFiles are tried in order; earlier files win because
// godotenv never overrides a variable that is already set.
var DefaultDotEnvFiles = []string{".env.local", ".env"}

// LoadDotEnv loads the given files into the process environment and
// returns the ones it read. Missing files are skipped.
func LoadDotEnv(paths ...string) ([]string, error) {
	if dotEnvDisabled() {
		return nil, nil
	}
	var loaded []string
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("load %s: %w", p, err)
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}

func dotEnvDisabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(DotEnvSwitch))) {
	case "0", "false", "off", "no":
		return true
	default:
		return false
	}
}
