// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/poruru-code/hostenv/internal/meta"
)

// HostnameKey is the variable consulted when no hostname argument is given.
const HostnameKey = "HOSTNAME"

// HostEnvKey prefixes suffix with the tool's env prefix.
// Example: HostEnvKey("HOSTNAME") returns "HOSTENV_HOSTNAME".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// LookupHostname returns HOSTENV_HOSTNAME and whether it is set.
func LookupHostname() (string, bool) {
	return os.LookupEnv(HostEnvKey(HostnameKey))
}

// LoadEnvFile loads path, or .env in dir when path is empty and the file exists.
// Variables already set in the process are not overridden. The loaded file is
// returned, or "" when nothing was loaded.
func LoadEnvFile(dir, path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("load env file %s: %w", path, err)
		}
		return path, nil
	}
	candidate := filepath.Join(dir, ".env")
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat env file: %w", err)
	}
	if err := godotenv.Load(candidate); err != nil {
		return "", fmt.Errorf("load env file %s: %w", candidate, err)
	}
	return candidate, nil
}
