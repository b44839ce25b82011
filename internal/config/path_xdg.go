//go:build !windows && !darwin

package config

import (
	"os"
	"path/filepath"
)

// osSpecificConfigDirPath follows the XDG base directory specification (Linux and BSD, where the compositor runs).
func osSpecificConfigDirPath() string {
	if v, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && v != "" {
		return v
	}

	if v, err := os.UserHomeDir(); err == nil {
		return filepath.Join(v, ".config")
	}

	return ""
}
