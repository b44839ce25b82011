package config

import "os"

// osSpecificConfigDirPath returns "~/Library/Application Support" on the Darwin operating system.
func osSpecificConfigDirPath() string {
	if v, err := os.UserConfigDir(); err == nil {
		return v
	}

	return ""
}
