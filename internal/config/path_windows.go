package config

import "os"

// osSpecificConfigDirPath returns %AppData% on the Windows operating system.
func osSpecificConfigDirPath() string {
	if v, ok := os.LookupEnv("AppData"); ok {
		return v
	}

	return ""
}
