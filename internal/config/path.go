package config

import (
	"os"
	"path/filepath"
)

const (
	DirName  = "roll"     // DirName holds the application directory name inside the OS config directory.
	FileName = "roll.yml" // FileName holds the name of the configuration file.
)

// DefaultDirPathEnvName used to override the default directory path.
const DefaultDirPathEnvName = "ROLL_CONFIG_DIR"

// DefaultDirPath returns the default directory path where the configuration file is looked for by default.
// Only in case of exception, this function returns an empty string.
func DefaultDirPath() string {
	if v, ok := os.LookupEnv(DefaultDirPathEnvName); ok {
		return v
	}

	if v := osSpecificConfigDirPath(); v != "" {
		return filepath.Join(v, DirName)
	}

	return ""
}

// DefaultFilePath returns the default configuration file path (or an empty string if the directory is unknown).
func DefaultFilePath() string {
	if dir := DefaultDirPath(); dir != "" {
		return filepath.Join(dir, FileName)
	}

	return ""
}
