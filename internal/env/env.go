// Package env contains all about environment variables, that can be used by current application.
package env

import "os"

type envVariable string

const (
	LogLevel envVariable = "LOG_LEVEL" // logging level

	ForceColors envVariable = "FORCE_COLOR" // force colored output
	NoColors    envVariable = "NO_COLOR"    // disable colored output
	Term        envVariable = "TERM"        // terminal type

	Monitor    envVariable = "ROLL_MONITOR"     // monitor identifier
	Hyprctl    envVariable = "ROLL_HYPRCTL"     // control tool executable
	Listing    envVariable = "ROLL_LISTING"     // monitors listing format
	Timeout    envVariable = "ROLL_TIMEOUT"     // external command timeout
	ConfigFile envVariable = "ROLL_CONFIG_FILE" // configuration file path
)

// String returns environment variable name in the string representation.
func (e envVariable) String() string { return string(e) }

// Lookup retrieves the value of the environment variable. If the variable is present in the environment the value
// (which may be empty) is returned and the boolean is true. Otherwise the returned value will be empty and the
// boolean will be false.
func (e envVariable) Lookup() (string, bool) { return os.LookupEnv(string(e)) }
