// Package version holds the application version.
package version

import "strings"

// version value will be set during compilation (`-ldflags "-X github.com/hyprroll/roll/internal/version.version=v1.2.3"`).
var version = "v0.0.0@undefined"

// Version returns version value (without `v` prefix).
func Version() string {
	v := strings.TrimSpace(version)

	if len(v) > 1 && (v[0] == 'v' || v[0] == 'V') {
		return v[1:]
	}

	return v
}
