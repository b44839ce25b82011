// Package config reads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type (
	// Config is used to unmarshal the configuration file content.
	Config struct {
		// pointers are used to distinguish between unset and set values (nil = unset)
		Monitor *string   `yaml:"monitor"`
		Hyprctl *string   `yaml:"hyprctl"`
		Listing *string   `yaml:"listing"`
		Timeout *Duration `yaml:"timeout"`
	}

	// Duration is a time.Duration that is decoded from the Go duration string ("1.5s", "300ms").
	Duration time.Duration
)

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string

	if err := node.Decode(&s); err != nil {
		return err
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	if v < 0 {
		return fmt.Errorf("line %d: negative duration %q", node.Line, s)
	}

	*d = Duration(v)

	return nil
}

// FromFile initializes self state by reading the configuration file from the provided path.
// To merge values from one file with another, call this method multiple times with different paths (values
// from the last file will overwrite the previous ones). Unknown keys are rejected.
func (c *Config) FromFile(path string) error {
	if c == nil {
		return errors.New("config is nil")
	}

	var f, err = os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open the config file: %w", err)
	}

	defer func() { _ = f.Close() }()

	var dec = yaml.NewDecoder(f)

	dec.KnownFields(true)

	if err = dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) { // empty file
			return nil
		}

		return fmt.Errorf("failed to decode the config file: %w", err)
	}

	return nil
}
