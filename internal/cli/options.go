package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hyprroll/roll/internal/config"
	"github.com/hyprroll/roll/internal/hyprctl"
)

// DefaultMonitor is the monitor that is used when nothing else is configured (usually the laptop panel).
const DefaultMonitor = "eDP-1"

type options struct {
	Monitor string
	Hyprctl string
	Listing hyprctl.Format
	Timeout time.Duration
}

func newOptionsWithDefaults() options {
	return options{
		Monitor: DefaultMonitor,
		Hyprctl: hyprctl.DefaultBinary,
		Listing: hyprctl.JSONFormat,
		Timeout: 0, // no limit
	}
}

// UpdateFromConfigFile loads the configuration from the file and applies it to the options.
func (o *options) UpdateFromConfigFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	if stat, err := os.Stat(filePath); err != nil || stat.IsDir() {
		return nil // skip missing files and directories
	}

	var cfg config.Config

	if err := cfg.FromFile(filePath); err != nil {
		return fmt.Errorf("failed to load the configuration file: %w", err)
	}

	setIfSourceNotNil(&o.Monitor, cfg.Monitor)
	setIfSourceNotNil(&o.Hyprctl, cfg.Hyprctl)

	if cfg.Listing != nil {
		f, err := hyprctl.ParseFormat([]byte(*cfg.Listing))
		if err != nil {
			return fmt.Errorf("configuration file %s: %w", filePath, err)
		}

		o.Listing = f
	}

	if cfg.Timeout != nil {
		o.Timeout = time.Duration(*cfg.Timeout)
	}

	return nil
}

// UpdateFromFlags applies the flags that were set explicitly (in the command line or environment).
func (o *options) UpdateFromFlags(c *cli.Context) error {
	if c.IsSet(monitorFlagName) {
		o.Monitor = c.String(monitorFlagName)
	}

	if c.IsSet(hyprctlFlagName) {
		o.Hyprctl = c.String(hyprctlFlagName)
	}

	if c.IsSet(listingFlagName) {
		f, err := hyprctl.ParseFormat([]byte(c.String(listingFlagName)))
		if err != nil {
			return err
		}

		o.Listing = f
	}

	if c.IsSet(timeoutFlagName) {
		o.Timeout = c.Duration(timeoutFlagName)
	}

	return nil
}

// setIfSourceNotNil sets the target value to the source value if both are not nil.
func setIfSourceNotNil[T any](target, source *T) {
	if target == nil || source == nil {
		return
	}

	*target = *source
}

func (o *options) Validate() error {
	if o.Monitor == "" {
		return errors.New("monitor name cannot be empty")
	}

	if o.Hyprctl == "" {
		return errors.New("hyprctl executable cannot be empty")
	}

	if o.Timeout < 0 {
		return errors.New("timeout cannot be negative")
	}

	return nil
}
