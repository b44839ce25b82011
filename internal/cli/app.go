// Package cli contains the CLI application.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/hyprroll/roll/internal/config"
	"github.com/hyprroll/roll/internal/env"
	"github.com/hyprroll/roll/internal/hyprctl"
	"github.com/hyprroll/roll/internal/logger"
	"github.com/hyprroll/roll/internal/rotator"
	"github.com/hyprroll/roll/internal/version"
)

const (
	leftFlagName     = "left"
	rightFlagName    = "right"
	resetFlagName    = "reset"
	monitorFlagName  = "monitor"
	hyprctlFlagName  = "hyprctl"
	listingFlagName  = "listing"
	timeoutFlagName  = "timeout"
	configFlagName   = "config"
	logLevelFlagName = "log-level"

	defaultLogLevel = logger.WarnLevel
)

// Option is a function that can be used to modify the application dependencies (useful for testing).
type Option func(*deps)

type deps struct {
	runner    hyprctl.Runner
	logOutput io.Writer
}

// WithRunner overrides the external commands runner.
func WithRunner(r hyprctl.Runner) Option { return func(d *deps) { d.runner = r } }

// WithLogOutput overrides the logger output (stderr by default).
func WithLogOutput(w io.Writer) Option { return func(d *deps) { d.logOutput = w } }

// NewApp creates new console application.
func NewApp(opts ...Option) *cli.App {
	var d = deps{runner: hyprctl.ExecRunner{}}

	for _, opt := range opts {
		opt(&d)
	}

	var log logger.Logger = logger.NewNop() // replaced in the Before hook

	return &cli.App{
		Name:  "roll",
		Usage: "Cycle the Hyprland monitor rotation (transform)",
		UsageText: "roll [--monitor <name>]            # print the current transform\n" +
			"roll --right|--left [--monitor <name>] # rotate\n" +
			"roll --reset [--monitor <name>]        # back to transform 0",
		Description: "Reads the current transform of the monitor using hyprctl, computes the next value in the 0..3\n" +
			"range and applies it. The monitor is reconfigured with the \"preferred,auto,1\" rule.",
		HideHelpCommand: true,
		Version:         version.Version(),
		Before: func(c *cli.Context) error {
			setupColors()

			lvl, err := logger.ParseLevel([]byte(c.String(logLevelFlagName)))
			if err != nil {
				return err
			}

			var logOpts []logger.LogOption

			if d.logOutput != nil {
				logOpts = append(logOpts, logger.WithOutput(d.logOutput))
			}

			log = logger.New(lvl, logOpts...)

			return nil
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return fmt.Errorf("unexpected arguments: %s", strings.Join(c.Args().Slice(), " "))
			}

			// flags conflict must be detected before anything else is done
			action, err := rotator.ActionFromFlags(c.Bool(leftFlagName), c.Bool(rightFlagName), c.Bool(resetFlagName))
			if err != nil {
				return err
			}

			var opt = newOptionsWithDefaults()

			if err = opt.UpdateFromConfigFile(c.Path(configFlagName)); err != nil {
				return err
			}

			if err = opt.UpdateFromFlags(c); err != nil {
				return err
			}

			if err = opt.Validate(); err != nil {
				return err
			}

			log.Debug("Running", "action="+action.String(), "monitor="+opt.Monitor, "listing="+opt.Listing.String())

			var client = hyprctl.NewClient(
				hyprctl.WithBinary(opt.Hyprctl),
				hyprctl.WithRunner(d.runner),
				hyprctl.WithFormat(opt.Listing),
				hyprctl.WithTimeout(opt.Timeout),
				hyprctl.WithLogger(log),
			)

			res, err := rotator.New(client, log).Do(c.Context, action, opt.Monitor)
			if err != nil {
				return err
			}

			return printResult(c.App.Writer, res)
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  leftFlagName,
				Usage: "rotate left",
			},
			&cli.BoolFlag{
				Name:  rightFlagName,
				Usage: "rotate right",
			},
			&cli.BoolFlag{
				Name:  resetFlagName,
				Usage: "reset transform back to transform: 0",
			},
			&cli.StringFlag{
				Name:    monitorFlagName,
				Aliases: []string{"m"},
				Value:   DefaultMonitor,
				Usage:   "`NAME` of the monitor to manage (as listed by \"hyprctl monitors\")",
				EnvVars: []string{env.Monitor.String()},
			},
			&cli.StringFlag{
				Name:    hyprctlFlagName,
				Value:   hyprctl.DefaultBinary,
				Usage:   "hyprctl executable name or path",
				EnvVars: []string{env.Hyprctl.String()},
			},
			&cli.StringFlag{
				Name:    listingFlagName,
				Value:   hyprctl.JSONFormat.String(),
				Usage:   "monitors listing format (" + strings.Join(hyprctl.AllFormatStrings(), "|") + ")",
				EnvVars: []string{env.Listing.String()},
			},
			&cli.DurationFlag{
				Name:    timeoutFlagName,
				Usage:   "hyprctl execution timeout (0 = no limit)",
				EnvVars: []string{env.Timeout.String()},
			},
			&cli.PathFlag{
				Name:    configFlagName,
				Aliases: []string{"c"},
				Value:   config.DefaultFilePath(),
				Usage:   "path to the configuration file",
				EnvVars: []string{env.ConfigFile.String()},
			},
			&cli.StringFlag{
				Name:    logLevelFlagName,
				Value:   defaultLogLevel.String(),
				Usage:   "logging level (" + strings.Join(logger.AllLevelStrings(), "|") + ")",
				EnvVars: []string{env.LogLevel.String()},
			},
		},
	}
}

// setupColors decides whether the colored output is allowed. The logger writes to stderr, so it is the stream
// that is checked.
func setupColors() {
	if _, exists := env.ForceColors.Lookup(); exists {
		color.NoColor = false
	} else if _, exists = env.NoColors.Lookup(); exists {
		color.NoColor = true
	} else if v, ok := env.Term.Lookup(); ok && v == "dumb" {
		color.NoColor = true
	} else if fd := os.Stderr.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}

// printResult prints the human-readable operation result.
func printResult(w io.Writer, res rotator.Result) (err error) {
	switch res.Action {
	case rotator.Query:
		_, err = fmt.Fprintf(w, "Current transform for monitor %s: %s\n", res.Monitor, res.Current)

	case rotator.RotateLeft, rotator.RotateRight:
		var direction = "right"

		if res.Action == rotator.RotateLeft {
			direction = "left"
		}

		if _, err = fmt.Fprintf(w, "Monitor %s: Moving %s (Next transform: %s)\n", res.Monitor, direction, res.Current); err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "Rotating %s for monitor %s: %s\n", direction, res.Monitor, res.Output)

	case rotator.Reset:
		_, err = fmt.Fprintf(w, "Resetting transform for monitor %s: %s\n", res.Monitor, res.Output)
	}

	return err
}
