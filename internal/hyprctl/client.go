// Package hyprctl is a thin client for the Hyprland control tool: it reads the monitors listing and applies the
// monitor configuration. The tool is always invoked with an arguments array, no shell is involved.
package hyprctl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hyprroll/roll/internal/logger"
	"github.com/hyprroll/roll/internal/transform"
)

// DefaultBinary is the name of the control tool executable.
const DefaultBinary = "hyprctl"

// The monitor rule used by Apply is "<name>,<resolution>,<position>,<scale>,transform,<value>". Every other
// attribute is reset to these values, this is the intended behavior.
const (
	ruleResolution = "preferred"
	rulePosition   = "auto"
	ruleScale      = "1"
)

// ClientOption is a function that can be used to modify a Client.
type ClientOption func(*Client)

// WithBinary overrides the control tool executable (DefaultBinary by default).
func WithBinary(name string) ClientOption { return func(c *Client) { c.bin = name } }

// WithRunner overrides the command runner (ExecRunner by default).
func WithRunner(r Runner) ClientOption { return func(c *Client) { c.runner = r } }

// WithFormat sets the monitors listing format (JSONFormat by default).
func WithFormat(f Format) ClientOption { return func(c *Client) { c.format = f } }

// WithTimeout limits every external command execution time (zero means no limit).
func WithTimeout(d time.Duration) ClientOption { return func(c *Client) { c.timeout = d } }

// WithLogger sets the logger (no-op by default).
func WithLogger(l logger.Logger) ClientOption { return func(c *Client) { c.log = l } }

// Client talks to the control tool.
type Client struct {
	bin     string
	runner  Runner
	format  Format
	timeout time.Duration
	log     logger.Logger
}

// NewClient creates a new client.
func NewClient(opts ...ClientOption) *Client {
	var c = &Client{
		bin:    DefaultBinary,
		runner: ExecRunner{},
		format: JSONFormat,
		log:    logger.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.log.Debug("Running", commandLine(c.bin, args))

	var startedAt = time.Now()

	out, err := c.runner.Run(ctx, c.bin, args...)

	c.log.Debug("Finished", "took="+time.Since(startedAt).Round(time.Millisecond).String(), fmt.Sprintf("bytes=%d", len(out)))

	return out, err
}

// Monitors reads the monitors listing. In the JSON mode the output that does not look like JSON (older tool
// versions) is parsed as the text listing.
func (c *Client) Monitors(ctx context.Context) (Listing, error) {
	var args = []string{"monitors"}

	if c.format == JSONFormat {
		args = []string{"-j", "monitors"}
	}

	out, err := c.run(ctx, args...)
	if err != nil {
		return Listing{}, errors.Wrap(err, "query monitors")
	}

	var listing Listing

	switch c.format {
	case JSONFormat:
		listing, err = ParseListing(out)
	case TextFormat:
		listing, err = ParseTextListing(out)
	default:
		return Listing{}, &transform.InvalidArgumentError{Argument: "listing format", Value: c.format.String()}
	}

	if err != nil {
		return Listing{}, errors.Wrap(err, "parse monitors listing")
	}

	c.log.Debug("Monitors listed", "monitors="+strings.Join(listing.Names(), ","))

	return listing, nil
}

// Transform returns the current transform of the monitor.
func (c *Client) Transform(ctx context.Context, monitor string) (transform.Transform, error) {
	listing, err := c.Monitors(ctx)
	if err != nil {
		return 0, err
	}

	t, err := listing.Transform(monitor)
	if err != nil {
		return 0, err
	}

	c.log.Debug("Current transform", "monitor="+monitor, "transform="+t.String())

	return t, nil
}

// Apply reconfigures the monitor with the given transform. The returned string is the tool output.
func (c *Client) Apply(ctx context.Context, monitor string, value transform.Transform) (string, error) {
	if monitor == "" {
		return "", &transform.InvalidArgumentError{Argument: "monitor", Reason: "empty name"}
	}

	if err := value.Validate(); err != nil {
		return "", err
	}

	var rule = strings.Join([]string{
		monitor, ruleResolution, rulePosition, ruleScale, "transform", value.String(),
	}, ",")

	out, err := c.run(ctx, "keyword", "monitor", rule)
	if err != nil {
		return "", errors.Wrapf(err, "apply transform %s to monitor %q", value, monitor)
	}

	return strings.TrimSpace(string(out)), nil
}
