// Main entry point of the application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-colorable"

	"github.com/hyprroll/roll/internal/cli"
)

// exitFn is a function for application exiting.
var exitFn = os.Exit //nolint:gochecknoglobals

func main() { exitFn(run(os.Args, colorable.NewColorableStderr())) }

// run runs the application and returns the exit code.
func run(args []string, stderr io.Writer) int {
	// create a context that is canceled when the user interrupts the program
	var ctx, cancel = signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewApp().RunContext(ctx, args); err != nil {
		_, _ = fmt.Fprintln(stderr, "error: "+err.Error())

		return 1
	}

	return 0
}
