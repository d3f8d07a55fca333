package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/d5c5ceb0/polymarket-cli/internal/config"
	apperrors "github.com/d5c5ceb0/polymarket-cli/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := &cli{
		cfg:       config.Load(),
		homeDir:   os.UserHomeDir,
		lookupEnv: os.LookupEnv,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}

	if err := newRootCmd(c).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", userMessage(err))
		if errors.Is(err, apperrors.ErrInvalidArgument) {
			fmt.Fprintln(os.Stderr, "Run 'polymarket --help' for usage.")
		}
		stop()
		os.Exit(apperrors.ExitCodeFor(err))
	}
}

// userMessage renders an error without the machine-oriented code prefix
func userMessage(err error) string {
	appErr, ok := apperrors.IsAppError(err)
	if !ok {
		return err.Error()
	}
	if appErr.Detail != "" {
		return fmt.Sprintf("%s: %s", appErr.Message, appErr.Detail)
	}
	return appErr.Message
}
