package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/san-kum/termrain/internal/rain"
	"github.com/san-kum/termrain/internal/term"
)

var debugLog string

// main runs the rain until q or Ctrl-C is pressed. Terminal setup failures
// exit with status 1.
func main() {
	rootCmd, err := newRootCmd()
	if err == nil {
		err = rootCmd.Execute()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "termrain: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:           "termrain",
		Short:         "falling characters in your terminal (press q to quit)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRain,
	}
	rootCmd.Flags().StringVar(&debugLog, "debug-log", "", "append debug log to file")
	if err := rootCmd.Flags().MarkHidden("debug-log"); err != nil {
		return nil, fmt.Errorf("hide debug-log flag: %w", err)
	}
	return rootCmd, nil
}

func runRain(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := openLogger(debugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := term.NewScreen()
	if err != nil {
		return err
	}

	opts := rain.DefaultOptions()
	opts.Logger = logger
	return rain.Run(ctx, screen, opts)
}

func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open debug log file '%s': %w", path, err)
	}
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}
