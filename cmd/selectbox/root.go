package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/selectbox/internal/logger"
)

type rootFlags struct {
	logFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "selectbox",
		Short:         "Accessible dropdown selects for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write JSON logs to this file (the terminal is reserved for the UI)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// openLogger builds the logger described by the flags. The returned closer
// releases the log file, if any.
func openLogger(flags *rootFlags) (*logger.Logger, io.Closer, error) {
	var writer io.Writer = io.Discard
	var closer io.Closer = noopCloser{}

	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer, closer = f, f
	}

	log, err := logger.New(logger.Options{Level: flags.logLevel, Writer: writer})
	if err != nil {
		_ = closer.Close()
		return nil, nil, fmt.Errorf("configure logger: %w", err)
	}
	return log, closer, nil
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }
