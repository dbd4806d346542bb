package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/selectbox/internal/config"
	"github.com/alexisbeaulieu97/selectbox/internal/logger"
	"github.com/alexisbeaulieu97/selectbox/internal/tui"
)

var errCancelled = errors.New("selection cancelled")

// isInteractive reports whether a UI can be shown. The UI draws on stderr so
// stdout stays free for the result.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

var runProgram = func(m tui.Model) (tui.Model, error) {
	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
	)
	final, err := program.Run()
	if err != nil {
		return m, err
	}
	result, ok := final.(tui.Model)
	if !ok {
		return m, fmt.Errorf("unexpected model type %T", final)
	}
	return result, nil
}

// collect shows the form and returns the submitted values. Without a
// terminal the defaults are returned as they stand.
func collect(form *config.Form, log *logger.Logger) ([]tui.FieldValue, error) {
	model := tui.NewModel(form, tui.Options{Logger: log})

	if !isInteractive() {
		log.Debug("no terminal attached, using default values")
		return model.Values(), nil
	}

	final, err := runProgram(model)
	if err != nil {
		log.Error(err, "form program failed")
		return nil, fmt.Errorf("run form: %w", err)
	}
	if !final.Submitted() {
		log.Warn("form cancelled before submit")
		return nil, errCancelled
	}
	log.Info("form submitted")
	return final.Values(), nil
}
