package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sgstyle/internal/driver"
	"sgstyle/internal/ui"
)

type checkOutcome struct {
	result *driver.CheckResult
	err    error
}

// runCheckWithUI runs the check pipeline behind an interactive
// progress display. Результат пайплайна не зависит от интерфейса:
// модель только слушает события.
func runCheckWithUI(ctx context.Context, title string, paths []string, opts driver.Options) (*driver.CheckResult, error) {
	files, err := driver.CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.CheckPaths(ctx, files, optsCopy)
		outcomeCh <- checkOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
