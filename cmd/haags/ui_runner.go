package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"haags/internal/driver"
	"haags/internal/ui"
)

// runWithUI runs work in the background while a progress UI renders its events.
// work must report through the sink it is given; the UI exits once work returns.
func runWithUI(title string, files []string, final driver.Stage, work func(driver.ProgressSink) error) error {
	events := make(chan driver.Event, 256)
	outcome := make(chan error, 1)

	go func() {
		err := work(driver.ChannelSink{Ch: events})
		outcome <- err
		close(events)
	}()

	model := ui.NewProgressModel(title, files, final, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	if uiErr != nil {
		// UI упал: дочитываем события, чтобы воркеры не встали на полном канале
		go func() {
			for range events {
			}
		}()
	}
	err := <-outcome
	if uiErr != nil {
		return uiErr
	}
	return err
}
