package main

import (
	"github.com/charmbracelet/huh/spinner"
)

// runWithSpinner runs an action behind a spinner when the session is
// interactive. Under a pipe or redirect the action runs without any
// display at all: stdout must stay byte-clean for the content blob.
func runWithSpinner(title string, action func() error) error {
	if !interactiveSession() {
		return action()
	}

	var actionErr error
	spinErr := spinner.New().
		Title(title).
		Action(func() {
			actionErr = action()
		}).
		Run()

	if spinErr != nil {
		return spinErr
	}
	return actionErr
}
