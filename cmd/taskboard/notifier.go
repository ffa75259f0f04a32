package main

import (
	"os"

	"github.com/fatih/color"
)

// colorNotifier renders the controller's one-shot notifications to the
// terminal, green for success and red for failure.
type colorNotifier struct {
	success *color.Color
	failure *color.Color
}

func newColorNotifier() *colorNotifier {
	return &colorNotifier{
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

func (n *colorNotifier) Success(msg string) {
	n.success.Fprintln(os.Stdout, msg)
}

func (n *colorNotifier) Error(msg string) {
	n.failure.Fprintln(os.Stderr, msg)
}
