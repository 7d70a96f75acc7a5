package tui

// copiedMsg reports the outcome of writing the identifier to the clipboard.
type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
