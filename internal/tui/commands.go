package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// TapeSource yields progress status updates until the run ends.
type TapeSource interface {
	// Read blocks until the next update is available. It returns an error,
	// typically io.EOF, once the tape is closed.
	Read() (*progrock.StatusUpdate, error)
}

// WaitForTape reads the next update from the tape and turns it into a
// message. Any read error ends the tape.
func WaitForTape(tape TapeSource) tea.Cmd {
	return func() tea.Msg {
		update, err := tape.Read()
		if err != nil {
			return MsgTapeEnded{}
		}
		return MsgTapeUpdate{Update: update}
	}
}
