package tui

import "github.com/vito/progrock"

// MsgTapeUpdate delivers the next status update read from the tape.
type MsgTapeUpdate struct {
	Update *progrock.StatusUpdate
}

// MsgTapeEnded signals that the tape has no more updates.
type MsgTapeEnded struct{}
