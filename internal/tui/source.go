package tui

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

// Source bridges a progrock recorder to the progress view. The recorder
// writes status updates into it and the Bubble Tea model reads them back
// out through the TapeSource interface.
type Source struct {
	updates chan *progrock.StatusUpdate

	closeOnce sync.Once
	done      chan struct{}
}

var _ progrock.Writer = (*Source)(nil)
var _ TapeSource = (*Source)(nil)

// NewSource creates an open source ready to carry updates.
func NewSource() *Source {
	return &Source{
		updates: make(chan *progrock.StatusUpdate, 64),
		done:    make(chan struct{}),
	}
}

// WriteStatus hands one update to the reader. Writes after Close are
// dropped silently so a recorder flushing late does not block.
func (s *Source) WriteStatus(update *progrock.StatusUpdate) error {
	select {
	case <-s.done:
		return nil
	case s.updates <- update:
		return nil
	}
}

// Read blocks until the next update arrives. It returns io.EOF once the
// source is closed and all buffered updates have been drained.
func (s *Source) Read() (*progrock.StatusUpdate, error) {
	select {
	case update := <-s.updates:
		return update, nil
	case <-s.done:
		// Drain anything buffered before signalling the end.
		select {
		case update := <-s.updates:
			return update, nil
		default:
			return nil, io.EOF
		}
	}
}

// Close ends the tape. It is safe to call more than once.
func (s *Source) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}
