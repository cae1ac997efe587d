// Package notify buffers achievement notifications raised while a
// message is being handled so the TUI can show them as toasts afterwards.
package notify

import "sync"

// Notice is one achievement or streak notification.
type Notice struct {
	Title       string
	Description string
}

// Buffer collects notices. It implements progress.Notifier and is safe
// for use from the background goroutines bubbletea commands run in.
type Buffer struct {
	mu      sync.Mutex
	pending []Notice
}

// Achievement appends a notice.
func (b *Buffer) Achievement(title, description string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, Notice{Title: title, Description: description})
}

// Drain returns and clears the pending notices.
func (b *Buffer) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = nil
	return out
}
