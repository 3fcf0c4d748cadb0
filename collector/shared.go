package collector

import (
	"iter"
	"slices"
	"sync"
)

// Shared is a Collector guarded by a mutex. Hand the same *Shared to every
// goroutine or logger that writes to it; at most one operation runs at a time.
type Shared struct {
	mu sync.Mutex
	c  Collector
}

// NewShared creates an empty collector that is safe for concurrent use
func NewShared() *Shared {
	return &Shared{}
}

// Do runs fn with the lock held. fn must not retain c or call back into s.
func (s *Shared) Do(fn func(c *Collector)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.c)
}

// Write implements io.Writer. Each call is applied atomically.
func (s *Shared) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	n, err = s.c.Write(p)
	s.mu.Unlock()
	return
}

// WriteString implements io.StringWriter
func (s *Shared) WriteString(str string) (n int, err error) {
	s.mu.Lock()
	n, err = s.c.WriteString(str)
	s.mu.Unlock()
	return
}

// Flush moves a non-empty pending fragment into the completed lines
func (s *Shared) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Flush()
}

// Sync implements zapcore.WriteSyncer
func (s *Shared) Sync() error {
	return s.Flush()
}

// Close lets *Shared serve as a zap.Sink. It does nothing; the collector
// stays usable.
func (s *Shared) Close() error {
	return nil
}

// Clear drops all completed lines and the pending fragment
func (s *Shared) Clear() {
	s.mu.Lock()
	s.c.Clear()
	s.mu.Unlock()
}

// Count returns the number of completed lines
func (s *Shared) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Count()
}

// Lines returns an iterator over a snapshot of the completed lines taken now.
func (s *Shared) Lines() iter.Seq[string] {
	return slices.Values(s.CloneLines())
}

// CloneLines returns a copy of the completed lines
func (s *Shared) CloneLines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.CloneLines()
}

// Pending returns the text written since the last completed line
func (s *Shared) Pending() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Pending()
}
