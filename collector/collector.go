package collector

import (
	"bytes"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// Collector accumulates written text as discrete lines.
// The zero value is an empty collector ready to use.
type Collector struct {
	lines   []string
	pending []byte // valid UTF-8, never contains '\n'
}

// New creates an empty collector
func New() *Collector {
	return &Collector{}
}

// Write consumes all of p and always returns len(p), nil.
func (c *Collector) Write(p []byte) (n int, err error) {
	rest := p
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			c.appendPending(rest)
			return len(p), nil
		}
		c.appendPending(rest[:i])
		c.promote()
		rest = rest[i+1:]
	}
}

// WriteString is like Write but takes a string, avoiding a copy.
func (c *Collector) WriteString(s string) (n int, err error) {
	rest := s
	for {
		i := strings.IndexByte(rest, '\n')
		if i < 0 {
			c.appendPendingString(rest)
			return len(s), nil
		}
		c.appendPendingString(rest[:i])
		c.promote()
		rest = rest[i+1:]
	}
}

// Flush moves a non-empty pending fragment into the completed lines.
// It never fails.
func (c *Collector) Flush() error {
	if len(c.pending) > 0 {
		c.promote()
	}
	return nil
}

// Sync implements zapcore.WriteSyncer by calling Flush
func (c *Collector) Sync() error {
	return c.Flush()
}

// Clear drops all completed lines and the pending fragment.
// Iterators returned by Lines before the call keep yielding the old lines.
func (c *Collector) Clear() {
	c.lines = nil
	c.pending = c.pending[:0]
}

// Count returns the number of completed lines. The pending fragment is not counted.
func (c *Collector) Count() int {
	return len(c.lines)
}

// Lines returns a read-only view of the completed lines in arrival order.
func (c *Collector) Lines() iter.Seq[string] {
	return slices.Values(c.lines)
}

// CloneLines returns a copy of the completed lines. The caller owns the result.
func (c *Collector) CloneLines() []string {
	return slices.Clone(c.lines)
}

// Pending returns the text written since the last completed line
func (c *Collector) Pending() string {
	return string(c.pending)
}

func (c *Collector) promote() {
	c.lines = append(c.lines, string(c.pending))
	c.pending = c.pending[:0]
}

// appendPending adds a '\n'-free segment to the pending fragment.
// '\n' never occurs inside a multi-byte UTF-8 sequence, so splitting on the
// raw byte before decoding gives the same result as decoding first.
func (c *Collector) appendPending(seg []byte) {
	if utf8.Valid(seg) {
		c.pending = append(c.pending, seg...)
		return
	}
	for len(seg) > 0 {
		r, size := utf8.DecodeRune(seg)
		c.pending = utf8.AppendRune(c.pending, r)
		seg = seg[size:]
	}
}

func (c *Collector) appendPendingString(seg string) {
	if utf8.ValidString(seg) {
		c.pending = append(c.pending, seg...)
		return
	}
	for _, r := range seg {
		c.pending = utf8.AppendRune(c.pending, r)
	}
}
