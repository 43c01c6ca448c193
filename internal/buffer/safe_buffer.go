// Completion: 100% - Module complete

// Package buffer provides write-once byte buffers for emitted images.
package buffer

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xyproto/teensy/internal/engine"
)

// SafeBuffer wraps bytes.Buffer with an explicit commit step. Once committed
// the contents are final and any further write panics.
type SafeBuffer struct {
	buf       bytes.Buffer
	committed bool
	name      string // For debugging
}

// NewSafeBuffer creates a new SafeBuffer with a name for debugging
func NewSafeBuffer(name string) *SafeBuffer {
	return &SafeBuffer{name: name}
}

// NewSafeBufferSize creates a SafeBuffer with room for size bytes.
func NewSafeBufferSize(name string, size int) *SafeBuffer {
	sb := NewSafeBuffer(name)
	sb.buf.Grow(size)
	return sb
}

// Write appends bytes to the buffer. Panics if buffer is committed.
func (sb *SafeBuffer) Write(p []byte) (n int, err error) {
	sb.mustNotBeCommitted()
	return sb.buf.Write(p)
}

// WriteByte appends a single byte. Panics if buffer is committed.
func (sb *SafeBuffer) WriteByte(c byte) error {
	sb.mustNotBeCommitted()
	return sb.buf.WriteByte(c)
}

// Bytes returns the buffer contents. Safe to call after commit.
func (sb *SafeBuffer) Bytes() []byte {
	return sb.buf.Bytes()
}

// Len returns the buffer length
func (sb *SafeBuffer) Len() int {
	return sb.buf.Len()
}

// Name returns the debugging name given at construction.
func (sb *SafeBuffer) Name() string {
	return sb.name
}

// Commit marks the buffer as complete. After this, no more writes are allowed.
func (sb *SafeBuffer) Commit() {
	if engine.VerboseMode {
		fmt.Fprintf(os.Stderr, "SafeBuffer(%s): Committed with %d bytes\n", sb.name, sb.buf.Len())
	}
	sb.committed = true
}

// IsCommitted returns true if the buffer has been committed
func (sb *SafeBuffer) IsCommitted() bool {
	return sb.committed
}

func (sb *SafeBuffer) mustNotBeCommitted() {
	if sb.committed {
		panic(fmt.Sprintf("SafeBuffer(%s): Cannot write to committed buffer", sb.name))
	}
}

// ScopedBuffer gives read access only after Complete.
//
//	scope := NewScopedBuffer("text")
//	defer scope.Complete()
//	... write to scope.Buffer() ...
type ScopedBuffer struct {
	buf *SafeBuffer
}

// NewScopedBuffer creates a new scoped buffer
func NewScopedBuffer(name string) *ScopedBuffer {
	return &ScopedBuffer{
		buf: NewSafeBuffer(name),
	}
}

// Buffer returns the underlying SafeBuffer
func (s *ScopedBuffer) Buffer() *SafeBuffer {
	return s.buf
}

// Complete commits the buffer. Calling it more than once is harmless.
func (s *ScopedBuffer) Complete() {
	if !s.buf.IsCommitted() {
		s.buf.Commit()
	}
}

// Bytes returns the buffer contents. Must be called after Complete().
func (s *ScopedBuffer) Bytes() []byte {
	if !s.buf.IsCommitted() {
		panic(fmt.Sprintf("ScopedBuffer(%s): Must call Complete() before reading", s.buf.Name()))
	}
	return s.buf.Bytes()
}
