// Package amd64 hand-encodes the handful of x86-64 instructions teensy
// emits. Each encoder appends to an Out; the first encoding problem is
// kept and reported by Err.
package amd64

import (
	"fmt"
	"os"

	"github.com/xyproto/teensy/internal/buffer"
	"github.com/xyproto/teensy/internal/engine"
)

// Out emits machine code into a SafeBuffer.
type Out struct {
	buf *buffer.SafeBuffer
	err error
}

// NewOut creates an emitter writing to buf.
func NewOut(buf *buffer.SafeBuffer) *Out {
	return &Out{buf: buf}
}

func (o *Out) Write(b uint8) {
	o.buf.WriteByte(b)
	if engine.VerboseMode {
		fmt.Fprintf(os.Stderr, " %x", b)
	}
}

// WriteUnsigned writes a 32-bit little-endian immediate.
func (o *Out) WriteUnsigned(i uint32) {
	o.Write(uint8(i & 0xff))
	o.Write(uint8((i >> 8) & 0xff))
	o.Write(uint8((i >> 16) & 0xff))
	o.Write(uint8((i >> 24) & 0xff))
}

// Len returns the number of bytes emitted so far.
func (o *Out) Len() int {
	return o.buf.Len()
}

// Err returns the first encoding error, if any.
func (o *Out) Err() error {
	return o.err
}

func (o *Out) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf(format, args...)
	}
}

func (o *Out) register(name string) (Register, bool) {
	reg, ok := GetRegister(name)
	if !ok {
		o.fail("unknown register: %s", name)
	}
	return reg, ok
}

func traceStart(format string, args ...any) {
	if engine.VerboseMode {
		fmt.Fprintf(os.Stderr, format+":", args...)
	}
}

func traceEnd() {
	if engine.VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}
