package amd64

import (
	"fmt"
	"os"
	"strings"

	"github.com/xyproto/teensy/internal/buffer"
	"github.com/xyproto/teensy/internal/engine"
)

// Style selects how the exit sequence loads the syscall number.
type Style int

const (
	// StylePushPop: push 60; pop rax (3 bytes)
	StylePushPop Style = iota
	// StyleMovImm: mov eax, 60 (5 bytes)
	StyleMovImm
)

func (s Style) String() string {
	switch s {
	case StylePushPop:
		return "push"
	case StyleMovImm:
		return "mov"
	default:
		return "unknown"
	}
}

// ParseStyle parses "push" or "mov".
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "push", "pushpop", "push-pop", "":
		return StylePushPop, nil
	case "mov", "movimm":
		return StyleMovImm, nil
	default:
		return 0, fmt.Errorf("unknown exit style: %q (supported: push, mov)", s)
	}
}

// SysExit emits exit(code). rdi is always written so nothing depends on
// the register state the loader hands over.
func (o *Out) SysExit(style Style, code int32) {
	switch style {
	case StylePushPop:
		o.PushImm(SysExit)
		o.PopReg("rax")
	case StyleMovImm:
		o.MovImmToReg("eax", SysExit)
	default:
		o.fail("unknown exit style: %d", style)
		return
	}
	if code == 0 {
		o.XorRegWithReg("edi", "edi")
	} else {
		o.MovImmToReg("edi", int64(code))
	}
	o.Syscall()
}

// ExitSequence returns the machine code of a program that calls exit(0).
func ExitSequence(style Style) ([]byte, error) {
	scope := buffer.NewScopedBuffer("text")
	defer scope.Complete()

	o := NewOut(scope.Buffer())
	o.SysExit(style, 0)
	if err := o.Err(); err != nil {
		return nil, fmt.Errorf("assembling exit sequence: %w", err)
	}
	scope.Complete()

	if engine.VerboseMode {
		fmt.Fprintf(os.Stderr, "exit sequence (%s): %d bytes\n", style, o.Len())
	}
	return scope.Bytes(), nil
}
