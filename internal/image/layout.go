// Package image lays out and assembles a single-segment ELF64 executable:
// the file header, one PT_LOAD program header and the code that follows them.
package image

import (
	"debug/elf"
	"fmt"
	"os"

	"github.com/xyproto/teensy/internal/elf64"
	"github.com/xyproto/teensy/internal/engine"
)

const (
	// LoadBase is where a static non-PIE x86-64 executable is mapped.
	LoadBase = 0x400000

	// ProgramOffset is the file offset of the payload: it directly follows
	// the file header and the single program header.
	ProgramOffset = elf64.HeaderSize + elf64.ProgHeaderSize
)

// Layout holds every offset and address that the two headers must agree on.
type Layout struct {
	Base      uint64 // virtual address of file offset 0
	Entry     uint64
	Phoff     uint64
	SegOffset uint64
	SegVaddr  uint64
	SegSize   uint64
	FileSize  uint64
}

// Plan computes the layout of an image with a payload of payloadLen bytes
// loaded at base.
func Plan(base uint64, payloadLen int) Layout {
	if payloadLen < 0 {
		panic(fmt.Sprintf("image: negative payload length %d", payloadLen))
	}
	size := uint64(payloadLen)
	l := Layout{
		Base:      base,
		Entry:     base + ProgramOffset,
		Phoff:     elf64.HeaderSize,
		SegOffset: ProgramOffset,
		SegVaddr:  base + ProgramOffset,
		SegSize:   size,
		FileSize:  ProgramOffset + size,
	}
	if engine.VerboseMode {
		fmt.Fprintf(os.Stderr, "=== ELF Layout (baseAddr=0x%x) ===\n", l.Base)
		fmt.Fprintf(os.Stderr, "  entry=0x%x phoff=0x%x\n", l.Entry, l.Phoff)
		fmt.Fprintf(os.Stderr, "  text: offset=0x%x addr=0x%x size=%d\n", l.SegOffset, l.SegVaddr, l.SegSize)
	}
	return l
}

// Check verifies that the layout fields are mutually consistent.
func (l Layout) Check() error {
	switch {
	case l.Base%elf64.PageSize != 0:
		return fmt.Errorf("load base 0x%x is not page aligned", l.Base)
	case l.Phoff != elf64.HeaderSize:
		return fmt.Errorf("program header offset %d, want %d", l.Phoff, elf64.HeaderSize)
	case l.SegOffset != ProgramOffset:
		return fmt.Errorf("segment offset %d, want %d", l.SegOffset, ProgramOffset)
	case l.SegVaddr != l.Base+l.SegOffset:
		return fmt.Errorf("segment address 0x%x, want 0x%x", l.SegVaddr, l.Base+l.SegOffset)
	case l.Entry != l.SegVaddr:
		return fmt.Errorf("entry 0x%x is not the start of the segment at 0x%x", l.Entry, l.SegVaddr)
	case l.FileSize != l.SegOffset+l.SegSize:
		return fmt.Errorf("file size %d, want %d", l.FileSize, l.SegOffset+l.SegSize)
	}
	return nil
}

// Headers returns the file header and program header for this layout.
func (l Layout) Headers(machine elf.Machine) (elf64.FileHeader, elf64.ProgHeader) {
	return elf64.NewExecHeader(machine, l.Entry),
		elf64.NewLoadSegment(l.SegOffset, l.SegVaddr, l.SegSize)
}
