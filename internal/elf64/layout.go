// Package elf64 holds byte-exact encoders and decoders for the three ELF64
// records a single-segment executable needs: the identification block, the
// file header and a program header. All fields are little-endian.
package elf64

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var le = binary.LittleEndian

var (
	ErrShortRecord = errors.New("record truncated")
	ErrBadMagic    = errors.New("not an ELF file")
)

// e_ident
const (
	identMag        = 0
	identClass      = identMag + 4
	identData       = identClass + 1
	identVersion    = identData + 1
	identOSABI      = identVersion + 1
	identABIVersion = identOSABI + 1
	identPad        = identABIVersion + 1
	identPadLen     = 7

	IdentSize = identPad + identPadLen
)

// Elf64_Ehdr
const (
	hdrIdent     = 0
	hdrType      = hdrIdent + IdentSize
	hdrMachine   = hdrType + 2
	hdrVersion   = hdrMachine + 2
	hdrEntry     = hdrVersion + 4
	hdrPhoff     = hdrEntry + 8
	hdrShoff     = hdrPhoff + 8
	hdrFlags     = hdrShoff + 8
	hdrEhsize    = hdrFlags + 4
	hdrPhentsize = hdrEhsize + 2
	hdrPhnum     = hdrPhentsize + 2
	hdrShentsize = hdrPhnum + 2
	hdrShnum     = hdrShentsize + 2
	hdrShstrndx  = hdrShnum + 2

	HeaderSize = hdrShstrndx + 2
)

// Elf64_Phdr
const (
	phType   = 0
	phFlags  = phType + 4
	phOffset = phFlags + 4
	phVaddr  = phOffset + 8
	phPaddr  = phVaddr + 8
	phFilesz = phPaddr + 8
	phMemsz  = phFilesz + 8
	phAlign  = phMemsz + 8

	ProgHeaderSize = phAlign + 8
)

// PageSize is the segment alignment used for PT_LOAD.
const PageSize = 0x1000

// The record sizes are fixed by the ELF64 ABI. Each pair fails to compile
// if an offset table above stops adding up to it.
var (
	_ [IdentSize - 16]struct{}
	_ [16 - IdentSize]struct{}
	_ [HeaderSize - 64]struct{}
	_ [64 - HeaderSize]struct{}
	_ [ProgHeaderSize - 56]struct{}
	_ [56 - ProgHeaderSize]struct{}
)

// Half narrows a size or count to an Elf64_Half field.
// A value that does not fit is a construction bug, so it panics.
func Half(v uint64) uint16 {
	if v > math.MaxUint16 {
		panic(fmt.Sprintf("elf64: %d does not fit in a 16-bit header field", v))
	}
	return uint16(v)
}

func mustFit(what string, b []byte, size int) {
	if len(b) < size {
		panic(fmt.Sprintf("elf64: %s needs %d bytes of storage, got %d", what, size, len(b)))
	}
}

func checkLen(what string, b []byte, size int) error {
	if len(b) < size {
		return fmt.Errorf("%s: %w: need %d bytes, have %d", what, ErrShortRecord, size, len(b))
	}
	return nil
}
