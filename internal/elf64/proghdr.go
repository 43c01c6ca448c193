package elf64

import "debug/elf"

// ProgHeader is Elf64_Phdr.
type ProgHeader struct {
	Type   elf.ProgType
	Flags  elf.ProgFlag
	Offset uint64 // location of the segment in the file
	Vaddr  uint64
	Paddr  uint64 // ignored by the loader, mirrors Vaddr
	Filesz uint64
	Memsz  uint64
	Align  uint64
}

// NewLoadSegment describes a readable, writable and executable PT_LOAD
// segment of size bytes found at offset in the file and mapped at vaddr.
func NewLoadSegment(offset, vaddr, size uint64) ProgHeader {
	return ProgHeader{
		Type:   elf.PT_LOAD,
		Flags:  elf.PF_R | elf.PF_W | elf.PF_X,
		Offset: offset,
		Vaddr:  vaddr,
		Paddr:  vaddr,
		Filesz: size,
		Memsz:  size,
		Align:  PageSize,
	}
}

// Put encodes the program header into b[:ProgHeaderSize].
func (p ProgHeader) Put(b []byte) {
	mustFit("program header", b, ProgHeaderSize)
	le.PutUint32(b[phType:], uint32(p.Type))
	le.PutUint32(b[phFlags:], uint32(p.Flags))
	le.PutUint64(b[phOffset:], p.Offset)
	le.PutUint64(b[phVaddr:], p.Vaddr)
	le.PutUint64(b[phPaddr:], p.Paddr)
	le.PutUint64(b[phFilesz:], p.Filesz)
	le.PutUint64(b[phMemsz:], p.Memsz)
	le.PutUint64(b[phAlign:], p.Align)
}

// Bytes returns the encoded program header.
func (p ProgHeader) Bytes() []byte {
	b := make([]byte, ProgHeaderSize)
	p.Put(b)
	return b
}

// ReadProgHeader decodes the program header at the start of b.
func ReadProgHeader(b []byte) (ProgHeader, error) {
	if err := checkLen("program header", b, ProgHeaderSize); err != nil {
		return ProgHeader{}, err
	}
	return ProgHeader{
		Type:   elf.ProgType(le.Uint32(b[phType:])),
		Flags:  elf.ProgFlag(le.Uint32(b[phFlags:])),
		Offset: le.Uint64(b[phOffset:]),
		Vaddr:  le.Uint64(b[phVaddr:]),
		Paddr:  le.Uint64(b[phPaddr:]),
		Filesz: le.Uint64(b[phFilesz:]),
		Memsz:  le.Uint64(b[phMemsz:]),
		Align:  le.Uint64(b[phAlign:]),
	}, nil
}
