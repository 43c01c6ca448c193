package elf64

import "debug/elf"

// FileHeader is Elf64_Ehdr.
type FileHeader struct {
	Ident     Ident
	Type      elf.Type
	Machine   elf.Machine
	Version   elf.Version
	Entry     uint64 // virtual address of the entry point
	Phoff     uint64 // program header table file offset
	Shoff     uint64 // section header table file offset
	Flags     uint32 // processor-specific
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

// NewExecHeader returns the header of a static executable for machine whose
// program header table holds one entry right after this header and which
// has no sections.
func NewExecHeader(machine elf.Machine, entry uint64) FileHeader {
	return FileHeader{
		Ident:     NewIdent(),
		Type:      elf.ET_EXEC,
		Machine:   machine,
		Version:   elf.EV_CURRENT,
		Entry:     entry,
		Phoff:     HeaderSize,
		Ehsize:    Half(HeaderSize),
		Phentsize: Half(ProgHeaderSize),
		Phnum:     1,
	}
}

// Put encodes the header into b[:HeaderSize].
func (h FileHeader) Put(b []byte) {
	mustFit("file header", b, HeaderSize)
	h.Ident.Put(b[hdrIdent:])
	le.PutUint16(b[hdrType:], uint16(h.Type))
	le.PutUint16(b[hdrMachine:], uint16(h.Machine))
	le.PutUint32(b[hdrVersion:], uint32(h.Version))
	le.PutUint64(b[hdrEntry:], h.Entry)
	le.PutUint64(b[hdrPhoff:], h.Phoff)
	le.PutUint64(b[hdrShoff:], h.Shoff)
	le.PutUint32(b[hdrFlags:], h.Flags)
	le.PutUint16(b[hdrEhsize:], h.Ehsize)
	le.PutUint16(b[hdrPhentsize:], h.Phentsize)
	le.PutUint16(b[hdrPhnum:], h.Phnum)
	le.PutUint16(b[hdrShentsize:], h.Shentsize)
	le.PutUint16(b[hdrShnum:], h.Shnum)
	le.PutUint16(b[hdrShstrndx:], h.Shstrndx)
}

// Bytes returns the encoded header.
func (h FileHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.Put(b)
	return b
}

// ReadFileHeader decodes the header at the start of b.
func ReadFileHeader(b []byte) (FileHeader, error) {
	if err := checkLen("file header", b, HeaderSize); err != nil {
		return FileHeader{}, err
	}
	id, err := ReadIdent(b[hdrIdent:])
	if err != nil {
		return FileHeader{}, err
	}
	return FileHeader{
		Ident:     id,
		Type:      elf.Type(le.Uint16(b[hdrType:])),
		Machine:   elf.Machine(le.Uint16(b[hdrMachine:])),
		Version:   elf.Version(le.Uint32(b[hdrVersion:])),
		Entry:     le.Uint64(b[hdrEntry:]),
		Phoff:     le.Uint64(b[hdrPhoff:]),
		Shoff:     le.Uint64(b[hdrShoff:]),
		Flags:     le.Uint32(b[hdrFlags:]),
		Ehsize:    le.Uint16(b[hdrEhsize:]),
		Phentsize: le.Uint16(b[hdrPhentsize:]),
		Phnum:     le.Uint16(b[hdrPhnum:]),
		Shentsize: le.Uint16(b[hdrShentsize:]),
		Shnum:     le.Uint16(b[hdrShnum:]),
		Shstrndx:  le.Uint16(b[hdrShstrndx:]),
	}, nil
}
