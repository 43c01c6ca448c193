package image

import (
	"debug/elf"
	"errors"
	"fmt"

	"github.com/xyproto/teensy/internal/elf64"
	"github.com/xyproto/teensy/internal/engine"
)

// ErrInvalidImage wraps every invariant violation reported by Validate.
var ErrInvalidImage = errors.New("invalid image")

// Image is a decoded executable.
type Image struct {
	Header  elf64.FileHeader
	Prog    elf64.ProgHeader
	Payload []byte
}

// Base is the virtual address at which file offset 0 is mapped.
func (img Image) Base() uint64 {
	return img.Prog.Vaddr - img.Prog.Offset
}

// Parse decodes the headers of buf without checking them.
func Parse(buf []byte) (Image, error) {
	hdr, err := elf64.ReadFileHeader(buf)
	if err != nil {
		return Image{}, err
	}
	if hdr.Phoff > uint64(len(buf)) {
		return Image{}, fmt.Errorf("program header offset %d beyond end of file (%d bytes): %w", hdr.Phoff, len(buf), elf64.ErrShortRecord)
	}
	ph, err := elf64.ReadProgHeader(buf[hdr.Phoff:])
	if err != nil {
		return Image{}, err
	}
	img := Image{Header: hdr, Prog: ph}
	if ph.Offset <= uint64(len(buf)) {
		img.Payload = buf[ph.Offset:]
	}
	return img, nil
}

// Validate parses buf and checks it against the single-segment layout.
// All violations are reported together.
func Validate(buf []byte) (Image, error) {
	img, err := Parse(buf)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	if errs := img.violations(uint64(len(buf))); len(errs) > 0 {
		return img, fmt.Errorf("%w: %w", ErrInvalidImage, errors.Join(errs...))
	}
	return img, nil
}

func (img Image) violations(fileSize uint64) []error {
	var errs []error
	expect := func(what string, got, want any) {
		if got != want {
			errs = append(errs, fmt.Errorf("%s is %v, want %v", what, got, want))
		}
	}

	h, p := img.Header, img.Prog
	machine, err := engine.ELFMachine(engine.DefaultTarget.Arch)
	if err != nil {
		return []error{err}
	}

	expect("identification", h.Ident, elf64.NewIdent())
	expect("file type", h.Type, elf.ET_EXEC)
	expect("machine", h.Machine, machine)
	expect("version", h.Version, elf.EV_CURRENT)
	expect("program header offset", h.Phoff, uint64(elf64.HeaderSize))
	expect("section header offset", h.Shoff, uint64(0))
	expect("flags", h.Flags, uint32(0))
	expect("header size", h.Ehsize, uint16(elf64.HeaderSize))
	expect("program header entry size", h.Phentsize, uint16(elf64.ProgHeaderSize))
	expect("program header count", h.Phnum, uint16(1))
	expect("section header entry size", h.Shentsize, uint16(0))
	expect("section header count", h.Shnum, uint16(0))
	expect("section name table index", h.Shstrndx, uint16(0))

	expect("segment type", p.Type, elf.PT_LOAD)
	expect("segment flags", p.Flags, elf.PF_R|elf.PF_W|elf.PF_X)
	expect("segment offset", p.Offset, uint64(ProgramOffset))
	expect("segment physical address", p.Paddr, p.Vaddr)
	expect("segment memory size", p.Memsz, p.Filesz)
	expect("segment alignment", p.Align, uint64(elf64.PageSize))
	expect("entry", h.Entry, p.Vaddr)
	expect("file size", fileSize, p.Offset+p.Filesz)

	if p.Align == 0 || p.Align&(p.Align-1) != 0 {
		errs = append(errs, fmt.Errorf("segment alignment %d is not a power of two", p.Align))
	} else if p.Vaddr%p.Align != p.Offset%p.Align {
		errs = append(errs, fmt.Errorf("segment address 0x%x and offset 0x%x disagree modulo 0x%x", p.Vaddr, p.Offset, p.Align))
	}
	return errs
}
