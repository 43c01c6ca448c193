package elf64

import (
	"debug/elf"
	"fmt"
)

var magic = [4]byte{0x7f, 'E', 'L', 'F'}

// Ident is e_ident. The magic and the padding are implied.
type Ident struct {
	Class      elf.Class
	Data       elf.Data
	Version    elf.Version
	OSABI      elf.OSABI
	ABIVersion uint8
}

// NewIdent returns the identification block of a 64-bit little-endian
// System V object.
func NewIdent() Ident {
	return Ident{
		Class:      elf.ELFCLASS64,
		Data:       elf.ELFDATA2LSB,
		Version:    elf.EV_CURRENT,
		OSABI:      elf.ELFOSABI_NONE,
		ABIVersion: 0,
	}
}

// Put encodes the block into b[:IdentSize].
func (id Ident) Put(b []byte) {
	mustFit("ident", b, IdentSize)
	copy(b[identMag:], magic[:])
	b[identClass] = byte(id.Class)
	b[identData] = byte(id.Data)
	b[identVersion] = byte(id.Version)
	b[identOSABI] = byte(id.OSABI)
	b[identABIVersion] = id.ABIVersion
	clear(b[identPad:IdentSize])
}

// Bytes returns the encoded block.
func (id Ident) Bytes() []byte {
	b := make([]byte, IdentSize)
	id.Put(b)
	return b
}

// ReadIdent decodes the block at the start of b.
func ReadIdent(b []byte) (Ident, error) {
	if err := checkLen("ident", b, IdentSize); err != nil {
		return Ident{}, err
	}
	if [4]byte(b[identMag:identClass]) != magic {
		return Ident{}, fmt.Errorf("%w: magic % x", ErrBadMagic, b[identMag:identClass])
	}
	return Ident{
		Class:      elf.Class(b[identClass]),
		Data:       elf.Data(b[identData]),
		Version:    elf.Version(b[identVersion]),
		OSABI:      elf.OSABI(b[identOSABI]),
		ABIVersion: b[identABIVersion],
	}, nil
}
