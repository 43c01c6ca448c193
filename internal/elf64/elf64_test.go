package elf64

import (
	"bytes"
	"debug/elf"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordSizes(t *testing.T) {
	require.Equal(t, 16, IdentSize)
	require.Equal(t, 64, HeaderSize)
	require.Equal(t, 56, ProgHeaderSize)
	require.Len(t, NewIdent().Bytes(), IdentSize)
	require.Len(t, FileHeader{}.Bytes(), HeaderSize)
	require.Len(t, ProgHeader{}.Bytes(), ProgHeaderSize)
}

func TestIdentBytes(t *testing.T) {
	want := []byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	require.Equal(t, want, NewIdent().Bytes())
}

func TestIdentPutClearsPadding(t *testing.T) {
	b := bytes.Repeat([]byte{0xaa}, IdentSize)
	NewIdent().Put(b)
	require.Equal(t, make([]byte, identPadLen), b[identPad:])
}

func TestReadIdentRejectsBadMagic(t *testing.T) {
	b := NewIdent().Bytes()
	b[1] = 'X'
	_, err := ReadIdent(b)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestExecHeaderBytes(t *testing.T) {
	h := NewExecHeader(elf.EM_X86_64, 0x400078)
	b := h.Bytes()

	require.Equal(t, NewIdent().Bytes(), b[:16])
	require.Equal(t, []byte{2, 0}, b[16:18], "e_type")
	require.Equal(t, []byte{62, 0}, b[18:20], "e_machine")
	require.Equal(t, []byte{1, 0, 0, 0}, b[20:24], "e_version")
	require.Equal(t, []byte{0x78, 0, 0x40, 0, 0, 0, 0, 0}, b[24:32], "e_entry")
	require.Equal(t, []byte{64, 0, 0, 0, 0, 0, 0, 0}, b[32:40], "e_phoff")
	require.Equal(t, make([]byte, 8), b[40:48], "e_shoff")
	require.Equal(t, make([]byte, 4), b[48:52], "e_flags")
	require.Equal(t, []byte{64, 0}, b[52:54], "e_ehsize")
	require.Equal(t, []byte{56, 0}, b[54:56], "e_phentsize")
	require.Equal(t, []byte{1, 0}, b[56:58], "e_phnum")
	require.Equal(t, make([]byte, 6), b[58:64], "section fields")
}

func TestLoadSegmentBytes(t *testing.T) {
	p := NewLoadSegment(120, 0x400078, 7)
	b := p.Bytes()

	require.Equal(t, []byte{1, 0, 0, 0}, b[0:4], "p_type")
	require.Equal(t, []byte{7, 0, 0, 0}, b[4:8], "p_flags")
	require.Equal(t, []byte{120, 0, 0, 0, 0, 0, 0, 0}, b[8:16], "p_offset")
	require.Equal(t, b[16:24], b[24:32], "p_paddr mirrors p_vaddr")
	require.Equal(t, []byte{7, 0, 0, 0, 0, 0, 0, 0}, b[32:40], "p_filesz")
	require.Equal(t, b[32:40], b[40:48], "p_memsz equals p_filesz")
	require.Equal(t, []byte{0, 0x10, 0, 0, 0, 0, 0, 0}, b[48:56], "p_align")
}

func TestRoundTrip(t *testing.T) {
	h := NewExecHeader(elf.EM_X86_64, 0xdeadbeef00)
	h.Flags = 0x12345678
	gotH, err := ReadFileHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h, gotH)

	p := NewLoadSegment(0x1122, 0x33445566778899, 1<<40)
	gotP, err := ReadProgHeader(p.Bytes())
	require.NoError(t, err)
	require.Equal(t, p, gotP)
}

func TestReadShortInput(t *testing.T) {
	_, err := ReadFileHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, ErrShortRecord)
	_, err = ReadProgHeader(nil)
	require.ErrorIs(t, err, ErrShortRecord)
	_, err = ReadIdent(magic[:])
	require.ErrorIs(t, err, ErrShortRecord)
}

func TestPutPanicsOnSmallStorage(t *testing.T) {
	require.Panics(t, func() { FileHeader{}.Put(make([]byte, HeaderSize-1)) })
	require.Panics(t, func() { ProgHeader{}.Put(make([]byte, 8)) })
}

func TestHalf(t *testing.T) {
	require.Equal(t, uint16(0xffff), Half(0xffff))
	require.Panics(t, func() { Half(0x10000) })
}

// The standard library reader must agree with our encoder.
func TestDebugELFAcceptsHeaders(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(NewExecHeader(elf.EM_X86_64, 0x400078).Bytes())
	buf.Write(NewLoadSegment(HeaderSize+ProgHeaderSize, 0x400078, 0).Bytes())

	f, err := elf.NewFile(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, elf.ELFCLASS64, f.Class)
	require.Equal(t, elf.ELFDATA2LSB, f.Data)
	require.Equal(t, elf.ET_EXEC, f.Type)
	require.Equal(t, elf.EM_X86_64, f.Machine)
	require.Equal(t, uint64(0x400078), f.Entry)
	require.Len(t, f.Progs, 1)
	require.Equal(t, elf.PT_LOAD, f.Progs[0].Type)
	require.Empty(t, f.Sections)
}
