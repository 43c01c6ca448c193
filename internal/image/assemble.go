package image

import (
	"fmt"
	"os"

	"github.com/xyproto/teensy/internal/amd64"
	"github.com/xyproto/teensy/internal/buffer"
	"github.com/xyproto/teensy/internal/elf64"
	"github.com/xyproto/teensy/internal/engine"
)

// Assemble returns the complete executable image for payload loaded at base:
// file header, program header, then the payload bytes. The result has been
// re-parsed and validated before it is returned.
func Assemble(base uint64, payload []byte) ([]byte, error) {
	machine, err := engine.ELFMachine(engine.DefaultTarget.Arch)
	if err != nil {
		return nil, err
	}

	l := Plan(base, len(payload))
	if err := l.Check(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	hdr, ph := l.Headers(machine)

	var headers [ProgramOffset]byte
	hdr.Put(headers[:elf64.HeaderSize])
	ph.Put(headers[elf64.HeaderSize:])

	sb := buffer.NewSafeBufferSize("elf", int(l.FileSize))
	sb.Write(headers[:])
	sb.Write(payload)
	sb.Commit()

	if uint64(sb.Len()) != l.FileSize {
		return nil, fmt.Errorf("assembled %d bytes, layout says %d", sb.Len(), l.FileSize)
	}
	if _, err := Validate(sb.Bytes()); err != nil {
		return nil, err
	}

	if engine.VerboseMode {
		fmt.Fprintf(os.Stderr, "ELF complete: %d bytes\n", sb.Len())
	}
	return sb.Bytes(), nil
}

// Build generates the exit(0) payload in the given style and assembles it
// at LoadBase.
func Build(style amd64.Style) ([]byte, error) {
	payload, err := amd64.ExitSequence(style)
	if err != nil {
		return nil, err
	}
	return Assemble(LoadBase, payload)
}
