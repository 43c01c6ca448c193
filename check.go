package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xyproto/teensy/internal/image"
)

// check validates an existing file and prints its decoded headers.
func check(path string, stdout, stderr io.Writer) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if img, err := image.Parse(data); err == nil {
		describe(stdout, path, img, len(data))
	}
	if _, err := image.Validate(data); err != nil {
		fmt.Fprintf(stderr, "Error: %s: %v\n", path, err)
		return 1
	}
	fmt.Fprintf(stdout, "%s: ok\n", path)
	return 0
}

func describe(w io.Writer, path string, img image.Image, size int) {
	h, p := img.Header, img.Prog
	fmt.Fprintf(w, "%s: %d bytes\n", path, size)
	fmt.Fprintf(w, "  class=%v data=%v osabi=%v type=%v machine=%v\n",
		h.Ident.Class, h.Ident.Data, h.Ident.OSABI, h.Type, h.Machine)
	fmt.Fprintf(w, "  base=0x%x entry=0x%x phoff=%d ehsize=%d phentsize=%d phnum=%d shnum=%d\n",
		img.Base(), h.Entry, h.Phoff, h.Ehsize, h.Phentsize, h.Phnum, h.Shnum)
	fmt.Fprintf(w, "  %v flags=%v offset=%d vaddr=0x%x filesz=%d memsz=%d align=0x%x\n",
		p.Type, p.Flags, p.Offset, p.Vaddr, p.Filesz, p.Memsz, p.Align)
	fmt.Fprintf(w, "  code: % x\n", img.Payload)
}
