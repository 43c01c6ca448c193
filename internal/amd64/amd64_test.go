package amd64

import (
	"bytes"
	"testing"

	"github.com/xyproto/teensy/internal/buffer"
)

func assemble(t *testing.T, emit func(o *Out)) []byte {
	t.Helper()
	buf := buffer.NewSafeBuffer("test")
	o := NewOut(buf)
	emit(o)
	if err := o.Err(); err != nil {
		t.Fatalf("Unexpected encoding error: %v", err)
	}
	return buf.Bytes()
}

func TestEncodings(t *testing.T) {
	tests := []struct {
		name string
		emit func(o *Out)
		want []byte
	}{
		{"push 60", func(o *Out) { o.PushImm(60) }, []byte{0x6a, 0x3c}},
		{"push -1", func(o *Out) { o.PushImm(-1) }, []byte{0x6a, 0xff}},
		{"push 0x1000", func(o *Out) { o.PushImm(0x1000) }, []byte{0x68, 0x00, 0x10, 0x00, 0x00}},
		{"pop rax", func(o *Out) { o.PopReg("rax") }, []byte{0x58}},
		{"pop r12", func(o *Out) { o.PopReg("r12") }, []byte{0x41, 0x5c}},
		{"mov eax, 60", func(o *Out) { o.MovImmToReg("eax", 60) }, []byte{0xb8, 0x3c, 0x00, 0x00, 0x00}},
		{"mov r9d, 1", func(o *Out) { o.MovImmToReg("r9d", 1) }, []byte{0x41, 0xb9, 0x01, 0x00, 0x00, 0x00}},
		{"mov rdi, -1", func(o *Out) { o.MovImmToReg("rdi", -1) }, []byte{0x48, 0xc7, 0xc7, 0xff, 0xff, 0xff, 0xff}},
		{"xor edi, edi", func(o *Out) { o.XorRegWithReg("edi", "edi") }, []byte{0x31, 0xff}},
		{"xor rax, rax", func(o *Out) { o.XorRegWithReg("rax", "rax") }, []byte{0x48, 0x31, 0xc0}},
		{"xor r8, rdi", func(o *Out) { o.XorRegWithReg("r8", "rdi") }, []byte{0x49, 0x31, 0xf8}},
		{"xor r10d, r10d", func(o *Out) { o.XorRegWithReg("r10d", "r10d") }, []byte{0x45, 0x31, 0xd2}},
		{"syscall", func(o *Out) { o.Syscall() }, []byte{0x0f, 0x05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assemble(t, tt.emit)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("%s: got % x, want % x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodingErrors(t *testing.T) {
	tests := []struct {
		name string
		emit func(o *Out)
	}{
		{"unknown register", func(o *Out) { o.PopReg("xyz") }},
		{"pop 32-bit register", func(o *Out) { o.PopReg("eax") }},
		{"push out of range", func(o *Out) { o.PushImm(1 << 40) }},
		{"mov imm64 into r32", func(o *Out) { o.MovImmToReg("eax", 1<<33) }},
		{"mov imm64 into r64", func(o *Out) { o.MovImmToReg("rax", 1<<31) }},
		{"xor size mismatch", func(o *Out) { o.XorRegWithReg("rax", "edi") }},
		{"unknown style", func(o *Out) { o.SysExit(Style(42), 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewSafeBuffer("test")
			o := NewOut(buf)
			tt.emit(o)
			if o.Err() == nil {
				t.Fatal("Expected an encoding error")
			}
			if buf.Len() != 0 {
				t.Errorf("Expected nothing emitted on error, got % x", buf.Bytes())
			}
		})
	}
}

func TestOutKeepsFirstError(t *testing.T) {
	o := NewOut(buffer.NewSafeBuffer("test"))
	o.PopReg("first")
	o.PopReg("second")
	if o.Err() == nil || o.Err().Error() != "unknown register: first" {
		t.Errorf("Expected first error to be kept, got %v", o.Err())
	}
}

func TestExitSequencePushPop(t *testing.T) {
	code, err := ExitSequence(StylePushPop)
	if err != nil {
		t.Fatalf("ExitSequence failed: %v", err)
	}
	want := []byte{0x6a, 0x3c, 0x58, 0x31, 0xff, 0x0f, 0x05}
	if !bytes.Equal(code, want) {
		t.Errorf("got % x, want % x", code, want)
	}
	if len(code) != 7 {
		t.Errorf("Expected 7 bytes, got %d", len(code))
	}
}

func TestExitSequenceMovImm(t *testing.T) {
	code, err := ExitSequence(StyleMovImm)
	if err != nil {
		t.Fatalf("ExitSequence failed: %v", err)
	}
	want := []byte{0xb8, 0x3c, 0x00, 0x00, 0x00, 0x31, 0xff, 0x0f, 0x05}
	if !bytes.Equal(code, want) {
		t.Errorf("got % x, want % x", code, want)
	}
}

func TestExitSequenceDeterministic(t *testing.T) {
	a, _ := ExitSequence(StylePushPop)
	b, _ := ExitSequence(StylePushPop)
	if !bytes.Equal(a, b) {
		t.Errorf("Expected identical output, got % x and % x", a, b)
	}
}

func TestExitSequenceUnknownStyle(t *testing.T) {
	if _, err := ExitSequence(Style(9)); err == nil {
		t.Error("Expected error for unknown style")
	}
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]Style{
		"":     StylePushPop,
		"push": StylePushPop,
		"MOV":  StyleMovImm,
	} {
		got, err := ParseStyle(in)
		if err != nil {
			t.Fatalf("ParseStyle(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseStyle(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseStyle("jmp"); err == nil {
		t.Error("Expected error for unknown style")
	}
}
