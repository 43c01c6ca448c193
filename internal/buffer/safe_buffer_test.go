package buffer

import (
	"testing"
)

func TestSafeBufferBasicUsage(t *testing.T) {
	sb := NewSafeBuffer("test")

	sb.Write([]byte("hello"))
	if sb.Len() != 5 {
		t.Errorf("Expected length 5, got %d", sb.Len())
	}

	sb.Commit()

	// Reading is safe after commit
	if string(sb.Bytes()) != "hello" {
		t.Errorf("Expected 'hello', got '%s'", string(sb.Bytes()))
	}
	if !sb.IsCommitted() {
		t.Error("Buffer should report committed")
	}
}

func TestSafeBufferPreventsWriteAfterCommit(t *testing.T) {
	sb := NewSafeBuffer("test")
	sb.Write([]byte("data"))
	sb.Commit()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when writing to committed buffer")
		}
	}()

	sb.Write([]byte("more"))
}

func TestSafeBufferPreventsWriteByteAfterCommit(t *testing.T) {
	sb := NewSafeBuffer("test")
	sb.Commit()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when writing a byte to committed buffer")
		}
	}()

	sb.WriteByte(0x90)
}

func TestSafeBufferSize(t *testing.T) {
	sb := NewSafeBufferSize("elf", 120)
	if sb.Len() != 0 {
		t.Fatalf("Expected empty buffer, got %d bytes", sb.Len())
	}
	if sb.Name() != "elf" {
		t.Errorf("Expected name 'elf', got %q", sb.Name())
	}
}

func TestScopedBuffer(t *testing.T) {
	scope := NewScopedBuffer("test")
	defer scope.Complete()

	scope.Buffer().Write([]byte("scoped data"))
	scope.Complete()

	if string(scope.Bytes()) != "scoped data" {
		t.Errorf("Expected 'scoped data', got '%s'", string(scope.Bytes()))
	}
}

func TestScopedBufferMustCompleteBeforeRead(t *testing.T) {
	scope := NewScopedBuffer("test")
	scope.Buffer().Write([]byte("data"))

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when reading uncommitted scoped buffer")
		}
	}()

	_ = scope.Bytes()
}
