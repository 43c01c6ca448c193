// Completion: 100% - Instruction implementation complete
package amd64

import "math"

// PushImm pushes a sign-extended immediate onto the stack.
func (o *Out) PushImm(imm int64) {
	traceStart("push %d", imm)
	defer traceEnd()

	switch {
	case imm >= math.MinInt8 && imm <= math.MaxInt8:
		// PUSH imm8: 6A ib
		o.Write(0x6A)
		o.Write(uint8(int8(imm)))
	case imm >= math.MinInt32 && imm <= math.MaxInt32:
		// PUSH imm32: 68 id
		o.Write(0x68)
		o.WriteUnsigned(uint32(int32(imm)))
	default:
		o.fail("push: immediate %d does not fit in 32 bits", imm)
	}
}

// PopReg pops the top of the stack into a 64-bit register.
func (o *Out) PopReg(reg string) {
	r, ok := o.register(reg)
	if !ok {
		return
	}
	if r.Size != 64 {
		o.fail("pop: %s is not a 64-bit register", reg)
		return
	}

	traceStart("pop %s", reg)
	defer traceEnd()

	// POP uses compact encoding: 0x58 + reg
	if r.Extended() {
		o.Write(0x41) // REX.B
	}
	o.Write(0x58 + r.Encoding&7)
}
