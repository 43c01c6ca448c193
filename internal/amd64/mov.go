// Completion: 100% - Instruction implementation complete
package amd64

import "math"

// MovImmToReg loads imm into dst. 32-bit destinations use the short
// B8+rd form, which zero-extends into the full register. 64-bit
// destinations use C7 /0 with a sign-extended imm32.
func (o *Out) MovImmToReg(dst string, imm int64) {
	r, ok := o.register(dst)
	if !ok {
		return
	}

	switch r.Size {
	case 32:
		if imm < math.MinInt32 || imm > math.MaxUint32 {
			o.fail("mov %s: immediate %d does not fit in 32 bits", dst, imm)
			return
		}
		traceStart("mov %s, %d", dst, imm)
		defer traceEnd()
		if r.Extended() {
			o.Write(0x41) // REX.B
		}
		o.Write(0xB8 + r.Encoding&7)
		o.WriteUnsigned(uint32(imm))
	case 64:
		if imm < math.MinInt32 || imm > math.MaxInt32 {
			o.fail("mov %s: immediate %d does not fit in a sign-extended imm32", dst, imm)
			return
		}
		traceStart("mov %s, %d", dst, imm)
		defer traceEnd()
		rex := uint8(0x48)
		if r.Extended() {
			rex |= 0x01 // REX.B
		}
		o.Write(rex)
		o.Write(0xC7) // MOV r/m64, imm32
		o.Write(0xC0 | r.Encoding&7)
		o.WriteUnsigned(uint32(int32(imm)))
	}
}
