// Completion: 100% - Instruction implementation complete
package amd64

// XorRegWithReg generates XOR dst, src (dst = dst ^ src). With dst == src
// this zeroes the register; the 32-bit form also clears the upper half.
func (o *Out) XorRegWithReg(dst, src string) {
	dstReg, dstOk := o.register(dst)
	srcReg, srcOk := o.register(src)
	if !dstOk || !srcOk {
		return
	}
	if dstReg.Size != srcReg.Size {
		o.fail("xor %s, %s: operand size mismatch", dst, src)
		return
	}

	traceStart("xor %s, %s", dst, src)
	defer traceEnd()

	rex := uint8(0x40)
	if dstReg.Size == 64 {
		rex |= 0x08 // REX.W
	}
	if srcReg.Extended() {
		rex |= 0x04 // REX.R
	}
	if dstReg.Extended() {
		rex |= 0x01 // REX.B
	}
	if rex != 0x40 {
		o.Write(rex)
	}

	// XOR r/m, r
	o.Write(0x31)

	// ModR/M: 11 (register direct) | reg (src) | r/m (dst)
	o.Write(0xC0 | (srcReg.Encoding&7)<<3 | dstReg.Encoding&7)
}
