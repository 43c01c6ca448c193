// Completion: 100% - Instruction implementation complete
package amd64

// SysExit is the Linux x86-64 exit system call number.
const SysExit = 60

// Syscall emits the syscall instruction.
func (o *Out) Syscall() {
	traceStart("syscall")
	defer traceEnd()
	o.Write(0x0F)
	o.Write(0x05)
}
