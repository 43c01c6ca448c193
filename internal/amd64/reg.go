package amd64

// Register is a general purpose register operand.
type Register struct {
	Name     string
	Size     int   // Size in bits
	Encoding uint8 // Encoding for instruction generation
}

// Extended reports whether the register needs a REX extension bit.
func (r Register) Extended() bool {
	return r.Encoding&8 != 0
}

var registers = map[string]Register{
	// 64-bit general purpose registers
	"rax": {Name: "rax", Size: 64, Encoding: 0},
	"rcx": {Name: "rcx", Size: 64, Encoding: 1},
	"rdx": {Name: "rdx", Size: 64, Encoding: 2},
	"rbx": {Name: "rbx", Size: 64, Encoding: 3},
	"rsp": {Name: "rsp", Size: 64, Encoding: 4},
	"rbp": {Name: "rbp", Size: 64, Encoding: 5},
	"rsi": {Name: "rsi", Size: 64, Encoding: 6},
	"rdi": {Name: "rdi", Size: 64, Encoding: 7},
	"r8":  {Name: "r8", Size: 64, Encoding: 8},
	"r9":  {Name: "r9", Size: 64, Encoding: 9},
	"r10": {Name: "r10", Size: 64, Encoding: 10},
	"r11": {Name: "r11", Size: 64, Encoding: 11},
	"r12": {Name: "r12", Size: 64, Encoding: 12},
	"r13": {Name: "r13", Size: 64, Encoding: 13},
	"r14": {Name: "r14", Size: 64, Encoding: 14},
	"r15": {Name: "r15", Size: 64, Encoding: 15},

	// 32-bit registers
	"eax":  {Name: "eax", Size: 32, Encoding: 0},
	"ecx":  {Name: "ecx", Size: 32, Encoding: 1},
	"edx":  {Name: "edx", Size: 32, Encoding: 2},
	"ebx":  {Name: "ebx", Size: 32, Encoding: 3},
	"esp":  {Name: "esp", Size: 32, Encoding: 4},
	"ebp":  {Name: "ebp", Size: 32, Encoding: 5},
	"esi":  {Name: "esi", Size: 32, Encoding: 6},
	"edi":  {Name: "edi", Size: 32, Encoding: 7},
	"r8d":  {Name: "r8d", Size: 32, Encoding: 8},
	"r9d":  {Name: "r9d", Size: 32, Encoding: 9},
	"r10d": {Name: "r10d", Size: 32, Encoding: 10},
	"r11d": {Name: "r11d", Size: 32, Encoding: 11},
	"r12d": {Name: "r12d", Size: 32, Encoding: 12},
	"r13d": {Name: "r13d", Size: 32, Encoding: 13},
	"r14d": {Name: "r14d", Size: 32, Encoding: 14},
	"r15d": {Name: "r15d", Size: 32, Encoding: 15},
}

// GetRegister looks up a register by name
func GetRegister(name string) (Register, bool) {
	reg, ok := registers[name]
	return reg, ok
}
