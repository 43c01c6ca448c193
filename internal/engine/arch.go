// Completion: 100% - Utility module complete
package engine

import (
	"debug/elf"
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrUnsupportedTarget is returned for platforms teensy can name but not emit for.
var ErrUnsupportedTarget = errors.New("unsupported target")

// Architecture type
type Arch int

const (
	ArchUnknown Arch = iota
	ArchX86_64
	ArchARM64
	ArchRiscv64
)

func (a Arch) String() string {
	switch a {
	case ArchX86_64:
		return "x86_64"
	case ArchARM64:
		return "aarch64"
	case ArchRiscv64:
		return "riscv64"
	default:
		return "unknown"
	}
}

// ParseArch parses an architecture string (like GOARCH values)
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(s) {
	case "x86_64", "amd64", "x86-64":
		return ArchX86_64, nil
	case "aarch64", "arm64":
		return ArchARM64, nil
	case "riscv64", "riscv", "rv64":
		return ArchRiscv64, nil
	default:
		return ArchUnknown, fmt.Errorf("unknown architecture: %s", s)
	}
}

// ELFMachine maps an architecture to the e_machine value of the file header.
// Only x86_64 has a code generator, so every other arch is rejected.
func ELFMachine(a Arch) (elf.Machine, error) {
	switch a {
	case ArchX86_64:
		return elf.EM_X86_64, nil
	default:
		return elf.EM_NONE, fmt.Errorf("%w: no ELF machine for %s", ErrUnsupportedTarget, a)
	}
}

// OS type
type OS int

const (
	OSLinux OS = iota
	OSDarwin
	OSFreeBSD
	OSWindows
)

func (o OS) String() string {
	switch o {
	case OSLinux:
		return "linux"
	case OSDarwin:
		return "darwin"
	case OSFreeBSD:
		return "freebsd"
	case OSWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// ParseOS parses an OS string (like GOOS values)
func ParseOS(s string) (OS, error) {
	switch strings.ToLower(s) {
	case "linux":
		return OSLinux, nil
	case "darwin", "macos":
		return OSDarwin, nil
	case "freebsd":
		return OSFreeBSD, nil
	case "windows", "win":
		return OSWindows, nil
	default:
		return 0, fmt.Errorf("unknown OS: %s", s)
	}
}

// Platform represents a target platform (architecture + OS)
type Platform struct {
	Arch Arch
	OS   OS
}

// DefaultTarget is the only platform teensy emits executables for.
var DefaultTarget = Platform{Arch: ArchX86_64, OS: OSLinux}

// String returns a platform string like "x86_64-linux"
func (p Platform) String() string {
	return fmt.Sprintf("%s-%s", p.Arch, p.OS)
}

// ParsePlatform parses "arch-os", or a bare "arch" meaning Linux.
func ParsePlatform(s string) (Platform, error) {
	parts := strings.SplitN(s, "-", 2)
	arch, err := ParseArch(parts[0])
	if err != nil {
		return Platform{}, err
	}
	osys := OSLinux
	if len(parts) > 1 {
		if osys, err = ParseOS(parts[1]); err != nil {
			return Platform{}, err
		}
	}
	return Platform{Arch: arch, OS: osys}, nil
}

// Supported reports an error unless p is x86_64 Linux.
func (p Platform) Supported() error {
	if p != DefaultTarget {
		return fmt.Errorf("%w: %s (only %s executables can be written)", ErrUnsupportedTarget, p, DefaultTarget)
	}
	return nil
}

// HostCanRun reports whether the running process can execute what teensy writes.
func HostCanRun() bool {
	return runtime.GOOS == "linux" && runtime.GOARCH == "amd64"
}
