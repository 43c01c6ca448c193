//go:build unix

package output

import (
	"errors"

	"golang.org/x/sys/unix"
)

const maxTempAttempts = 16

func writeAtomic(dir, base, path string, data []byte) error {
	tmp, fd, err := createTemp(dir, base)
	if err != nil {
		return err
	}
	if err := fill(fd, data); err != nil {
		unix.Close(fd)
		unix.Unlink(tmp)
		return err
	}
	if err := unix.Close(fd); err != nil {
		unix.Unlink(tmp)
		return err
	}
	if err := unix.Rename(tmp, path); err != nil {
		unix.Unlink(tmp)
		return err
	}
	return syncDir(dir)
}

// syncDir flushes the directory entry so the rename survives a crash.
func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}
	err = unix.Fsync(fd)
	if cerr := unix.Close(fd); err == nil {
		err = cerr
	}
	return err
}

func createTemp(dir, base string) (string, int, error) {
	for attempt := 0; attempt < maxTempAttempts; attempt++ {
		tmp := tempName(dir, base, attempt)
		fd, err := unix.Open(tmp, unix.O_WRONLY|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, 0o600)
		if errors.Is(err, unix.EEXIST) {
			continue
		}
		if err != nil {
			return "", -1, err
		}
		return tmp, fd, nil
	}
	return "", -1, unix.EEXIST
}

// fill writes data to fd, sets the final mode and flushes it to disk.
// fchmod is used instead of the open mode so the umask cannot drop the
// execute bits.
func fill(fd int, data []byte) error {
	for len(data) > 0 {
		n, err := unix.Write(fd, data)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	if err := unix.Fchmod(fd, ExecMode); err != nil {
		return err
	}
	return unix.Fsync(fd)
}
