//go:build !unix

package output

import (
	"errors"
	"io/fs"
	"os"
)

const maxTempAttempts = 16

func writeAtomic(dir, base, path string, data []byte) error {
	var f *os.File
	var err error
	for attempt := 0; attempt < maxTempAttempts; attempt++ {
		f, err = os.OpenFile(tempName(dir, base, attempt), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if !errors.Is(err, fs.ErrExist) {
			break
		}
	}
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Chmod(ExecMode); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
