// Package filex holds small filesystem helpers shared by components that
// persist state.
package filex

import (
	"os"
	"path/filepath"
)

// WriteAtomic writes data to path through a temp file and rename, so a crash
// mid-write never leaves a torn file behind. Parent directories are created
// as needed; the temp file inherits perm.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
