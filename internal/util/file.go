package util

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"
)

// TryWriteAtomic writes a file atomically if it can, falling back to
// a plain write when the rename trick is not available (e.g. across
// filesystems).
func TryWriteAtomic(filename string, contents []byte) {
	if err1 := atomic.WriteFile(filename, bytes.NewReader(contents)); err1 != nil {
		if err2 := os.WriteFile(filename, contents, 0666); err2 != nil {
			Die("%s: %s; on non-atomic retry: %s", filename, err1, err2)
		}
	}
}

// FileExists reports whether the file exists, dying on any stat error
// other than nonexistence.
func FileExists(filename string) bool {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return false
	} else if err != nil {
		Die("%s: %s", filename, err)
		return false
	} else {
		return true
	}
}
