// Package fileutil holds small filesystem helpers shared by the commands.
package fileutil

import (
	"os"
)

const bytesPerMiB = 1024 * 1024

// SizeMiB returns the size of path in MiB.
func SizeMiB(path string) (float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return float64(info.Size()) / bytesPerMiB, nil
}

// IsRegular reports whether path exists and is a regular file.
func IsRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

