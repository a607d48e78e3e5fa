package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// MiB is one mebibyte, the unit proteus reports sizes in.
const MiB = 1024 * 1024

// WriteFile creates path holding size bytes of filler. A size <= 0 writes a
// single byte so the file is never empty.
func WriteFile(t testing.TB, path string, size int64) string {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	// A sparse file is enough: proteus only ever stats inputs.
	if err := f.Truncate(size); err != nil {
		t.Fatalf("size %s: %v", path, err)
	}
	return path
}
