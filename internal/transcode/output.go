package transcode

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"proteus/internal/services"
)

const (
	convertedSuffix  = "_converted"
	compressedSuffix = "_compressed"
)

// ConvertedOutputPath swaps the input's extension for ext. When the input
// already has that extension, "_converted" is appended to the stem so the
// output never overwrites the input.
func ConvertedOutputPath(input, ext string) string {
	stem, inputExt := splitExt(input)
	if strings.EqualFold(inputExt, ext) {
		return stem + convertedSuffix + ext
	}
	return stem + ext
}

// CompressedOutputPath appends "_compressed" to the stem, keeping the input's
// extension.
func CompressedOutputPath(input string) string {
	stem, ext := splitExt(input)
	return stem + compressedSuffix + ext
}

func splitExt(path string) (string, string) {
	ext := filepath.Ext(path)
	if ext == filepath.Base(path) {
		// dotfile such as ".mov": no stem to split from
		return path, ""
	}
	return strings.TrimSuffix(path, ext), ext
}

// OutputExistsError reports a destination that would be overwritten without --force.
type OutputExistsError struct {
	Path string
}

func (e *OutputExistsError) Error() string {
	return fmt.Sprintf("output file already exists: %s", e.Path)
}

func (e *OutputExistsError) Is(target error) bool {
	return target == services.ErrOutputExists
}

func checkInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return services.Wrap(services.ErrInputNotFound, "", path, nil)
		}
		return fmt.Errorf("inspect input %q: %w", path, err)
	}
	if info.IsDir() {
		return services.Wrap(services.ErrInputNotFound, "", "not a regular file: "+path, nil)
	}
	return nil
}

func checkOutput(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return &OutputExistsError{Path: path}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("inspect output %q: %w", path, err)
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
