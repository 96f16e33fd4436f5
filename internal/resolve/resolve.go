// Package resolve classifies the user-supplied target path and establishes
// the output directory for converted files.
package resolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/proresbatch/internal/config"
)

// Sentinel errors for target classification.
var (
	// ErrNotFound indicates the target path does not exist.
	ErrNotFound = errors.New("path does not exist")

	// ErrUnsupportedTarget indicates the target exists but is neither a
	// regular file nor a directory (e.g. a device node or socket).
	ErrUnsupportedTarget = errors.New("path is neither a file nor a directory")
)

// Kind is the classification of a target path.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

// Target is a classified input path together with its output directory.
// For a file target the output directory sits next to the file; for a
// directory target it sits inside the directory.
type Target struct {
	Path      string
	Kind      Kind
	OutputDir string
}

// Resolve stats path and classifies it. It performs no filesystem writes, so
// an invalid target leaves the filesystem untouched.
func Resolve(path string) (Target, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Target{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Target{}, err
	}

	switch {
	case fi.Mode().IsRegular():
		return Target{
			Path:      path,
			Kind:      KindFile,
			OutputDir: filepath.Join(filepath.Dir(path), config.OutputDirName),
		}, nil
	case fi.IsDir():
		return Target{
			Path:      path,
			Kind:      KindDir,
			OutputDir: filepath.Join(path, config.OutputDirName),
		}, nil
	default:
		return Target{}, fmt.Errorf("%w: %s", ErrUnsupportedTarget, path)
	}
}

// EnsureOutputDir creates the output directory. Idempotent: succeeds when the
// directory already exists.
func (t Target) EnsureOutputDir() error {
	return os.MkdirAll(t.OutputDir, 0o755)
}
