package locate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// NotFoundError is returned when neither the requested path nor its
// fallback exists.
type NotFoundError struct {
	Path     string
	Fallback string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("couldn't find %s (also tried %s)", e.Path, e.Fallback)
}

func (e *NotFoundError) Unwrap() error { return fs.ErrNotExist }

// Resolve returns path if it exists. Otherwise it looks for a file with the
// same base name in fallbackDir.
func Resolve(path, fallbackDir string) (string, error) {
	if exists(path) {
		return path, nil
	}

	fallback := filepath.Join(fallbackDir, filepath.Base(path))
	log.Infof("Couldn't find %s, trying %s", path, fallbackDir)
	if exists(fallback) {
		return fallback, nil
	}

	return "", &NotFoundError{Path: path, Fallback: fallback}
}

// ExecutableDir is the directory the running binary lives in.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
