package fs

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var (
	// ErrSinkWrite wraps directory creation and file write failures.
	ErrSinkWrite = errors.New("write failed")

	// ErrTargetNotEmpty means the target directory already has files.
	ErrTargetNotEmpty = errors.New("target directory is not empty")

	// ErrParentTraversal means a target path climbs out of the working directory.
	ErrParentTraversal = errors.New("reference to parent directories not permitted")
)

var fs afero.Fs

// AppFs returns the current location file system.
//
//	if we are in testing mode it returns a memory
func AppFs() afero.Fs {
	if viper.Get("testFs") != nil {
		return viper.Get("testFs").(afero.Fs)
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return fs
}

// SanitizeTarget validates a user supplied target directory. Paths with a
// ".." segment are rejected; "./" prefixes and trailing separators are
// dropped. An empty path means the current directory.
func SanitizeTarget(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	for _, seg := range strings.FieldsFunc(trimmed, isSeparator) {
		if strings.TrimSpace(seg) == ".." {
			return "", fmt.Errorf("%w: %s", ErrParentTraversal, raw)
		}
	}
	cleaned := filepath.Clean(filepath.FromSlash(trimmed))
	if slashed := filepath.ToSlash(cleaned); slashed == ".." || strings.HasPrefix(slashed, "../") {
		return "", fmt.Errorf("%w: %s", ErrParentTraversal, raw)
	}
	return cleaned, nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// PrepareTarget makes sure path can receive a new project. A missing or
// empty directory is fine; a directory with files is only accepted with
// force.
func PrepareTarget(fs afero.Fs, path string, force bool) error {
	exists, err := afero.DirExists(fs, path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSinkWrite, path, err)
	}
	if !exists {
		isFile, err := afero.Exists(fs, path)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSinkWrite, path, err)
		}
		if isFile {
			return fmt.Errorf("%w: %s is not a directory", ErrSinkWrite, path)
		}
		if err := fs.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSinkWrite, path, err)
		}
		return nil
	}
	empty, err := afero.IsEmpty(fs, path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSinkWrite, path, err)
	}
	if !empty && !force {
		return fmt.Errorf("%w: %s (use --force to write into it)", ErrTargetNotEmpty, path)
	}
	return nil
}

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(fs afero.Fs, path, data string) error {
	dir := filepath.Dir(path)
	b, err := afero.Exists(fs, dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSinkWrite, dir, err)
	} else if !b {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSinkWrite, dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, []byte(data), 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSinkWrite, path, err)
	}
	return nil
}

// ReadFile returns the content of path.
func ReadFile(fs afero.Fs, path string) (string, error) {
	b, err := afero.ReadFile(fs, path)
	return string(b), err
}
