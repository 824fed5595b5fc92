package runner

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrNotFound      = errors.New("script not found")
	ErrNotFile       = errors.New("not a file")
	ErrNotExecutable = errors.New("script is not executable")
)

// CheckError names the script path that failed a precondition.
type CheckError struct {
	Path string
	Err  error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// Check verifies that path exists, is a regular file and carries at least one
// execute bit, in that order.
func Check(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &CheckError{Path: path, Err: ErrNotFound}
		}
		return &CheckError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &CheckError{Path: path, Err: ErrNotFile}
	}
	if info.Mode().Perm()&0o111 == 0 {
		return &CheckError{Path: path, Err: ErrNotExecutable}
	}
	return nil
}
