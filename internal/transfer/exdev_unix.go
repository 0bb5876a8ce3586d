//go:build unix

package transfer

import (
	"errors"
	"syscall"
)

// isCrossDevice reports whether a rename failed because src and dst live on
// different filesystems.
func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
