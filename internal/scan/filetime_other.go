//go:build !linux

package scan

import (
	"os"
	"time"
)

// changeTime is unavailable on this platform; FileDate falls back to mtime.
func changeTime(info os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
