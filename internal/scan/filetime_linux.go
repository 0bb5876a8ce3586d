//go:build linux

package scan

import (
	"os"
	"syscall"
	"time"
)

// changeTime extracts the inode status-change time from stat data.
func changeTime(info os.FileInfo) (time.Time, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	sec, nsec := st.Ctim.Unix()
	return time.Unix(sec, nsec), true
}
