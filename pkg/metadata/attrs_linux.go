//go:build linux

package metadata

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the inode change time, the closest thing to a
// creation timestamp that linux filesystems expose. Stat_t field names
// and widths differ across the other unix ports, which get the ModTime
// fallback instead.
func creationTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	}
	return info.ModTime()
}
