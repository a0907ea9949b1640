//go:build linux

package vcs

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// BirthTime returns the creation time of a file given its absolute path and
// fs.FileInfo, falling back to the modification time when the filesystem
// does not record birth times.
func BirthTime(absolutePath string, fileInfo fs.FileInfo) time.Time {
	if absolutePath == "" {
		return fileInfo.ModTime().UTC()
	}
	var statx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, absolutePath, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &statx)
	if err != nil {
		return fileInfo.ModTime().UTC()
	}
	if statx.Mask&unix.STATX_BTIME != unix.STATX_BTIME {
		return fileInfo.ModTime().UTC()
	}
	return time.Unix(statx.Btime.Sec, int64(statx.Btime.Nsec)).UTC()
}
