//go:build !linux

package vcs

import (
	"io/fs"
	"time"
)

// BirthTime returns the creation time of a file given its absolute path and
// fs.FileInfo. Platforms without birth time support report the modification
// time instead.
func BirthTime(absolutePath string, fileInfo fs.FileInfo) time.Time {
	return fileInfo.ModTime().UTC()
}
