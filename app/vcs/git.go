// Package vcs derives file dates from git history and filesystem metadata.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrGitNotFound means no git binary is available in PATH.
	ErrGitNotFound = errors.New("git binary not found")
	// ErrFileNotTracked means the file has no commit history.
	ErrFileNotTracked = errors.New("file is not tracked by git")
)

// CommitInfo is the timestamp and author of a single commit touching a file.
type CommitInfo struct {
	Date   time.Time
	Author string
}

// FileCreationDate returns the timestamp of the oldest commit that added the
// file, following renames.
func FileCreationDate(ctx context.Context, path string) (time.Time, error) {
	info, err := gitLog(ctx, path, []string{"--follow", "--diff-filter=A", "--format=%ct"}, false)
	if err != nil {
		return time.Time{}, err
	}
	return info.Date, nil
}

// FileLastUpdate returns the timestamp and author of the most recent commit
// touching the file.
func FileLastUpdate(ctx context.Context, path string) (CommitInfo, error) {
	return gitLog(ctx, path, []string{"--max-count=1", "--format=%ct,%an"}, true)
}

func gitLog(ctx context.Context, path string, args []string, withAuthor bool) (CommitInfo, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return CommitInfo{}, ErrGitNotFound
	}

	cmdArgs := append([]string{"-c", "log.showSignature=false", "log"}, args...)
	cmdArgs = append(cmdArgs, "--", filepath.Base(path))

	cmd := exec.CommandContext(ctx, "git", cmdArgs...)
	cmd.Dir = filepath.Dir(path)

	out, err := cmd.Output()
	if err != nil {
		return CommitInfo{}, fmt.Errorf("failed to retrieve the git history for %s: %w", path, err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return CommitInfo{}, fmt.Errorf("%w: %s", ErrFileNotTracked, path)
	}

	var info CommitInfo
	value := last
	if withAuthor {
		timestamp, author, ok := strings.Cut(last, ",")
		if !ok {
			return CommitInfo{}, fmt.Errorf("unexpected git log output %q for %s", last, path)
		}
		info.Author = author
		value = timestamp
	}

	epoch, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("unexpected git log output %q for %s", last, path)
	}
	info.Date = time.Unix(epoch, 0).UTC()

	return info, nil
}
