// Package mover relocates a single file from the source folder into a
// destination folder, keeping the file name.
package mover

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// Result is the outcome of one move. Err is nil on success and a *MoveError
// otherwise.
type Result struct {
	File   string
	Source string
	Target string
	Err    error
}

// OK reports whether the file was relocated.
func (r Result) OK() bool {
	return r.Err == nil
}

// Failure returns the typed failure, or nil on success.
func (r Result) Failure() *MoveError {
	var moveErr *MoveError
	if errors.As(r.Err, &moveErr) {
		return moveErr
	}
	return nil
}

// Options tunes collision handling.
type Options struct {
	Overwrite bool
}

// Mover performs file relocations. The zero value is not usable; call New.
type Mover struct {
	opts   Options
	rename func(oldpath, newpath string) error
}

// New creates a Mover.
func New(opts Options) *Mover {
	return &Mover{opts: opts, rename: os.Rename}
}

// Move relocates sourceDir/name to destDir/name. Renames that cross devices
// fall back to copy and remove.
func (m *Mover) Move(sourceDir, name, destDir string) Result {
	source := filepath.Join(sourceDir, name)
	target := filepath.Join(destDir, name)
	result := Result{File: name, Source: source, Target: target}

	fail := func(reason Reason, err error, hint string) Result {
		result.Err = &MoveError{Source: source, Target: target, Reason: reason, Err: err, Hint: hint}
		return result
	}

	srcInfo, err := os.Stat(source)
	if err != nil {
		return fail(ReasonSource, err, "The file may have been moved or deleted outside file-mover")
	}
	if !srcInfo.Mode().IsRegular() {
		return fail(ReasonSource, ErrNotRegularFile, "")
	}

	dstInfo, err := os.Stat(destDir)
	if err != nil {
		return fail(ReasonDestination, err, "Check that the destination folder still exists")
	}
	if !dstInfo.IsDir() {
		return fail(ReasonDestination, ErrNotDirectory, "")
	}

	if existing, err := os.Lstat(target); err == nil {
		if existing.IsDir() || !m.opts.Overwrite {
			return fail(ReasonCollision, ErrCollision,
				"Rename one of the files or enable overwrite_existing")
		}
		if os.SameFile(existing, srcInfo) {
			return fail(ReasonCollision, ErrCollision, "Source and destination are the same file")
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fail(ReasonDestination, err, "")
	}

	err = m.rename(source, target)
	if err == nil {
		return result
	}
	if !errors.Is(err, syscall.EXDEV) {
		return fail(ReasonRename, err, "Check that the destination folder is writable")
	}

	if err := copyFile(source, target, srcInfo.Mode()); err != nil {
		return fail(ReasonCopy, err, "Check free space and permissions on the destination")
	}
	if err := os.Remove(source); err != nil {
		// Only the source copy survives a failed move.
		_ = os.Remove(target)
		return fail(ReasonSource, fmt.Errorf("remove source after copy: %w", err), "")
	}
	return result
}

// copyFile copies src to dst, syncing before close and removing dst on error.
func copyFile(src, dst string, mode fs.FileMode) (copyErr error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	defer func() {
		if closeErr := dstFile.Close(); closeErr != nil && copyErr == nil {
			copyErr = fmt.Errorf("failed to close destination file: %w", closeErr)
		}
		if copyErr != nil {
			os.Remove(dst)
		}
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := dstFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync destination file: %w", err)
	}
	if err := os.Chmod(dst, mode.Perm()); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	return nil
}
