package mover

import (
	"errors"
	"fmt"
)

// Reason classifies why a move failed.
type Reason string

const (
	ReasonSource      Reason = "source"
	ReasonDestination Reason = "destination"
	ReasonCollision   Reason = "collision"
	ReasonRename      Reason = "rename"
	ReasonCopy        Reason = "copy"
)

var (
	// ErrCollision indicates the target file already exists
	ErrCollision = errors.New("target already exists")

	// ErrNotDirectory indicates the destination is not a directory
	ErrNotDirectory = errors.New("destination is not a directory")

	// ErrNotRegularFile indicates the source is not a regular file
	ErrNotRegularFile = errors.New("source is not a regular file")
)

// MoveError describes a failed relocation. The source file is left where it was.
type MoveError struct {
	Source string
	Target string
	Reason Reason
	Err    error
	Hint   string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s -> %s (%s): %v", e.Source, e.Target, e.Reason, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// GetHint returns the hint for MoveError
func (e *MoveError) GetHint() string {
	return e.Hint
}
