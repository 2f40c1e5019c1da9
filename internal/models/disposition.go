package models

import "fmt"

// DecisionKind identifies what the user chose for one pending file.
type DecisionKind int

const (
	DecisionMove DecisionKind = iota
	DecisionSkip
	// DecisionDismiss is a prompt closed without a destination and without
	// an explicit skip.
	DecisionDismiss
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionMove:
		return "move"
	case DecisionSkip:
		return "skip"
	case DecisionDismiss:
		return "dismiss"
	default:
		return fmt.Sprintf("decision(%d)", int(k))
	}
}

// Decision is the transient disposition for the file currently presented.
type Decision struct {
	Kind        DecisionKind
	Destination string
}

// MoveTo returns a decision relocating the current file into destination.
func MoveTo(destination string) Decision {
	return Decision{Kind: DecisionMove, Destination: destination}
}

// Skip returns a decision leaving the current file in place.
func Skip() Decision {
	return Decision{Kind: DecisionSkip}
}

// Dismiss returns the no-selection decision.
func Dismiss() Decision {
	return Decision{Kind: DecisionDismiss}
}

func (d Decision) String() string {
	if d.Kind == DecisionMove {
		return fmt.Sprintf("move to %s", d.Destination)
	}
	return d.Kind.String()
}

// FileStatus tracks what happened to a pending file during the run.
type FileStatus int

const (
	StatusPending FileStatus = iota
	StatusMoved
	StatusSkipped
	StatusFailed
)

func (s FileStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusMoved:
		return "moved"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// PendingFile is a regular file discovered in the source folder at startup.
type PendingFile struct {
	Name string
	Size int64
}
