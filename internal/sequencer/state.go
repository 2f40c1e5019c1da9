package sequencer

import (
	"slices"

	"file-mover/internal/models"
)

// State is the sequencer position over a fixed list of pending files. Values
// are never mutated in place; Apply returns a new State.
type State struct {
	Source   string
	Files    []models.PendingFile
	Statuses []models.FileStatus
	Index    int
}

// Done reports whether every file has received a decision.
func (s State) Done() bool {
	return s.Index >= len(s.Files)
}

// Current returns the file awaiting a decision.
func (s State) Current() (models.PendingFile, bool) {
	if s.Done() {
		return models.PendingFile{}, false
	}
	return s.Files[s.Index], true
}

// Status returns the status of file i.
func (s State) Status(i int) models.FileStatus {
	if i < 0 || i >= len(s.Statuses) {
		return models.StatusPending
	}
	return s.Statuses[i]
}

// Visible returns the indices of files still shown in the pending list.
// Only moved files disappear.
func (s State) Visible() []int {
	out := make([]int, 0, len(s.Files))
	for i := range s.Files {
		if s.Status(i) != models.StatusMoved {
			out = append(out, i)
		}
	}
	return out
}

// Summary counts files per status.
type Summary struct {
	Total   int
	Pending int
	Moved   int
	Skipped int
	Failed  int
}

func (s State) Summary() Summary {
	sum := Summary{Total: len(s.Files)}
	for i := range s.Files {
		switch s.Status(i) {
		case models.StatusMoved:
			sum.Moved++
		case models.StatusSkipped:
			sum.Skipped++
		case models.StatusFailed:
			sum.Failed++
		default:
			sum.Pending++
		}
	}
	return sum
}

func (s State) withStatus(i int, status models.FileStatus) State {
	next := s
	next.Statuses = slices.Clone(s.Statuses)
	next.Statuses[i] = status
	return next
}
