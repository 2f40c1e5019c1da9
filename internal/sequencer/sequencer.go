// Package sequencer drives the one-file-at-a-time disposition workflow as an
// explicit state machine: Active(i) for 0 <= i < N, then Done.
package sequencer

import (
	"errors"
	"fmt"

	"file-mover/internal/logger"
	"file-mover/internal/models"
	"file-mover/internal/mover"
)

const component = "Sequencer"

var (
	// ErrSequenceDone indicates a decision arrived after the last file
	ErrSequenceDone = errors.New("all files have been processed")

	// ErrNoDestination indicates a move decision without a destination
	ErrNoDestination = errors.New("move decision has no destination")
)

// DismissPolicy decides what a dismissed prompt does.
type DismissPolicy string

const (
	// DismissReprompt keeps the state and presents the same file again.
	DismissReprompt DismissPolicy = "reprompt"
	// DismissSkip treats a dismissed prompt as an explicit skip.
	DismissSkip DismissPolicy = "skip"
)

// Mover relocates one file.
type Mover interface {
	Move(sourceDir, name, destDir string) mover.Result
}

// Outcome describes what one Apply call did. Move is set for move
// decisions, successful or not.
type Outcome struct {
	Index    int
	File     models.PendingFile
	Decision models.Decision
	Status   models.FileStatus
	Move     *mover.Result
	Advanced bool
}

// Sequencer applies decisions to states. It holds no per-run state itself.
type Sequencer struct {
	mover  Mover
	policy DismissPolicy
	log    logger.Logger
}

func New(m Mover, policy DismissPolicy, log logger.Logger) *Sequencer {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if policy != DismissSkip {
		policy = DismissReprompt
	}
	return &Sequencer{mover: m, policy: policy, log: log}
}

// Policy returns the dismiss policy in effect.
func (s *Sequencer) Policy() DismissPolicy {
	return s.policy
}

// Start returns Active(0) over files, or Done when files is empty.
func (s *Sequencer) Start(source string, files []models.PendingFile) State {
	st := State{
		Source:   source,
		Files:    files,
		Statuses: make([]models.FileStatus, len(files)),
	}

	s.log.Info(component, "sequence started", map[string]interface{}{
		"source": source,
		"files":  len(files),
	})
	if st.Done() {
		s.log.Info(component, "all files have been processed", nil)
	}
	return st
}

// Apply consumes one decision for the current file and returns the next
// state. A failed move still advances; the failure is in Outcome.Move.
func (s *Sequencer) Apply(st State, d models.Decision) (State, Outcome, error) {
	file, ok := st.Current()
	if !ok {
		return st, Outcome{}, ErrSequenceDone
	}

	out := Outcome{Index: st.Index, File: file, Decision: d}

	if d.Kind == models.DecisionDismiss {
		if s.policy == DismissReprompt {
			s.log.Info(component, "no selection made, presenting file again", map[string]interface{}{
				"file": file.Name,
			})
			out.Status = st.Status(st.Index)
			return st, out, nil
		}
		d = models.Skip()
	}

	var next State
	switch d.Kind {
	case models.DecisionSkip:
		next = st.withStatus(st.Index, models.StatusSkipped)
		out.Status = models.StatusSkipped
		s.log.Info(component, "file skipped", map[string]interface{}{
			"file": file.Name,
		})

	case models.DecisionMove:
		if d.Destination == "" {
			return st, out, ErrNoDestination
		}
		result := s.mover.Move(st.Source, file.Name, d.Destination)
		out.Move = &result
		if result.OK() {
			out.Status = models.StatusMoved
			s.log.Info(component, "file moved", map[string]interface{}{
				"file":        file.Name,
				"destination": d.Destination,
			})
		} else {
			out.Status = models.StatusFailed
			s.log.Error(component, result.Err, map[string]interface{}{
				"file":        file.Name,
				"destination": d.Destination,
			})
		}
		next = st.withStatus(st.Index, out.Status)

	default:
		return st, out, fmt.Errorf("unknown decision %v", d.Kind)
	}

	next.Index = st.Index + 1
	out.Advanced = true

	if next.Done() {
		sum := next.Summary()
		s.log.Info(component, "all files have been processed", map[string]interface{}{
			"moved":   sum.Moved,
			"skipped": sum.Skipped,
			"failed":  sum.Failed,
		})
	}
	return next, out, nil
}
