package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"file-mover/internal/journal"
	"file-mover/internal/logger"
	"file-mover/internal/models"
	"file-mover/internal/sequencer"
)

const component = "MainController"

// ErrNoSource indicates Move All Files was requested before a source folder was loaded
var ErrNoSource = errors.New("no source folder loaded")

// View is the presentation layer driven by MainController. Implementations
// re-render from the values passed in and report user actions through the
// registered handlers.
type View interface {
	SetMoveAllHandler(handler func())
	SetReloadHandler(handler func())
	SetDecisionHandler(handler func(models.Decision))
	SetAddDestinationHandler(handler func(string))

	RenderFiles(state sequencer.State)
	RenderDestinations(destinations []string)
	PromptDestination(file models.PendingFile, destinations []string)
	ClosePrompt()
	UpdateStatus(status string)
	ShowError(title string, err error)
	ShowInformation(title, message string)
}

// Destinations is the registry as seen by the controller.
type Destinations interface {
	Entries() []string
	Add(destination string) (bool, error)
	Reload() error
}

// Journal records applied dispositions.
type Journal interface {
	Record(ctx context.Context, e journal.Entry) error
}

// MainController owns the sequencer state for one run and mediates between
// the registry, the sequencer and the view.
type MainController struct {
	registry  Destinations
	sequencer *sequencer.Sequencer
	journal   Journal
	log       logger.Logger
	session   string

	mainView View

	mu      sync.Mutex
	state   sequencer.State
	loaded  bool
	running bool
}

// NewMainController creates a new main controller. journal may be nil.
func NewMainController(reg Destinations, seq *sequencer.Sequencer, jr Journal, log logger.Logger, session string) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		registry:  reg,
		sequencer: seq,
		journal:   jr,
		log:       log,
		session:   session,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	mc.setupViewEventHandlers()
	view.RenderDestinations(mc.registry.Entries())
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetMoveAllHandler(mc.MoveAll)
	mc.mainView.SetReloadHandler(mc.ReloadDestinations)
	mc.mainView.SetDecisionHandler(mc.Decide)
	mc.mainView.SetAddDestinationHandler(mc.AddDestination)
}

// State returns the current sequencer state.
func (mc *MainController) State() sequencer.State {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.state
}

// LoadSource lists dir once and prepares the sequence. Files added to or
// removed from dir afterwards are not picked up.
func (mc *MainController) LoadSource(dir string) error {
	files, err := sequencer.ScanSource(dir)
	if err != nil {
		mc.handleError("Cannot read source folder", err)
		return err
	}

	mc.mu.Lock()
	mc.state = mc.sequencer.Start(dir, files)
	mc.loaded = true
	mc.running = false
	state := mc.state
	mc.mu.Unlock()

	mc.mainView.RenderFiles(state)
	mc.mainView.UpdateStatus(fmt.Sprintf("%d files to move from %s", len(files), dir))
	return nil
}

// MoveAll starts (or resumes) prompting for the current file.
func (mc *MainController) MoveAll() {
	mc.mu.Lock()
	if !mc.loaded {
		mc.mu.Unlock()
		mc.handleError("Nothing to move", ErrNoSource)
		return
	}
	state := mc.state
	if state.Done() {
		mc.running = false
		mc.mu.Unlock()
		mc.reportDone()
		return
	}
	mc.running = true
	mc.mu.Unlock()

	mc.promptCurrent(state)
}

// Decide applies the decision for the file currently presented.
func (mc *MainController) Decide(d models.Decision) {
	mc.mu.Lock()
	if !mc.running {
		mc.mu.Unlock()
		mc.log.Warning(component, "decision received with no file presented", map[string]interface{}{
			"decision": d.String(),
		})
		return
	}

	next, out, err := mc.sequencer.Apply(mc.state, d)
	if err != nil {
		mc.mu.Unlock()
		if errors.Is(err, sequencer.ErrNoDestination) {
			mc.mainView.UpdateStatus("No selection made. Please select a destination from the list.")
			mc.promptCurrent(next)
			return
		}
		mc.handleError("Decision rejected", err)
		return
	}
	mc.state = next
	mc.running = !next.Done()
	mc.mu.Unlock()

	mc.record(next.Source, out)
	mc.mainView.RenderFiles(next)
	mc.reportOutcome(out)

	if next.Done() {
		mc.mainView.ClosePrompt()
		mc.reportDone()
		return
	}
	mc.promptCurrent(next)
}

// AddDestination registers path. The new destination is visible to every
// file still awaiting a decision.
func (mc *MainController) AddDestination(path string) {
	added, err := mc.registry.Add(path)
	if err != nil {
		mc.handleError("Cannot add destination", err)
		return
	}
	if !added {
		mc.mainView.UpdateStatus(fmt.Sprintf("Destination already stored: %s", path))
		return
	}

	mc.mainView.UpdateStatus(fmt.Sprintf("New destination added: %s", path))
	mc.refreshDestinations()
}

// ReloadDestinations re-reads the registry file.
func (mc *MainController) ReloadDestinations() {
	if err := mc.registry.Reload(); err != nil {
		mc.handleError("Cannot reload destinations", err)
		return
	}
	mc.mainView.UpdateStatus("Destinations reloaded")
	mc.refreshDestinations()
}

func (mc *MainController) refreshDestinations() {
	destinations := mc.registry.Entries()
	mc.mainView.RenderDestinations(destinations)

	mc.mu.Lock()
	running := mc.running
	state := mc.state
	mc.mu.Unlock()

	if running {
		if file, ok := state.Current(); ok {
			mc.mainView.PromptDestination(file, destinations)
		}
	}
}

func (mc *MainController) promptCurrent(state sequencer.State) {
	file, ok := state.Current()
	if !ok {
		return
	}
	mc.mainView.PromptDestination(file, mc.registry.Entries())
}

func (mc *MainController) reportOutcome(out sequencer.Outcome) {
	if !out.Advanced {
		mc.mainView.UpdateStatus("No selection made. Please select a destination from the list.")
		return
	}
	switch out.Status {
	case models.StatusMoved:
		mc.mainView.UpdateStatus(fmt.Sprintf("File %s moved to %s", out.File.Name, out.Decision.Destination))
	case models.StatusSkipped:
		mc.mainView.UpdateStatus(fmt.Sprintf("File %s was skipped.", out.File.Name))
	case models.StatusFailed:
		mc.mainView.UpdateStatus(fmt.Sprintf("Error moving file %s", out.File.Name))
		mc.handleError(fmt.Sprintf("Error moving file %s", out.File.Name), out.Move.Err)
	}
}

func (mc *MainController) reportDone() {
	mc.mu.Lock()
	sum := mc.state.Summary()
	mc.mu.Unlock()

	mc.mainView.UpdateStatus("All files have been processed.")
	mc.mainView.ShowInformation("Done", fmt.Sprintf(
		"All files have been processed.\nMoved: %d  Skipped: %d  Failed: %d",
		sum.Moved, sum.Skipped, sum.Failed))
}

func (mc *MainController) record(source string, out sequencer.Outcome) {
	if mc.journal == nil || !out.Advanced {
		return
	}

	entry := journal.Entry{
		Session:     mc.session,
		File:        out.File.Name,
		Source:      source,
		Destination: out.Decision.Destination,
		Action:      out.Decision.Kind.String(),
		Outcome:     out.Status.String(),
	}
	if out.Move != nil && out.Move.Err != nil {
		entry.Error = out.Move.Err.Error()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.journal.Record(ctx, entry); err != nil {
		mc.log.Warning(component, "journal write failed", map[string]interface{}{
			"file":  out.File.Name,
			"error": err.Error(),
		})
	}
}

// handleError handles application errors with consistent UI feedback
func (mc *MainController) handleError(title string, err error) {
	fields := map[string]interface{}{"title": title}
	var hinted interface{ GetHint() string }
	if errors.As(err, &hinted) && hinted.GetHint() != "" {
		fields["hint"] = hinted.GetHint()
	}
	mc.log.Error(component, err, fields)

	if mc.mainView != nil {
		mc.mainView.ShowError(title, err)
	}
}

// Shutdown closes any open prompt.
func (mc *MainController) Shutdown() {
	mc.mu.Lock()
	mc.running = false
	mc.mu.Unlock()

	if mc.mainView != nil {
		mc.mainView.ClosePrompt()
	}
}
