package controllers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-mover/internal/journal"
	"file-mover/internal/logger"
	"file-mover/internal/models"
	"file-mover/internal/mover"
	"file-mover/internal/registry"
	"file-mover/internal/sequencer"
)

type prompt struct {
	file         string
	destinations []string
}

type fakeView struct {
	moveAll     func()
	reload      func()
	decide      func(models.Decision)
	addDest     func(string)
	prompts     []prompt
	destLists   [][]string
	files       []sequencer.State
	statuses    []string
	errors      []string
	infos       []string
	promptClose int
}

func (v *fakeView) SetMoveAllHandler(h func()) { v.moveAll = h }
func (v *fakeView) SetReloadHandler(h func()) { v.reload = h }
func (v *fakeView) SetDecisionHandler(h func(models.Decision)) { v.decide = h }
func (v *fakeView) SetAddDestinationHandler(h func(string)) { v.addDest = h }
func (v *fakeView) RenderFiles(state sequencer.State) { v.files = append(v.files, state) }
func (v *fakeView) RenderDestinations(d []string) { v.destLists = append(v.destLists, d) }
func (v *fakeView) ClosePrompt() { v.promptClose++ }
func (v *fakeView) UpdateStatus(status string) { v.statuses = append(v.statuses, status) }
func (v *fakeView) ShowError(title string, err error) { v.errors = append(v.errors, title) }
func (v *fakeView) ShowInformation(title, message string) { v.infos = append(v.infos, message) }
func (v *fakeView) PromptDestination(f models.PendingFile, d []string) {
	v.prompts = append(v.prompts, prompt{file: f.Name, destinations: d})
}

func (v *fakeView) lastPrompt(t *testing.T) prompt {
	t.Helper()
	require.NotEmpty(t, v.prompts)
	return v.prompts[len(v.prompts)-1]
}

func (v *fakeView) lastStatus() string {
	if len(v.statuses) == 0 {
		return ""
	}
	return v.statuses[len(v.statuses)-1]
}

type memJournal struct {
	entries []journal.Entry
	err     error
}

func (j *memJournal) Record(_ context.Context, e journal.Entry) error {
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, e)
	return nil
}

type fixture struct {
	root     string
	src      string
	registry *registry.Registry
	view     *fakeView
	journal  *memJournal
	ctrl     *MainController
}

func newFixture(t *testing.T, policy sequencer.DismissPolicy, files map[string]string, destinations ...string) *fixture {
	t.Helper()
	root := t.TempDir()
	src := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(src, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(src, name), []byte(content), 0o644))
	}

	regPath := filepath.Join(root, "destinations.txt")
	require.NoError(t, registry.Persist(regPath, destinations))
	reg, err := registry.Open(regPath, logger.NoOpLogger{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close() })

	seq := sequencer.New(mover.New(mover.Options{}), policy, logger.NoOpLogger{})
	jr := &memJournal{}
	ctrl := NewMainController(reg, seq, jr, logger.NoOpLogger{}, "test-session")
	view := &fakeView{}
	ctrl.SetMainView(view)

	return &fixture{root: root, src: src, registry: reg, view: view, journal: jr, ctrl: ctrl}
}

func (f *fixture) mkdir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(f.root, name)
	require.NoError(t, os.Mkdir(dir, 0o755))
	return dir
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestSetMainViewWiresHandlers(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, nil, "/tmp/x")

	assert.NotNil(t, f.view.moveAll)
	assert.NotNil(t, f.view.reload)
	assert.NotNil(t, f.view.decide)
	assert.NotNil(t, f.view.addDest)
	require.Len(t, f.view.destLists, 1)
	assert.Equal(t, []string{"/tmp/x"}, f.view.destLists[0])
}

func TestConfirmThenSkip(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, map[string]string{"a.txt": "alpha", "b.txt": "beta"})
	x := f.mkdir(t, "x")
	_, err := f.registry.Add(x)
	require.NoError(t, err)

	require.NoError(t, f.ctrl.LoadSource(f.src))
	f.view.moveAll()
	assert.Equal(t, prompt{file: "a.txt", destinations: []string{x}}, f.view.lastPrompt(t))

	f.view.decide(models.MoveTo(x))
	assert.Equal(t, "b.txt", f.view.lastPrompt(t).file)

	f.view.decide(models.Skip())

	assert.True(t, f.ctrl.State().Done())
	assert.Equal(t, []string{"a.txt"}, listDir(t, x))
	assert.Equal(t, []string{"b.txt"}, listDir(t, f.src))
	assert.Equal(t, []string{x}, f.registry.Entries())
	assert.Equal(t, "All files have been processed.", f.view.lastStatus())
	assert.Len(t, f.view.infos, 1)
	assert.Equal(t, 1, f.view.promptClose)

	require.Len(t, f.journal.entries, 2)
	assert.Equal(t, "moved", f.journal.entries[0].Outcome)
	assert.Equal(t, x, f.journal.entries[0].Destination)
	assert.Equal(t, "skipped", f.journal.entries[1].Outcome)
	assert.Equal(t, "test-session", f.journal.entries[1].Session)
}

func TestAddDestinationMidSequence(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, map[string]string{"a.txt": "a", "b.txt": "b"})
	x := f.mkdir(t, "x")
	y := f.mkdir(t, "y")
	_, err := f.registry.Add(x)
	require.NoError(t, err)

	require.NoError(t, f.ctrl.LoadSource(f.src))
	f.view.moveAll()
	f.view.decide(models.Skip())

	f.view.addDest(y)

	assert.Equal(t, []string{x, y}, f.registry.Entries())
	onDisk, err := registry.Load(f.registry.Path())
	require.NoError(t, err)
	assert.Equal(t, []string{x, y}, onDisk)

	current := f.view.lastPrompt(t)
	assert.Equal(t, "b.txt", current.file)
	assert.Equal(t, []string{x, y}, current.destinations)

	f.view.decide(models.MoveTo(y))
	assert.Equal(t, []string{"b.txt"}, listDir(t, y))
}

func TestAddDuplicateDestinationIsNoOp(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, nil, "/tmp/x")
	lists := len(f.view.destLists)

	f.view.addDest("/tmp/x")

	assert.Equal(t, []string{"/tmp/x"}, f.registry.Entries())
	assert.Len(t, f.view.destLists, lists)
	assert.Contains(t, f.view.lastStatus(), "already stored")
}

func TestFailedMoveReportsAndAdvances(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, map[string]string{"a.txt": "a", "b.txt": "b"})
	missing := filepath.Join(f.root, "missing")

	require.NoError(t, f.ctrl.LoadSource(f.src))
	f.view.moveAll()
	f.view.decide(models.MoveTo(missing))

	assert.Equal(t, []string{"Error moving file a.txt"}, f.view.errors)
	assert.Equal(t, "b.txt", f.view.lastPrompt(t).file)
	assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, listDir(t, f.src))

	require.Len(t, f.journal.entries, 1)
	assert.Equal(t, "failed", f.journal.entries[0].Outcome)
	assert.NotEmpty(t, f.journal.entries[0].Error)
}

func TestDismissRepromptsSameFile(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, map[string]string{"a.txt": "a"})
	require.NoError(t, f.ctrl.LoadSource(f.src))
	f.view.moveAll()

	f.view.decide(models.Dismiss())

	require.Len(t, f.view.prompts, 2)
	assert.Equal(t, "a.txt", f.view.prompts[1].file)
	assert.Equal(t, 0, f.ctrl.State().Index)
	assert.Contains(t, f.view.lastStatus(), "No selection made")
	assert.Empty(t, f.journal.entries)
}

func TestDismissAsSkip(t *testing.T) {
	f := newFixture(t, sequencer.DismissSkip, map[string]string{"a.txt": "a"})
	require.NoError(t, f.ctrl.LoadSource(f.src))
	f.view.moveAll()

	f.view.decide(models.Dismiss())

	assert.True(t, f.ctrl.State().Done())
	assert.Equal(t, []string{"a.txt"}, listDir(t, f.src))
}

func TestEmptySourceIsDoneWithoutPrompts(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, nil)
	require.NoError(t, f.ctrl.LoadSource(f.src))

	f.view.moveAll()

	assert.Empty(t, f.view.prompts)
	assert.Equal(t, "All files have been processed.", f.view.lastStatus())
}

func TestSkipLeavesRegistryAndFilesystemAlone(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, map[string]string{"a.txt": "a"}, "/tmp/x")
	before, err := os.ReadFile(f.registry.Path())
	require.NoError(t, err)

	require.NoError(t, f.ctrl.LoadSource(f.src))
	f.view.moveAll()
	f.view.decide(models.Skip())

	after, err := os.ReadFile(f.registry.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []string{"a.txt"}, listDir(t, f.src))
}

func TestMoveAllWithoutSource(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, nil)

	f.view.moveAll()

	assert.Equal(t, []string{"Nothing to move"}, f.view.errors)
	assert.Empty(t, f.view.prompts)
}

func TestDecisionWithoutPromptIsIgnored(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, map[string]string{"a.txt": "a"})
	require.NoError(t, f.ctrl.LoadSource(f.src))

	f.view.decide(models.Skip())

	assert.Equal(t, 0, f.ctrl.State().Index)
}

func TestReloadPicksUpExternalEdits(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, nil, "/tmp/x")
	require.NoError(t, os.WriteFile(f.registry.Path(), []byte("/tmp/x\n/tmp/z\n"), 0o644))

	f.view.reload()

	assert.Equal(t, []string{"/tmp/x", "/tmp/z"}, f.view.destLists[len(f.view.destLists)-1])
}

func TestJournalFailureDoesNotStopSequence(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, map[string]string{"a.txt": "a", "b.txt": "b"})
	f.journal.err = errors.New("disk full")
	require.NoError(t, f.ctrl.LoadSource(f.src))
	f.view.moveAll()

	f.view.decide(models.Skip())

	assert.Equal(t, 1, f.ctrl.State().Index)
	assert.Equal(t, "b.txt", f.view.lastPrompt(t).file)
}

func TestLoadSourceMissingFolder(t *testing.T) {
	f := newFixture(t, sequencer.DismissReprompt, nil)

	err := f.ctrl.LoadSource(filepath.Join(f.root, "nope"))
	assert.Error(t, err)
	assert.Equal(t, []string{"Cannot read source folder"}, f.view.errors)
}
