package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-mover/internal/models"
)

func newTestDialog(t *testing.T) (*DestinationDialog, *[]models.Decision) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	var got []models.Decision
	dd := NewDestinationDialog(w)
	dd.SetDecisionHandler(func(d models.Decision) { got = append(got, d) })
	return dd, &got
}

func TestDestinationDialogConfirmWithSelection(t *testing.T) {
	dd, got := newTestDialog(t)
	dd.Present("a.txt", []string{"/tmp/x", "/tmp/y"}, []string{"/tmp/x", "/tmp/y"})
	dd.selected = 1

	dd.confirm()

	require.Len(t, *got, 1)
	assert.Equal(t, models.MoveTo("/tmp/y"), (*got)[0])
	assert.Nil(t, dd.dialog)
}

func TestDestinationDialogConfirmWithoutSelectionDismisses(t *testing.T) {
	dd, got := newTestDialog(t)
	dd.Present("a.txt", []string{"/tmp/x"}, []string{"/tmp/x"})

	dd.confirm()

	require.Len(t, *got, 1)
	assert.Equal(t, models.DecisionDismiss, (*got)[0].Kind)
	assert.NotNil(t, dd.dialog, "dialog stays open for another attempt")
}

func TestDestinationDialogCancelSkips(t *testing.T) {
	dd, got := newTestDialog(t)
	dd.Present("a.txt", []string{"/tmp/x"}, []string{"/tmp/x"})

	dd.cancel()

	require.Len(t, *got, 1)
	assert.Equal(t, models.DecisionSkip, (*got)[0].Kind)
	assert.Nil(t, dd.dialog)
}

func TestDestinationDialogKeepsSelectionForSameFile(t *testing.T) {
	dd, _ := newTestDialog(t)
	dd.Present("a.txt", []string{"/tmp/x", "/tmp/y"}, []string{"/tmp/x", "/tmp/y"})
	dd.selected = 1

	dd.Present("a.txt", []string{"/tmp/new", "/tmp/x", "/tmp/y"}, []string{"/tmp/new", "/tmp/x", "/tmp/y"})
	assert.Equal(t, 2, dd.selected)

	dd.Present("b.txt", []string{"/tmp/new", "/tmp/x", "/tmp/y"}, []string{"/tmp/new", "/tmp/x", "/tmp/y"})
	assert.Equal(t, -1, dd.selected)
}

func TestStatusBar(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	sb := NewStatusBar()
	assert.Equal(t, "Ready", sb.GetStatus())

	sb.SetStatus("File a.txt moved to /tmp/x")
	sb.SetCounts(1, 2, 1, 0)
	assert.Equal(t, "File a.txt moved to /tmp/x", sb.GetStatus())
	assert.Equal(t, "1/2 decided, 1 moved, 0 failed", sb.countInfo.Text)
}

func TestListPanelSetItems(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	lp := NewListPanel("Stored Locations", nil)
	lp.SetItems([]string{"/tmp/x", "/tmp/y"})
	assert.Equal(t, []string{"/tmp/x", "/tmp/y"}, lp.Items())
	assert.Equal(t, 2, lp.list.Length())
}
