package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last workflow message and run counters
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	sourceInfo  *widget.Label
	countInfo   *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.sourceInfo = widget.NewLabel("No source folder")
	sb.countInfo = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(
		nil, nil,
		nil,
		container.NewHBox(widget.NewSeparator(), sb.sourceInfo, widget.NewSeparator(), sb.countInfo),
		sb.statusLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetSource shows the folder being sorted
func (sb *StatusBar) SetSource(path string) {
	sb.sourceInfo.SetText(path)
}

// SetCounts shows how far the run has progressed
func (sb *StatusBar) SetCounts(done, total, moved, failed int) {
	sb.countInfo.SetText(fmt.Sprintf("%d/%d decided, %d moved, %d failed", done, total, moved, failed))
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
