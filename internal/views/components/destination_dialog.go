package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"file-mover/internal/models"
)

// DestinationDialog asks for the disposition of one file. Confirm with a
// selection yields MoveTo, Confirm without one yields Dismiss, Cancel yields
// Skip.
type DestinationDialog struct {
	parent       fyne.Window
	dialog       *dialog.CustomDialog
	file         string
	destinations []string
	labels       []string
	selected     int

	decisionHandler func(models.Decision)
	addHandler      func()
}

// NewDestinationDialog creates the dialog controller; nothing is shown until Present.
func NewDestinationDialog(parent fyne.Window) *DestinationDialog {
	return &DestinationDialog{parent: parent, selected: -1}
}

// SetDecisionHandler sets the handler receiving the user's decision
func (dd *DestinationDialog) SetDecisionHandler(handler func(models.Decision)) {
	dd.decisionHandler = handler
}

// SetAddHandler sets the handler for the Add New Destination button
func (dd *DestinationDialog) SetAddHandler(handler func()) {
	dd.addHandler = handler
}

// Present shows the dialog for file. destinations are the stored values and
// labels their display form, index for index. Re-presenting the same file
// keeps the selected destination when it is still listed.
func (dd *DestinationDialog) Present(file string, destinations, labels []string) {
	keep := ""
	if file == dd.file && dd.selected >= 0 && dd.selected < len(dd.destinations) {
		keep = dd.destinations[dd.selected]
	}

	dd.Hide()
	dd.file = file
	dd.destinations = destinations
	dd.labels = labels
	dd.selected = -1

	prompt := widget.NewLabel(fmt.Sprintf("Select destination for %s", file))
	prompt.Wrapping = fyne.TextWrapWord

	list := widget.NewList(
		func() int { return len(dd.labels) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(dd.labels) {
				obj.(*widget.Label).SetText(dd.labels[id])
			}
		},
	)
	list.OnSelected = func(id widget.ListItemID) { dd.selected = id }
	list.OnUnselected = func(id widget.ListItemID) {
		if dd.selected == id {
			dd.selected = -1
		}
	}

	addButton := widget.NewButton("Add New Destination", func() {
		if dd.addHandler != nil {
			dd.addHandler()
		}
	})
	confirmButton := widget.NewButton("Confirm", dd.confirm)
	confirmButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", dd.cancel)

	content := container.NewBorder(
		prompt,
		container.NewVBox(addButton, container.NewCenter(container.NewHBox(confirmButton, cancelButton))),
		nil, nil,
		list,
	)

	dd.dialog = dialog.NewCustomWithoutButtons(fmt.Sprintf("Move: %s", file), content, dd.parent)
	dd.dialog.Resize(fyne.NewSize(400, 350))
	dd.dialog.Show()

	for i, dest := range destinations {
		if dest == keep {
			list.Select(i)
			break
		}
	}
}

// Hide closes the dialog if it is open
func (dd *DestinationDialog) Hide() {
	if dd.dialog != nil {
		dd.dialog.Hide()
		dd.dialog = nil
	}
}

func (dd *DestinationDialog) confirm() {
	if dd.selected < 0 || dd.selected >= len(dd.destinations) {
		dd.emit(models.Dismiss())
		return
	}
	destination := dd.destinations[dd.selected]
	dd.Hide()
	dd.emit(models.MoveTo(destination))
}

func (dd *DestinationDialog) cancel() {
	dd.Hide()
	dd.emit(models.Skip())
}

func (dd *DestinationDialog) emit(d models.Decision) {
	if dd.decisionHandler != nil {
		dd.decisionHandler(d)
	}
}
