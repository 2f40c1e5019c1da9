package views

import (
	"fmt"
	"os"

	"file-mover/internal/display"
	"file-mover/internal/models"
	"file-mover/internal/sequencer"
	"file-mover/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// MainView is the file-mover window: pending files on the left, stored
// locations on the right, Move All Files below.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	filePanel     *components.ListPanel
	destPanel     *components.ListPanel
	reloadButton  *widget.Button
	moveButton    *widget.Button
	statusBar     *components.StatusBar
	prompt        *components.DestinationDialog

	elider display.Elider

	// Event handlers - connected to controller
	moveAllHandler        func()
	reloadHandler         func()
	decisionHandler       func(models.Decision)
	addDestinationHandler func(string)
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window, elider display.Elider) *MainView {
	view := &MainView{
		window: window,
		elider: elider,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.reloadButton = widget.NewButton("Reload", nil)
	mv.moveButton = widget.NewButton("Move All Files", nil)
	mv.moveButton.Importance = widget.HighImportance
	mv.moveButton.Disable()

	mv.filePanel = components.NewListPanel("Files to Move:", nil)
	mv.destPanel = components.NewListPanel("Stored Locations:", mv.reloadButton)
	mv.statusBar = components.NewStatusBar()
	mv.prompt = components.NewDestinationDialog(mv.window)
}

func (mv *MainView) buildLayout() {
	lists := container.NewGridWithColumns(2,
		mv.filePanel.GetContainer(),
		mv.destPanel.GetContainer(),
	)

	bottomArea := container.NewVBox(
		container.NewCenter(mv.moveButton),
		widget.NewSeparator(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,        // top
		bottomArea, // bottom
		nil,        // left
		nil,        // right
		container.NewPadded(lists),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.reloadButton.OnTapped = func() {
		if mv.reloadHandler != nil {
			mv.reloadHandler()
		}
	}

	mv.moveButton.OnTapped = func() {
		if mv.moveAllHandler != nil {
			mv.moveAllHandler()
		}
	}

	mv.prompt.SetDecisionHandler(func(d models.Decision) {
		if mv.decisionHandler != nil {
			mv.decisionHandler(d)
		}
	})

	mv.prompt.SetAddHandler(mv.chooseNewDestination)
}

// Event handler setters - called by controller

// SetMoveAllHandler sets the handler for the Move All Files button
func (mv *MainView) SetMoveAllHandler(handler func()) {
	mv.moveAllHandler = handler
}

// SetReloadHandler sets the handler for the Reload button
func (mv *MainView) SetReloadHandler(handler func()) {
	mv.reloadHandler = handler
}

// SetDecisionHandler sets the handler for per-file decisions
func (mv *MainView) SetDecisionHandler(handler func(models.Decision)) {
	mv.decisionHandler = handler
}

// SetAddDestinationHandler sets the handler receiving newly picked destinations
func (mv *MainView) SetAddDestinationHandler(handler func(string)) {
	mv.addDestinationHandler = handler
}

// UI update methods - called by controller

// RenderFiles redraws the pending list from state
func (mv *MainView) RenderFiles(state sequencer.State) {
	labels := display.PendingLabels(state)
	sum := state.Summary()
	fyne.Do(func() {
		mv.filePanel.SetItems(labels)
		mv.statusBar.SetSource(mv.elider.Elide(state.Source))
		mv.statusBar.SetCounts(sum.Total-sum.Pending, sum.Total, sum.Moved, sum.Failed)
		if state.Done() {
			mv.moveButton.Disable()
		} else {
			mv.moveButton.Enable()
		}
	})
}

// RenderDestinations redraws the stored locations list
func (mv *MainView) RenderDestinations(destinations []string) {
	labels := mv.elider.ElideAll(destinations)
	fyne.Do(func() {
		mv.destPanel.SetItems(labels)
	})
}

// PromptDestination opens the destination dialog for file
func (mv *MainView) PromptDestination(file models.PendingFile, destinations []string) {
	labels := mv.elider.ElideAll(destinations)
	fyne.Do(func() {
		mv.prompt.Present(file.Name, destinations, labels)
	})
}

// ClosePrompt hides the destination dialog
func (mv *MainView) ClosePrompt() {
	fyne.Do(func() {
		mv.prompt.Hide()
	})
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	fyne.Do(func() {
		mv.statusBar.SetStatus(status)
	})
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	fyne.Do(func() {
		dialog.ShowError(fmt.Errorf("%s: %w", title, err), mv.window)
	})
}

// ShowInformation displays an information dialog
func (mv *MainView) ShowInformation(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, mv.window)
	})
}

// ShowConfirm displays a yes/no dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// PromptSourceFolder asks for the folder to sort, starting in initial.
// callback receives "" when the picker is cancelled.
func (mv *MainView) PromptSourceFolder(initial string, callback func(string)) {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			mv.ShowError("Select Source Folder", err)
			callback("")
			return
		}
		if uri == nil {
			callback("")
			return
		}
		callback(uri.Path())
	}, mv.window)

	if lister, err := storage.ListerForURI(storage.NewFileURI(initial)); err == nil {
		picker.SetLocation(lister)
	}
	picker.Resize(mv.window.Canvas().Size())
	picker.Show()
}

func (mv *MainView) chooseNewDestination() {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			mv.ShowError("Select New Destination", err)
			return
		}
		if uri == nil || mv.addDestinationHandler == nil {
			return
		}
		mv.addDestinationHandler(uri.Path())
	}, mv.window)

	if home, err := os.UserHomeDir(); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(home)); err == nil {
			picker.SetLocation(lister)
		}
	}
	picker.Resize(mv.window.Canvas().Size())
	picker.Show()
}

// Show displays the main window
func (mv *MainView) Show() {
	mv.window.Show()
}
