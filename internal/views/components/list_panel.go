package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ListPanel is a titled, read-only list of labels
type ListPanel struct {
	container *fyne.Container
	title     *widget.Label
	list      *widget.List
	items     []string
}

// NewListPanel creates a panel with the given heading. action, if not nil,
// is placed to the right of the heading.
func NewListPanel(title string, action fyne.CanvasObject) *ListPanel {
	lp := &ListPanel{
		title: widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}
	lp.list = widget.NewList(
		func() int { return len(lp.items) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(lp.items) {
				obj.(*widget.Label).SetText(lp.items[id])
			}
		},
	)
	// Selection has no meaning here.
	lp.list.OnSelected = func(id widget.ListItemID) {
		lp.list.Unselect(id)
	}

	var header fyne.CanvasObject = lp.title
	if action != nil {
		header = container.NewBorder(nil, nil, nil, action, lp.title)
	}
	lp.container = container.NewBorder(header, nil, nil, nil, lp.list)
	return lp
}

// SetItems replaces the displayed labels
func (lp *ListPanel) SetItems(items []string) {
	lp.items = items
	lp.list.Refresh()
}

// Items returns the displayed labels
func (lp *ListPanel) Items() []string {
	return lp.items
}

// GetContainer returns the panel container
func (lp *ListPanel) GetContainer() *fyne.Container {
	return lp.container
}
