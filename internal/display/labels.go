package display

import (
	"file-mover/internal/models"
	"file-mover/internal/sequencer"
)

// CurrentMarker prefixes the file awaiting a decision.
const CurrentMarker = "▶ "

// PendingLabels renders the files still shown in the pending list, in order.
// Moved files are left out; skipped and failed files keep a status suffix.
func PendingLabels(state sequencer.State) []string {
	visible := state.Visible()
	labels := make([]string, 0, len(visible))
	for _, i := range visible {
		file := state.Files[i]
		label := FileLabel(file.Name, file.Size)
		switch status := state.Status(i); status {
		case models.StatusSkipped, models.StatusFailed:
			label += " [" + status.String() + "]"
		}
		if i == state.Index {
			label = CurrentMarker + label
		}
		labels = append(labels, label)
	}
	return labels
}
