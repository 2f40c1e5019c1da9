// Package display formats paths and file names for the dialogs. Nothing here
// changes stored or compared values.
package display

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Elider shortens long strings to a prefix and suffix joined by a marker.
type Elider struct {
	MaxLength int
	Keep      int
	Marker    string
}

// Elide returns s unchanged when it fits in MaxLength runes, otherwise the
// first and last Keep runes around Marker.
func (e Elider) Elide(s string) string {
	r := []rune(s)
	if e.MaxLength <= 0 || len(r) <= e.MaxLength {
		return s
	}
	keep := e.Keep
	if keep <= 0 || 2*keep >= len(r) {
		return s
	}
	return string(r[:keep]) + e.Marker + string(r[len(r)-keep:])
}

// ElideAll applies Elide to every entry, keeping order.
func (e Elider) ElideAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = e.Elide(item)
	}
	return out
}

// FileLabel renders a pending file with its size, e.g. "report.pdf (1.2 MB)".
func FileLabel(name string, size int64) string {
	if size < 0 {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, humanize.Bytes(uint64(size)))
}
