// Package registry persists the ordered list of known destination folders as
// a plain text file, one path per line.
package registry

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gofrs/flock"

	"file-mover/internal/logger"
)

const component = "Registry"

// Load reads the registry file at path, creating an empty one when it does
// not exist. Blank lines are ignored. Duplicates are returned as stored.
func Load(path string) ([]string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create %s: %w", ErrIOUnavailable, dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIOUnavailable, path, err)
	}
	defer file.Close()

	entries := make([]string, 0)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIOUnavailable, path, err)
	}
	return entries, nil
}

// Append returns entries with destination added at the end. When destination
// is already present the original slice is returned and added is false.
func Append(entries []string, destination string) (updated []string, added bool) {
	if slices.Contains(entries, destination) {
		return entries, false
	}
	updated = make([]string, 0, len(entries)+1)
	updated = append(updated, entries...)
	return append(updated, destination), true
}

// Persist overwrites the file at path with entries, one per line.
func Persist(path string, entries []string) error {
	var buf bytes.Buffer
	for _, entry := range entries {
		buf.WriteString(entry)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("persist registry %s: %w", path, err)
	}
	return nil
}

// Registry is the process-owned destination list. It holds an advisory lock
// on <path>.lock for its lifetime.
type Registry struct {
	path    string
	entries []string
	lock    *flock.Flock
	log     logger.Logger
}

// Open locks and loads the registry at path.
func Open(path string, log logger.Logger) (*Registry, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if path == "" {
		return nil, fmt.Errorf("%w: no registry path configured", ErrIOUnavailable)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create %s: %w", ErrIOUnavailable, dir, err)
		}
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("%w: lock %s: %w", ErrIOUnavailable, lock.Path(), err)
	}
	if !ok {
		return nil, WithHint(fmt.Errorf("%w: %s", ErrLocked, path),
			"Close the other file-mover window or remove the stale .lock file")
	}

	entries, err := Load(path)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	log.Info(component, "registry loaded", map[string]interface{}{
		"path":         path,
		"destinations": len(entries),
	})

	return &Registry{
		path:    path,
		entries: entries,
		lock:    lock,
		log:     log,
	}, nil
}

// Path returns the registry file location.
func (r *Registry) Path() string {
	return r.path
}

// Entries returns a copy of the destinations in insertion order.
func (r *Registry) Entries() []string {
	return slices.Clone(r.entries)
}

// Len returns the number of destinations.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Contains reports whether destination is registered.
func (r *Registry) Contains(destination string) bool {
	return slices.Contains(r.entries, filepath.Clean(destination))
}

// Add registers destination and rewrites the file. Adding a known
// destination is a no-op. If the write fails the in-memory list is left as
// it was before the call.
func (r *Registry) Add(destination string) (bool, error) {
	if strings.TrimSpace(destination) == "" {
		return false, ErrEmptyDestination
	}
	destination = filepath.Clean(destination)

	updated, added := Append(r.entries, destination)
	if !added {
		r.log.Debug(component, "destination already registered", map[string]interface{}{
			"path": destination,
		})
		return false, nil
	}

	if err := Persist(r.path, updated); err != nil {
		return false, err
	}
	r.entries = updated

	r.log.Info(component, "destination added", map[string]interface{}{
		"path":         destination,
		"destinations": len(r.entries),
	})
	return true, nil
}

// Persist rewrites the registry file from memory.
func (r *Registry) Persist() error {
	return Persist(r.path, r.entries)
}

// Reload replaces the in-memory list with the file contents.
func (r *Registry) Reload() error {
	entries, err := Load(r.path)
	if err != nil {
		return err
	}
	r.entries = entries

	r.log.Debug(component, "registry reloaded", map[string]interface{}{
		"destinations": len(entries),
	})
	return nil
}

// Close releases the registry lock.
func (r *Registry) Close() error {
	if r == nil || r.lock == nil {
		return nil
	}
	return r.lock.Unlock()
}

// Shutdown satisfies shutdown.Component.
func (r *Registry) Shutdown() {
	if err := r.Close(); err != nil {
		r.log.Error(component, err, map[string]interface{}{"op": "unlock"})
	}
}
