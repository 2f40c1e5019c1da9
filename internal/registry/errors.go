package registry

import "errors"

var (
	// ErrIOUnavailable indicates the registry file could not be created or read
	ErrIOUnavailable = errors.New("destination registry unavailable")

	// ErrLocked indicates another process holds the registry lock
	ErrLocked = errors.New("destination registry is in use by another process")

	// ErrEmptyDestination indicates an empty destination path was supplied
	ErrEmptyDestination = errors.New("destination path is empty")
)

// HintedError wraps an error with an actionable hint
type HintedError struct {
	Err  error
	Hint string
}

func (e *HintedError) Error() string {
	return e.Err.Error()
}

func (e *HintedError) Unwrap() error {
	return e.Err
}

// WithHint wraps an error with an actionable hint for the user
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return &HintedError{Err: err, Hint: hint}
}

// GetHint returns the hint for HintedError
func (e *HintedError) GetHint() string {
	return e.Hint
}

// GetHint extracts the hint from a HintedError, if present
func GetHint(err error) string {
	var hinted *HintedError
	if errors.As(err, &hinted) {
		return hinted.Hint
	}
	return ""
}
