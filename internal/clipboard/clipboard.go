// Package clipboard copies generated passwords to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("clipboard not available")

// Copier is a destination for generated passwords. Callers check Available
// before copying so they can tell a missing clipboard from a failed copy.
type Copier interface {
	Copy(text string) error
	Available() bool
}

// System copies through pbcopy, xclip/xsel/wl-copy or clip.exe depending on the platform.
type System struct{}

// NewSystem creates a System clipboard.
func NewSystem() System {
	return System{}
}

// Available reports whether a clipboard utility was found.
func (System) Available() bool {
	return !clipboard.Unsupported
}

// Copy writes text to the clipboard.
func (s System) Copy(text string) error {
	if !s.Available() {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
