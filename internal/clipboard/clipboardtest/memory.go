// Package clipboardtest provides an in-memory clipboard for tests.
package clipboardtest

import "github.com/passgen/passgen-go/internal/clipboard"

// Memory records copied text instead of touching the system clipboard.
type Memory struct {
	Copied []string
	// Unavailable makes the clipboard report that no utility is installed.
	Unavailable bool
	// Err is returned by Copy when set.
	Err error
}

var _ clipboard.Copier = (*Memory)(nil)

func (m *Memory) Available() bool {
	return !m.Unavailable
}

func (m *Memory) Copy(text string) error {
	if m.Unavailable {
		return clipboard.ErrUnavailable
	}
	if m.Err != nil {
		return m.Err
	}
	m.Copied = append(m.Copied, text)
	return nil
}

// Last returns the most recently copied text.
func (m *Memory) Last() (string, bool) {
	if len(m.Copied) == 0 {
		return "", false
	}
	return m.Copied[len(m.Copied)-1], true
}
