package handler

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/passgen/passgen-go/internal/clipboard/clipboardtest"
	"github.com/passgen/passgen-go/internal/display"
	"github.com/passgen/passgen-go/internal/service"
)

// syncBuffer guards output that prompts may write from readline's goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fixture struct {
	out     *syncBuffer
	display *display.Display
	clip    *clipboardtest.Memory
	prompt  *Prompter
	service *service.GeneratorService
}

func newFixture(t *testing.T, input string) *fixture {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	out := &syncBuffer{}
	d := display.New(out, display.Options{Version: "test"})
	return &fixture{
		out:     out,
		display: d,
		clip:    &clipboardtest.Memory{},
		prompt:  NewPrompter(d, strings.NewReader(input)),
		service: service.NewGeneratorService(),
	}
}

func (f *fixture) generator() *GeneratorHandler {
	return NewGeneratorHandler(f.service, f.display, f.clip, f.prompt)
}

func (f *fixture) interactive() *InteractiveHandler {
	return NewInteractiveHandler(f.service, f.display, f.clip, f.prompt)
}

// typed scripts one prompt answered several times. A rejected answer stays
// in the input line, so each retry first erases the previous attempt.
func typed(attempts ...string) string {
	var b strings.Builder
	prev := ""
	for _, a := range attempts {
		b.WriteString(strings.Repeat("\x7f", utf8.RuneCountInString(prev)))
		b.WriteString(a)
		b.WriteString("\n")
		prev = a
	}
	return b.String()
}
