package handler

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/manifoldco/promptui"
	"golang.org/x/term"

	"github.com/passgen/passgen-go/internal/display"
)

var ErrInterrupted = errors.New("interrupted")

// promptTemplates returns fresh templates; promptui compiles into them on every run.
func promptTemplates() *promptui.PromptTemplates {
	return &promptui.PromptTemplates{
		Prompt:          `{{ . | cyan }}: `,
		Valid:           `{{ . | cyan }}: `,
		Invalid:         `{{ . | red }}: `,
		Success:         `{{ . | faint }}: `,
		Confirm:         `{{ . | cyan }} {{ "[Y/n]" | faint }} `,
		ValidationError: `{{ printf "✗ Error: %s" . | red }}`,
	}
}

// Prompter asks the user for answers through promptui and hands out line
// editors that share the same input.
type Prompter struct {
	in          *keyReader
	out         io.WriteCloser
	terminal    bool
	onInterrupt func()
}

// NewPrompter creates a Prompter that renders through d and reads from in.
func NewPrompter(d *display.Display, in io.Reader) *Prompter {
	p := &Prompter{
		in:  &keyReader{r: bufio.NewReader(in)},
		out: nopWriteCloser{d.Writer()},
	}
	if f, ok := in.(*os.File); ok {
		p.terminal = term.IsTerminal(int(f.Fd()))
	}
	return p
}

// OnInterrupt sets the function called when Ctrl+C is pressed at a prompt.
// The prompt is asked again afterwards. Without a handler Ctrl+C ends the
// prompt with ErrInterrupted.
func (p *Prompter) OnInterrupt(fn func()) {
	p.onInterrupt = fn
}

// Ask prompts with label until validate accepts the answer and returns it
// trimmed. It returns io.EOF once input is exhausted.
func (p *Prompter) Ask(label string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Templates: promptTemplates(),
		Stdin:     p.in,
		Stdout:    p.out,
	}
	if validate != nil {
		prompt.Validate = func(s string) error {
			return validate(strings.TrimSpace(s))
		}
	}

	for {
		answer, err := prompt.Run()
		if err == nil {
			return strings.TrimSpace(answer), nil
		}
		if err = p.handle(err); err != nil {
			return "", err
		}
	}
}

// Confirm asks a yes/no question that defaults to yes.
func (p *Prompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   "y",
		Templates: promptTemplates(),
		Stdin:     p.in,
		Stdout:    p.out,
	}

	for {
		answer, err := prompt.Run()
		if err == nil {
			return true, nil
		}
		if errors.Is(err, promptui.ErrAbort) {
			return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
		}
		if err = p.handle(err); err != nil {
			return false, err
		}
	}
}

// LineEditor opens a readline instance on the prompter's input. Lines entered
// are appended to historyFile unless it is empty.
func (p *Prompter) LineEditor(prompt, historyFile string) (*readline.Instance, error) {
	cfg := &readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		HistorySearchFold: true,
		Stdin:             p.in,
		Stdout:            p.out,
		FuncIsTerminal:    func() bool { return p.terminal },
	}
	if !p.terminal {
		// Scripted input never touches the terminal mode.
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
	}
	return readline.NewEx(cfg)
}

// handle maps a prompt error. It returns nil when the prompt should be asked again.
func (p *Prompter) handle(err error) error {
	switch {
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, readline.ErrInterrupt):
		if p.onInterrupt == nil {
			return ErrInterrupted
		}
		p.onInterrupt()
		return nil
	case errors.Is(err, promptui.ErrEOF), errors.Is(err, io.EOF):
		return io.EOF
	default:
		return err
	}
}

// keyReader passes input on one keystroke batch or submitted line per Read.
// Each prompt buffers what it reads, so a Read never crosses a submitting key.
type keyReader struct {
	r *bufio.Reader
}

func (k *keyReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if n > 0 && k.r.Buffered() == 0 {
			break
		}
		b, err := k.r.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		p[n] = b
		n++
		if isSubmitKey(b) {
			break
		}
	}
	return n, nil
}

// Close is a no-op. Readline closes its input when a prompt ends, but the
// underlying reader outlives every prompt.
func (k *keyReader) Close() error {
	return nil
}

func isSubmitKey(b byte) bool {
	switch rune(b) {
	case readline.CharEnter, readline.CharCtrlJ, readline.CharInterrupt, readline.CharDelete:
		return true
	}
	return false
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
