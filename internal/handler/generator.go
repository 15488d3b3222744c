package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/passgen/passgen-go/internal/clipboard"
	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/display"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
)

const clipboardHint = "Clipboard not available. Install xclip or xsel on Linux."

// Options are the flag values of a single non-interactive invocation.
type Options struct {
	Length    int
	Count     int
	Numbers   bool
	Lowercase bool
	Uppercase bool
	Special   bool
	Random    bool
	Quiet     bool
	NoCopy    bool
	// Copy is the 1-based index of the password to copy; 0 means unset.
	Copy int
}

func (o Options) classes() []crypto.Class {
	var classes []crypto.Class
	if o.Numbers {
		classes = append(classes, crypto.Numbers)
	}
	if o.Lowercase {
		classes = append(classes, crypto.Lowercase)
	}
	if o.Uppercase {
		classes = append(classes, crypto.Uppercase)
	}
	if o.Special {
		classes = append(classes, crypto.Special)
	}
	return classes
}

// GeneratorHandler runs flag-driven password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
	display *display.Display
	clip    clipboard.Copier
	prompt  *Prompter
}

// NewGeneratorHandler creates a new GeneratorHandler. A nil prompt disables
// the copy selection prompt for multiple passwords.
func NewGeneratorHandler(svc *service.GeneratorService, d *display.Display, clip clipboard.Copier, prompt *Prompter) *GeneratorHandler {
	return &GeneratorHandler{service: svc, display: d, clip: clip, prompt: prompt}
}

// HandleGenerate generates, prints and optionally copies passwords. It returns
// the process exit code.
func (h *GeneratorHandler) HandleGenerate(opts Options) int {
	resp, err := h.service.Generate(model.GenerateRequest{
		Length:  opts.Length,
		Count:   opts.Count,
		Classes: opts.classes(),
		Random:  opts.Random,
	})
	if err != nil {
		if service.IsValidationError(err) {
			h.display.PrintError(sentence(err.Error()))
			return 1
		}
		slog.Error("password generation failed", "error", err)
		h.display.PrintError("Failed to generate passwords")
		return 1
	}

	if resp.Randomized && !opts.Quiet {
		h.display.PrintInfo("Randomly selected: " + crypto.ClassNames(resp.Classes))
	}

	switch {
	case opts.Quiet:
		for _, pw := range resp.Passwords {
			h.display.PrintPlain(pw)
		}
		return 0
	case len(resp.Passwords) == 1:
		h.display.PrintPassword(resp.Passwords[0])
	default:
		h.display.PrintPasswords(resp.Passwords)
	}

	if opts.NoCopy {
		return 0
	}

	switch {
	case opts.Copy != 0:
		if opts.Copy < 1 || opts.Copy > len(resp.Passwords) {
			h.display.PrintError(fmt.Sprintf("Invalid password number: %d", opts.Copy))
			return 0
		}
		copyToClipboard(h.display, h.clip, resp.Passwords[opts.Copy-1], fmt.Sprintf("Password [%d] copied to clipboard!", opts.Copy))
	case len(resp.Passwords) == 1:
		copyToClipboard(h.display, h.clip, resp.Passwords[0], "Copied to clipboard!")
	default:
		h.promptAndCopy(resp.Passwords)
	}

	return 0
}

// promptAndCopy asks which of several passwords to copy. An empty answer or
// the end of input skips copying.
func (h *GeneratorHandler) promptAndCopy(passwords []string) {
	if h.prompt == nil {
		return
	}

	msg := fmt.Sprintf("Copy to clipboard? (1-%d, 'a' for all, Enter to skip)", len(passwords))
	choice, err := h.prompt.Ask(msg, validation(func(s string) error {
		if s == "" || strings.EqualFold(s, "a") {
			return nil
		}
		if _, err := strconv.Atoi(s); err != nil {
			return errors.New("enter a number, 'a', or press Enter to skip")
		}
		if _, err := parseIndex(s, len(passwords)); err != nil {
			return fmt.Errorf("please enter 1-%d", len(passwords))
		}
		return nil
	}))
	if err != nil || choice == "" {
		return
	}

	if strings.EqualFold(choice, "a") {
		copyToClipboard(h.display, h.clip, strings.Join(passwords, "\n"), "All passwords copied to clipboard!")
		return
	}

	idx, err := parseIndex(choice, len(passwords))
	if err != nil {
		return
	}
	copyToClipboard(h.display, h.clip, passwords[idx-1], fmt.Sprintf("Password [%d] copied to clipboard!", idx))
}

// copyToClipboard copies text and reports the outcome, printing the install
// hint when no clipboard utility is present.
func copyToClipboard(d *display.Display, clip clipboard.Copier, text, success string) {
	if !clip.Available() {
		d.PrintInfo(clipboardHint)
		return
	}
	if err := clip.Copy(text); err != nil {
		slog.Debug("clipboard copy failed", "error", err)
		d.PrintError("Failed to copy to clipboard")
		return
	}
	d.PrintSuccess(success)
}

// sentence upper-cases the first letter of an error message for display.
func sentence(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
