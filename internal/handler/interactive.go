package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/passgen/passgen-go/internal/clipboard"
	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/display"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
)

const (
	menuAll    = 5
	menuRandom = 6
)

var (
	errSelectionEmpty  = errors.New("please select at least one option")
	errSelectionFormat = errors.New("please enter comma-separated numbers")
	errSelectionRange  = errors.New("please enter numbers between 1-6")

	errLengthAnswer = fmt.Errorf("please enter a number between %d-%d", service.MinLength, service.MaxLength)
	errCountAnswer  = errors.New("please enter a number >= 1")
)

// selection is a parsed menu answer.
type selection struct {
	classes []crypto.Class
	random  bool
}

// parseSelection parses a comma separated menu answer such as "1,3".
// "All types" wins over "Random types", which wins over individual classes.
func parseSelection(input string) (selection, error) {
	if strings.TrimSpace(input) == "" {
		return selection{}, errSelectionEmpty
	}

	var choices []int
	for _, field := range strings.Split(input, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return selection{}, errSelectionFormat
		}
		choices = append(choices, n)
	}

	if slices.Contains(choices, menuAll) {
		return selection{classes: crypto.AllClasses()}, nil
	}
	if slices.Contains(choices, menuRandom) {
		return selection{random: true}, nil
	}

	all := crypto.AllClasses()
	var classes []crypto.Class
	for _, n := range choices {
		if n < 1 || n > len(all) {
			return selection{}, errSelectionRange
		}
		c := all[n-1]
		if !slices.Contains(classes, c) {
			classes = append(classes, c)
		}
	}
	return selection{classes: classes}, nil
}

// InteractiveHandler runs the menu driven generation loop.
type InteractiveHandler struct {
	service *service.GeneratorService
	display *display.Display
	clip    clipboard.Copier
	prompt  *Prompter
}

// NewInteractiveHandler creates a new InteractiveHandler.
func NewInteractiveHandler(svc *service.GeneratorService, d *display.Display, clip clipboard.Copier, prompt *Prompter) *InteractiveHandler {
	return &InteractiveHandler{service: svc, display: d, clip: clip, prompt: prompt}
}

// Run loops through menu, length, count and copy prompts until the user
// declines to continue or input ends. It returns the process exit code.
func (h *InteractiveHandler) Run(showBanner bool) int {
	for {
		if showBanner {
			h.display.PrintBanner()
		}
		showBanner = false

		h.display.PrintMenu()

		classes, ok := h.askClasses()
		if !ok {
			return 0
		}

		fmt.Fprintln(h.display.Writer())
		length, ok := h.askLength()
		if !ok {
			return 0
		}

		count, ok := h.askCount()
		if !ok {
			return 0
		}

		resp, err := h.service.Generate(model.GenerateRequest{
			Length:  length,
			Count:   count,
			Classes: classes,
		})
		if err != nil {
			slog.Error("password generation failed", "error", err)
			h.display.PrintError(sentence(err.Error()))
			continue
		}

		h.display.PrintSelectedTypes(resp.Classes)
		h.output(resp.Passwords)

		again, err := h.prompt.Confirm("Generate another password?")
		if err != nil || !again {
			return 0
		}
	}
}

func (h *InteractiveHandler) askClasses() ([]crypto.Class, bool) {
	for {
		answer, err := h.prompt.Ask("Selection", validation(func(s string) error {
			_, err := parseSelection(s)
			return err
		}))
		if err != nil {
			return nil, false
		}

		sel, err := parseSelection(answer)
		if err != nil {
			continue
		}
		if !sel.random {
			return sel.classes, true
		}

		classes, err := h.service.RandomClasses()
		if err != nil {
			slog.Error("random class selection failed", "error", err)
			h.display.PrintError("Failed to select random character types")
			continue
		}
		h.display.PrintInfo("Randomly selected: " + crypto.ClassNames(classes))
		return classes, true
	}
}

func (h *InteractiveHandler) askLength() (int, bool) {
	msg := fmt.Sprintf("Password length (%d-%d)", service.MinLength, service.MaxLength)
	answer, err := h.prompt.Ask(msg, validation(func(s string) error {
		_, err := parseLength(s)
		return err
	}))
	if err != nil {
		return 0, false
	}
	length, err := parseLength(answer)
	return length, err == nil
}

func (h *InteractiveHandler) askCount() (int, bool) {
	answer, err := h.prompt.Ask("Number of passwords (default: 1)", validation(func(s string) error {
		_, err := parseCount(s)
		return err
	}))
	if err != nil {
		return 0, false
	}
	count, err := parseCount(answer)
	return count, err == nil
}

func (h *InteractiveHandler) output(passwords []string) {
	if len(passwords) == 1 {
		h.display.PrintPassword(passwords[0])
		copyToClipboard(h.display, h.clip, passwords[0], "Copied to clipboard!")
		return
	}

	h.display.PrintPasswords(passwords)

	msg := fmt.Sprintf("Copy password to clipboard (1-%d, or leave empty to skip)", len(passwords))
	answer, err := h.prompt.Ask(msg, validation(func(s string) error {
		if s == "" {
			return nil
		}
		_, err := parseIndex(s, len(passwords))
		return err
	}))
	if err != nil || answer == "" {
		return
	}

	idx, err := parseIndex(answer, len(passwords))
	if err != nil {
		return
	}
	copyToClipboard(h.display, h.clip, passwords[idx-1], fmt.Sprintf("Password [%d] copied to clipboard!", idx))
}

func parseLength(s string) (int, error) {
	length, err := strconv.Atoi(s)
	if err != nil || service.ValidateLength(length) != nil {
		return 0, errLengthAnswer
	}
	return length, nil
}

// parseCount treats an empty answer as one password.
func parseCount(s string) (int, error) {
	if s == "" {
		return 1, nil
	}
	count, err := strconv.Atoi(s)
	if err != nil || service.ValidateCount(count) != nil {
		return 0, errCountAnswer
	}
	return count, nil
}

// parseIndex parses a 1-based password number no greater than n.
func parseIndex(s string, n int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 1 || idx > n {
		return 0, fmt.Errorf("please enter a number between 1-%d", n)
	}
	return idx, nil
}

// validation adapts fn so its error reads as a sentence under the prompt.
func validation(fn func(string) error) func(string) error {
	return func(s string) error {
		if err := fn(s); err != nil {
			return errors.New(sentence(err.Error()))
		}
		return nil
	}
}
