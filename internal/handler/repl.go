package handler

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-shellwords"

	"github.com/passgen/passgen-go/internal/display"
)

var replExamples = []string{
	"passgen -l 16 -a -A -n -s -c 5",
	"passgen --temp",
	"pg -l 12 -r -c 3",
}

// CommandRunner executes one tokenized passgen command line and returns its exit code.
type CommandRunner func(args []string) int

// REPL treats every entered line as a passgen command. "pg" is accepted as
// an alias for "passgen".
type REPL struct {
	display     *display.Display
	prompt      *Prompter
	historyFile string
	run         CommandRunner
}

// NewREPL creates a REPL that executes lines with run. Entered lines are kept
// in historyFile; an empty path disables history.
func NewREPL(d *display.Display, prompt *Prompter, historyFile string, run CommandRunner) *REPL {
	return &REPL{display: d, prompt: prompt, historyFile: historyFile, run: run}
}

// Run reads commands until "exit", "quit" or end of input.
func (r *REPL) Run() int {
	r.display.PrintBanner()
	r.display.PrintExamples(replExamples)

	rl, err := r.prompt.LineEditor(r.display.Prompt("passgen"), r.historyFile)
	if err != nil {
		slog.Error("failed to start line editor", "error", err)
		r.display.PrintError("Failed to start interactive mode")
		return 1
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if err = r.prompt.handle(err); err == nil {
				continue
			}
		}
		if err != nil {
			return 0
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return 0
		}

		tokens, err := shellwords.Parse(line)
		if err != nil {
			r.display.PrintError("Failed to parse command")
			continue
		}
		tokens = stripProgramName(tokens)
		if len(tokens) == 0 {
			continue
		}

		r.run(tokens)
	}
}

// stripProgramName drops a leading "passgen" or "pg" token, ignoring case.
func stripProgramName(tokens []string) []string {
	if len(tokens) > 0 && (strings.EqualFold(tokens[0], "passgen") || strings.EqualFold(tokens[0], "pg")) {
		return tokens[1:]
	}
	return tokens
}
