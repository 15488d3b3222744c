// Package display renders passgen output: banner, passwords, menus and status
// messages. It keeps no state beyond the writer it was created with.
package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/passgen/passgen-go/internal/crypto"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"

	ruleWidth = 50
	lineDelay = 35 * time.Millisecond
)

var passgenArt = []string{
	"  ██████╗  █████╗ ███████╗███████╗ ██████╗ ███████╗███╗   ██╗  ",
	"  ██╔══██╗██╔══██╗██╔════╝██╔════╝██╔════╝ ██╔════╝████╗  ██║  ",
	"  ██████╔╝███████║███████╗███████╗██║  ███╗█████╗  ██╔██╗ ██║  ",
	"  ██╔═══╝ ██╔══██║╚════██║╚════██║██║   ██║██╔══╝  ██║╚██╗██║  ",
	"  ██║     ██║  ██║███████║███████║╚██████╔╝███████╗██║ ╚████║  ",
	"  ╚═╝     ╚═╝  ╚═╝╚══════╝╚══════╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝  ",
}

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
	accentColor  = color.New(color.FgCyan)
	titleColor   = color.New(color.FgHiCyan, color.Bold)
	dimColor     = color.New(color.Faint)
	pwColor      = color.New(color.FgHiGreen, color.Bold)
)

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(lipgloss.Color("6")).
	Foreground(lipgloss.Color("14"))

var versionStyle = lipgloss.NewStyle().Faint(true)

var passwordStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("6")).
	Foreground(lipgloss.Color("10")).
	Bold(true).
	Padding(0, 2)

// Options configures a Display.
type Options struct {
	// Animate reveals the banner line by line. Only useful on a terminal.
	Animate bool
	Version string
}

// Display writes decorated output to a writer.
type Display struct {
	out  io.Writer
	opts Options
}

// New creates a Display writing to out.
func New(out io.Writer, opts Options) *Display {
	return &Display{out: out, opts: opts}
}

// Writer returns the underlying writer.
func (d *Display) Writer() io.Writer {
	return d.out
}

// PrintBanner prints the PASSGEN box with the version line and usage hint.
func (d *Display) PrintBanner() {
	art := strings.Join(passgenArt, "\n")
	version := versionStyle.Render(fmt.Sprintf("Secure Password Generator v%s", d.opts.Version))
	box := bannerStyle.Render(lipgloss.JoinVertical(lipgloss.Center, art, "", version))

	fmt.Fprintln(d.out)
	if d.opts.Animate {
		fmt.Fprint(d.out, hideCursor)
		for _, line := range strings.Split(box, "\n") {
			fmt.Fprintln(d.out, line)
			time.Sleep(lineDelay)
		}
		fmt.Fprint(d.out, showCursor)
	} else {
		fmt.Fprintln(d.out, box)
	}
	dimColor.Fprintln(d.out, "Exit: Ctrl+C    Help: passgen --help")
	fmt.Fprintln(d.out)
}

// PrintExamples prints example commands under a heading.
func (d *Display) PrintExamples(examples []string) {
	titleColor.Fprintln(d.out, "Examples:")
	for _, ex := range examples {
		fmt.Fprintf(d.out, "  %s\n", accentColor.Sprint(ex))
	}
	fmt.Fprintln(d.out)
}

// PrintPassword prints a single password inside a box.
func (d *Display) PrintPassword(password string) {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, passwordStyle.Render(password))
	fmt.Fprintln(d.out)
}

// PrintPasswords prints a numbered list of passwords between horizontal rules.
func (d *Display) PrintPasswords(passwords []string) {
	rule := accentColor.Sprint(strings.Repeat("═", ruleWidth))

	fmt.Fprintf(d.out, "\n%s\n", rule)
	titleColor.Fprintln(d.out, "  Generated Passwords")
	fmt.Fprintf(d.out, "%s\n\n", rule)

	for i, pw := range passwords {
		fmt.Fprintf(d.out, "  %s %s\n", dimColor.Sprintf("[%d]", i+1), pwColor.Sprint(pw))
	}

	fmt.Fprintf(d.out, "\n%s\n\n", rule)
}

// PrintPlain prints s without decoration, for scripting output.
func (d *Display) PrintPlain(s string) {
	fmt.Fprintln(d.out, s)
}

func (d *Display) PrintSuccess(msg string) {
	successColor.Fprintf(d.out, "✓ %s\n", msg)
}

func (d *Display) PrintError(msg string) {
	errorColor.Fprintf(d.out, "✗ Error: %s\n", msg)
}

func (d *Display) PrintInfo(msg string) {
	infoColor.Fprintf(d.out, "ℹ %s\n", msg)
}

// PrintMenu prints the character type menu used by the interactive mode.
func (d *Display) PrintMenu() {
	fmt.Fprintln(d.out)
	titleColor.Fprintln(d.out, "Character Types:")
	for i, c := range crypto.AllClasses() {
		fmt.Fprintf(d.out, "  %s) %s\n", accentColor.Sprint(i+1), c.Label())
	}
	fmt.Fprintf(d.out, "  %s) All types\n", accentColor.Sprint(5))
	fmt.Fprintf(d.out, "  %s) Random types\n", accentColor.Sprint(6))
	fmt.Fprintln(d.out)
}

// PrintSelectedTypes prints the short labels of the classes a password was drawn from.
func (d *Display) PrintSelectedTypes(classes []crypto.Class) {
	labels := make([]string, len(classes))
	for i, c := range classes {
		labels[i] = c.ShortLabel()
	}
	dimColor.Fprintf(d.out, "Character types: %s\n", strings.Join(labels, ", "))
}

// Prompt formats msg as a line editor prompt.
func (d *Display) Prompt(msg string) string {
	return accentColor.Sprint(msg) + ": "
}

// PrintHelp prints command help, highlighting option lines.
func (d *Display) PrintHelp(text string) {
	titleColor.Fprintln(d.out, "Help")
	fmt.Fprintln(d.out)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "-") {
			fmt.Fprintln(d.out, accentColor.Sprint(line))
			continue
		}
		fmt.Fprintln(d.out, line)
	}
}
