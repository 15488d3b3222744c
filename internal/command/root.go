// Package command wires the passgen cobra command to the handlers.
package command

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/passgen/passgen-go/internal/clipboard"
	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/display"
	"github.com/passgen/passgen-go/internal/handler"
	"github.com/passgen/passgen-go/internal/service"
)

const Version = "1.0.0"

const examples = `  passgen                              Interactive mode
  passgen -l 16                        16 chars with all character types
  passgen -l 20 -n -a                  20 chars with numbers and lowercase
  passgen -l 32 -n -a -A -s            32 chars with all types
  passgen -l 16 -c 5                   Generate 5 passwords of 16 chars
  passgen -l 24 -r                     24 chars with random character types
  passgen -l 16 --no-copy              Disable auto-copy to clipboard`

// exitUsage is returned when the command line cannot be parsed.
const exitUsage = 2

// App holds the collaborators shared by every command invocation.
type App struct {
	Config    config.Config
	Service   *service.GeneratorService
	Display   *display.Display
	Clipboard clipboard.Copier
	Prompter  *handler.Prompter
}

func (a *App) generator() *handler.GeneratorHandler {
	return handler.NewGeneratorHandler(a.Service, a.Display, a.Clipboard, a.Prompter)
}

func (a *App) interactive() *handler.InteractiveHandler {
	return handler.NewInteractiveHandler(a.Service, a.Display, a.Clipboard, a.Prompter)
}

// Execute runs passgen with args (without the program name) and returns the
// exit code. With no arguments at all it starts the REPL.
func (a *App) Execute(args []string) int {
	if len(args) == 0 {
		return handler.NewREPL(a.Display, a.Prompter, a.Config.HistoryFile, a.executeLine).Run()
	}
	return a.execute(args, false)
}

// executeLine runs one REPL line. Missing --length falls back to the
// configured default instead of opening the menu.
func (a *App) executeLine(args []string) int {
	return a.execute(args, true)
}

func (a *App) execute(args []string, inREPL bool) int {
	code := 0
	cmd := a.newCommand(inREPL, &code)
	cmd.SetArgs(normalizeArgs(cmd.Flags(), args))

	if err := cmd.Execute(); err != nil {
		a.Display.PrintError(err.Error())
		return exitUsage
	}
	return code
}

func (a *App) newCommand(inREPL bool, code *int) *cobra.Command {
	var (
		opts handler.Options
		temp bool
	)

	cmd := &cobra.Command{
		Use:           "passgen",
		Short:         "A customizable password generator CLI tool",
		Example:       examples,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if temp {
				*code = a.interactive().Run(false)
				return nil
			}

			if !cmd.Flags().Changed("length") {
				if !inREPL {
					*code = a.interactive().Run(true)
					return nil
				}
				opts.Length = a.Config.DefaultLength
			}

			if a.Config.NoCopy {
				opts.NoCopy = true
			}
			*code = a.generator().HandleGenerate(opts)
			return nil
		},
	}

	cmd.SetOut(a.Display.Writer())
	cmd.SetErr(a.Display.Writer())
	cmd.SetVersionTemplate("passgen {{.Version}}\n")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		a.Display.PrintHelp(c.Short + "\n\n" + c.UsageString())
	})

	flags := cmd.Flags()
	flags.SetNormalizeFunc(lowercaseNames)
	flags.IntVarP(&opts.Length, "length", "l", 0, "Password length (1-256)")
	flags.IntVarP(&opts.Count, "count", "c", 1, "Number of passwords to generate")
	flags.BoolVarP(&opts.Numbers, "numbers", "n", false, "Include numbers (0-9)")
	flags.BoolVarP(&opts.Lowercase, "lowercase", "a", false, "Include lowercase letters (a-z)")
	flags.BoolVarP(&opts.Uppercase, "uppercase", "A", false, "Include uppercase letters (A-Z)")
	flags.BoolVarP(&opts.Special, "special", "s", false, "Include special characters")
	flags.BoolVarP(&opts.Random, "random", "r", false, "Use random character types")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "Output only passwords (for scripting)")
	flags.BoolVar(&opts.NoCopy, "no-copy", false, "Disable auto-copy to clipboard")
	flags.IntVar(&opts.Copy, "copy", 0, "Copy Nth password to clipboard (use with -c)")
	flags.BoolVar(&temp, "temp", false, "Temporarily enter interactive menu")

	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	return cmd
}

// lowercaseNames makes long option names case-insensitive.
func lowercaseNames(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ToLower(name))
}

// normalizeArgs makes short options case-insensitive where that is
// unambiguous: a shorthand keeps its exact case when defined (-A) and falls
// back to its lowercase form otherwise (-N becomes -n).
func normalizeArgs(flags *pflag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
			out = append(out, arg)
			continue
		}
		out = append(out, normalizeShorthands(flags, arg))
	}
	return out
}

func normalizeShorthands(flags *pflag.FlagSet, arg string) string {
	b := []byte(arg)
	for i := 1; i < len(b); i++ {
		if b[i] >= utf8.RuneSelf {
			break
		}

		f := flags.ShorthandLookup(string(b[i]))
		if f == nil {
			lower := strings.ToLower(string(b[i]))
			if f = flags.ShorthandLookup(lower); f != nil {
				b[i] = lower[0]
			}
		}

		// Anything after a shorthand that takes a value is the value itself.
		if f == nil || f.NoOptDefVal == "" {
			break
		}
	}
	return string(b)
}
