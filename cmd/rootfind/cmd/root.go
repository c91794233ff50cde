package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// errFailed marks a batch in which at least one problem failed. The
// details are already in the report, so it carries no further context.
var errFailed = errors.New("one or more problems failed")

// globals holds the persistent flags shared by all subcommands.
type globals struct {
	verbose bool
	format  string
}

// NewRootCommand builds the rootfind command tree.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "rootfind",
		Short: "Bracketed scalar root finding with Brent's method",
		Long: `rootfind solves f(x) = 0 for a function of one variable on an interval
[a, b] where f changes sign. It combines bisection, secant steps and
inverse quadratic interpolation, and never leaves the bracket.

Expressions use x as the variable, ** for powers and the functions
sin cos tan exp log sqrt abs pow.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.format != formatText && g.format != formatJSON {
				return fmt.Errorf("unknown format %q (want %s or %s)", g.format, formatText, formatJSON)
			}

			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log every refinement step to stderr")
	root.PersistentFlags().StringVar(&g.format, "format", formatText, "output format: text or json")

	root.AddCommand(newSolveCommand(g), newBatchCommand(g))

	return root
}

// Execute runs the command tree with os.Args.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil && !errors.Is(err, errFailed) {
		printError(root.ErrOrStderr(), err)
	}

	return err
}

// logger returns a text logger on w; debug records only when verbose.
func (g *globals) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
