package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/rootfind/brent"
)

// outcome is one solved (or failed) problem as printed by the CLI.
type outcome struct {
	Name        string   `json:"name,omitempty"`
	Root        *float64 `json:"root,omitempty"`
	FRoot       *float64 `json:"f_root,omitempty"`
	Iterations  int      `json:"iterations"`
	Evaluations int      `json:"evaluations"`
	Reason      string   `json:"reason,omitempty"`
	Error       string   `json:"error,omitempty"`
}

func newOutcome(name string, res brent.Result, err error) outcome {
	o := outcome{Name: name, Iterations: res.Iterations, Evaluations: res.Evaluations}
	if err != nil {
		o.Error = err.Error()

		return o
	}
	root, froot := res.Root, res.FRoot
	o.Root, o.FRoot, o.Reason = &root, &froot, res.Reason.String()

	return o
}

// writeText prints o on one line.
func (o outcome) writeText(w io.Writer) error {
	prefix := ""
	if o.Name != "" {
		prefix = o.Name + ": "
	}
	if o.Error != "" {
		_, err := fmt.Fprintf(w, "%serror: %s\n", prefix, o.Error)

		return err
	}
	_, err := fmt.Fprintf(w, "%sroot=%.12g f=%.3g iterations=%d evaluations=%d reason=%s\n",
		prefix, *o.Root, *o.FRoot, o.Iterations, o.Evaluations, o.Reason)

	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// stepLogger returns a hook logging every step at debug level.
func stepLogger(log *slog.Logger, name string) brent.Hook {
	return func(s brent.Step) error {
		log.Debug("step",
			slog.String("problem", name),
			slog.Int("iteration", s.Iteration),
			slog.String("kind", s.Kind.String()),
			slog.Float64("x", s.X),
			slog.Float64("fx", s.FX),
			slog.Float64("tol", s.Tol),
		)

		return nil
	}
}
