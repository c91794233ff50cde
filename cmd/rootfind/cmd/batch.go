package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/rootfind/brent"
	"github.com/katalvlaran/rootfind/problems"
	"github.com/spf13/cobra"
)

// report is the JSON document produced by batch.
type report struct {
	RunID   string    `json:"run_id"`
	File    string    `json:"file"`
	Failed  int       `json:"failed"`
	Results []outcome `json:"results"`
}

func newBatchCommand(g *globals) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "batch",
		Short: "Solve every problem of a YAML or TOML file",
		Long: `batch loads a problem set (.yaml, .yml or .toml) and solves each
problem independently. A failing problem does not stop the others; the
command exits non-zero if any of them failed.`,
		Example: `  rootfind batch --file problems.yaml
  rootfind batch --file problems.toml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, g, file)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "problem file (required)")
	_ = c.MarkFlagRequired("file")

	return c
}

func runBatch(cmd *cobra.Command, g *globals, file string) error {
	set, err := problems.Load(file)
	if err != nil {
		return err
	}

	log := g.logger(cmd.ErrOrStderr())
	rep := report{RunID: uuid.NewString(), File: file}
	log.Debug("batch started", "run_id", rep.RunID, "problems", len(set.Problems))

	for _, p := range set.Problems {
		res, err := p.Solve(brent.WithHook(stepLogger(log, p.Name)))
		if err != nil {
			rep.Failed++
			log.Warn("problem failed", "run_id", rep.RunID, "problem", p.Name, "err", err)
		}
		rep.Results = append(rep.Results, newOutcome(p.Name, res, err))
	}

	out := cmd.OutOrStdout()
	if g.format == formatJSON {
		if err := writeJSON(out, rep); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "run %s (%s)\n", rep.RunID, file)
		for _, o := range rep.Results {
			if err := o.writeText(out); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "%d/%d solved\n", len(rep.Results)-rep.Failed, len(rep.Results))
	}

	if rep.Failed > 0 {
		return errFailed
	}

	return nil
}
