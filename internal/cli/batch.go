package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shapealign/pkg/errors"
	"github.com/matzehuels/shapealign/pkg/pipeline"
	"github.com/matzehuels/shapealign/pkg/slide"
)

// batchOpts holds the command-line flags for the batch command.
type batchOpts struct {
	directive string
	mode      string
	jobs      int
	outDir    string
	strict    bool
}

// batchCommand creates the batch command for arranging many snapshots at once.
func (c *CLI) batchCommand() *cobra.Command {
	var opts batchOpts

	cmd := &cobra.Command{
		Use:   "batch <slide.json>...",
		Short: "Arrange many slide snapshots concurrently",
		Long: `Apply one directive (or one alignment mode) to many slide snapshots.

Slides are arranged concurrently; each result is written next to its input
as <slide>.arranged.json, or into --out-dir. A failing slide does not stop
the others.`,
		Example: `  shapealign batch deck/*.json --mode horizontal_center
  shapealign batch a.json b.json --directive d.json --jobs 8 --out-dir out/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.directive == "" && opts.mode == "" {
				return requireOneOf("--directive", "--mode")
			}
			return c.runBatch(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.directive, "directive", "d", "", "directive JSON file applied to every slide")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "alignment mode applied by position: "+modeList())
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "slides arranged at once (default from config)")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", "", "directory for the arranged snapshots")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail a slide when no id in the order is on it")
	cmd.MarkFlagsMutuallyExclusive("directive", "mode")
	_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)

	return cmd
}

func (c *CLI) runBatch(ctx context.Context, cmd *cobra.Command, inputs []string, opts batchOpts) error {
	var directive *slide.Directive
	if opts.directive != "" {
		d, err := slide.ReadDirectiveFile(opts.directive)
		if err != nil {
			return err
		}
		directive = d
	}
	if err := checkOutputs(opts.outDir, inputs); err != nil {
		return err
	}
	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	jobs, failed := c.loadJobs(inputs, directive, opts.mode)

	popts := c.options(cmd)
	popts.Strict = opts.strict
	if opts.jobs > 0 {
		popts.Concurrency = opts.jobs
	}

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Arranging %d slides...", len(jobs)))
	spinner.Start()
	results, err := c.newRunner().Batch(ctx, jobs, popts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Arranged %d slides", len(jobs)))

	written := 0
	for _, jr := range results {
		switch {
		case jr.Err != nil:
			c.printError("%s: %s", jr.Job, errors.UserMessage(jr.Err))
			failed++
		case !jr.Result.Applied():
			c.printWarning("%s: %s", jr.Job, errors.UserMessage(jr.Result.Notice))
		default:
			out := outputPathIn(opts.outDir, jr.Job)
			if err := slide.WriteFile(out, jr.Result.Slide); err != nil {
				c.printError("%s: %v", jr.Job, err)
				failed++
				continue
			}
			written++
			c.printSuccess("%s %s", jr.Job, StyleDim.Render(fmt.Sprintf("(%d placed)", jr.Result.Stats.Placed)))
			if len(jr.Result.Unresolved) > 0 {
				c.printDetail("skipped %s", joinIDs(jr.Result.Unresolved))
			}
			c.printFile(out)
		}
	}

	c.printKeyValue("Written", fmt.Sprintf("%d of %d", written, len(inputs)))
	if failed > 0 {
		return fmt.Errorf("%d of %d slides failed", failed, len(inputs))
	}
	return nil
}

// checkOutputs rejects input lists where two slides would be written to the
// same file, such as a/s.json and b/s.json with one --out-dir.
func checkOutputs(outDir string, inputs []string) error {
	seen := make(map[string]string, len(inputs))
	for _, in := range inputs {
		out := filepath.Clean(outputPathIn(outDir, in))
		if prev, ok := seen[out]; ok {
			return errors.New(errors.ErrCodeInvalidInput, "%s and %s would both be written to %s", prev, in, out)
		}
		seen[out] = in
	}
	return nil
}

// loadJobs reads every snapshot. Unreadable files are reported and counted
// as failures; the rest become jobs named after their path.
func (c *CLI) loadJobs(inputs []string, d *slide.Directive, mode string) ([]pipeline.Job, int) {
	jobs := make([]pipeline.Job, 0, len(inputs))
	failed := 0
	for _, in := range inputs {
		s, err := slide.ReadFile(in)
		if err != nil {
			c.printError("%s", errors.UserMessage(err))
			failed++
			continue
		}
		jobs = append(jobs, pipeline.Job{Name: in, Slide: s, Directive: d, Mode: mode})
	}
	return jobs, failed
}
