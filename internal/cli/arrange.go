package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shapealign/pkg/layout"
	"github.com/matzehuels/shapealign/pkg/pipeline"
	"github.com/matzehuels/shapealign/pkg/slide"
)

// arrangeOpts holds the command-line flags for the arrange command.
type arrangeOpts struct {
	directive string // directive JSON file
	order     string // comma-separated identifiers (with mode)
	mode      string // alignment mode (with order)
	output    string // output path, "-" for stdout
	strict    bool   // fail when no identifier matches
	dryRun    bool   // report without writing
}

// arrangeCommand creates the arrange command for applying ordered directives.
func (c *CLI) arrangeCommand() *cobra.Command {
	var opts arrangeOpts

	cmd := &cobra.Command{
		Use:   "arrange <slide.json>",
		Short: "Arrange shapes in a given order",
		Long: `Arrange shapes on a slide snapshot in the order given by a directive.

The directive comes from a JSON file produced by the arranger
({"order": [...], "alignment": "...", "explanation": "..."}) or from the
--order and --mode flags. Identifiers that are not on the slide are skipped.`,
		Example: `  shapealign arrange slide.json --directive directive.json
  shapealign arrange slide.json --order 12,7,9 --mode horizontal_distribute -o out.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.load()
			if err != nil {
				return err
			}
			return c.runArrange(cmd.Context(), cmd, args[0], *d, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.directive, "directive", "d", "", "directive JSON file")
	cmd.Flags().StringVar(&opts.order, "order", "", "comma-separated shape ids, first = leftmost/topmost")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "alignment mode: "+modeList())
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <slide>.arranged.json, - for stdout)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when no id in the order is on the slide")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show the result without writing it")
	cmd.MarkFlagsMutuallyExclusive("directive", "order")
	cmd.MarkFlagsRequiredTogether("order", "mode")
	_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)

	return cmd
}

// load returns the directive from the file or the flags.
func (o arrangeOpts) load() (*slide.Directive, error) {
	switch {
	case o.directive != "":
		return slide.ReadDirectiveFile(o.directive)
	case o.order != "":
		return &slide.Directive{Order: parseOrder(o.order), Alignment: o.mode}, nil
	default:
		return nil, requireOneOf("--directive", "--order")
	}
}

func (c *CLI) runArrange(ctx context.Context, cmd *cobra.Command, input string, d slide.Directive, opts arrangeOpts) error {
	c.statusFor(opts.output)
	s, err := slide.ReadFile(input)
	if err != nil {
		return err
	}

	popts := c.options(cmd)
	popts.Strict = opts.strict
	res, err := c.newRunner().Arrange(ctx, s, d, popts)
	if err != nil {
		return err
	}

	c.printResult(s, res)
	if d.Explanation != "" {
		c.printDetail("%s", d.Explanation)
	}
	return c.finish(input, opts.output, opts.dryRun, res)
}

// finish writes the updated snapshot unless nothing changed or this is a dry run.
func (c *CLI) finish(input, output string, dryRun bool, res *pipeline.Result) error {
	if !res.Applied() || dryRun {
		return nil
	}
	out := outputPath(input, output)
	if err := c.writeSlide(out, res.Slide); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if out != stdoutPath {
		c.printFile(out)
		c.printNextStep("Preview it", fmt.Sprintf("%s preview %s", appName, out))
	}
	return nil
}

// modeList formats the supported modes for help text.
func modeList() string {
	names := make([]string, len(layout.Modes))
	for i, m := range layout.Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// completeModes offers the alignment modes for shell completion.
func completeModes(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	out := make([]string, len(layout.Modes))
	for i, m := range layout.Modes {
		out[i] = string(m) + "\t" + m.Description()
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
