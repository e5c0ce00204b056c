package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shapealign/pkg/slide"
)

// alignOpts holds the command-line flags for the align command.
type alignOpts struct {
	mode   string
	output string
	dryRun bool
}

// alignCommand creates the align command, which orders shapes by their
// current position instead of an explicit order.
func (c *CLI) alignCommand() *cobra.Command {
	var opts alignOpts

	cmd := &cobra.Command{
		Use:   "align <slide.json>",
		Short: "Align or distribute every shape by its current position",
		Long: `Align or distribute every shape on a slide snapshot.

Distribute modes keep the current left-to-right (or top-to-bottom) order of
the shapes; center modes line them up on their mean center.`,
		Example: `  shapealign align slide.json --mode vertical_center`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAlign(cmd.Context(), cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "alignment mode: "+modeList())
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <slide>.arranged.json, - for stdout)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show the result without writing it")
	_ = cmd.MarkFlagRequired("mode")
	_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)

	return cmd
}

func (c *CLI) runAlign(ctx context.Context, cmd *cobra.Command, input string, opts alignOpts) error {
	c.statusFor(opts.output)
	s, err := slide.ReadFile(input)
	if err != nil {
		return err
	}

	res, err := c.newRunner().Align(ctx, s, opts.mode, c.options(cmd))
	if err != nil {
		return err
	}

	c.printResult(s, res)
	return c.finish(input, opts.output, opts.dryRun, res)
}
