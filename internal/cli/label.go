package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/shapealign/pkg/slide"
)

// labelOpts holds the command-line flags for the label command.
type labelOpts struct {
	labels string
	output string
}

// labelCommand creates the label command, which attaches scene-analysis
// labels to the shapes of a snapshot.
func (c *CLI) labelCommand() *cobra.Command {
	var opts labelOpts

	cmd := &cobra.Command{
		Use:   "label <slide.json>",
		Short: "Merge scene-analysis labels into a slide snapshot",
		Long: `Attach labels and descriptions from a scene analysis response
({"labeled_shapes": [{"id", "label", "description"}]}) to a slide snapshot.

Geometry is always taken from the snapshot. Shapes without a label are marked
"unknown shape"; labels for ids that are not on the slide are reported.`,
		Example: `  shapealign label slide.json --labels scene.json -o slide.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLabel(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.labels, "labels", "l", "", "scene analysis JSON file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <slide>.arranged.json, - for stdout)")
	_ = cmd.MarkFlagRequired("labels")

	return cmd
}

func (c *CLI) runLabel(input string, opts labelOpts) error {
	c.statusFor(opts.output)

	s, err := slide.ReadFile(input)
	if err != nil {
		return err
	}
	labels, err := slide.ReadLabelsFile(opts.labels)
	if err != nil {
		return err
	}

	unmatched := slide.MergeLabels(s, labels)
	for _, id := range unmatched {
		c.printWarning("Label for %q matches no shape on the slide", id)
	}
	c.printSuccess("Labeled %d of %d shapes", len(s.Shapes)-len(slide.Unlabeled(s)), len(s.Shapes))
	if missing := slide.Unlabeled(s); len(missing) > 0 {
		c.printDetail("unlabeled: %s", joinIDs(missing))
	}

	out := outputPath(input, opts.output)
	if err := c.writeSlide(out, s); err != nil {
		return err
	}
	if out != stdoutPath {
		c.printFile(out)
	}
	return nil
}
