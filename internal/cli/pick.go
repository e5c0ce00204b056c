package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shapealign/pkg/slide"
)

// pickOpts holds the command-line flags for the pick command.
type pickOpts struct {
	order  string
	output string
	dryRun bool
}

// pickCommand creates the pick command, which asks for the alignment mode
// interactively and then arranges the slide.
func (c *CLI) pickCommand() *cobra.Command {
	var opts pickOpts

	cmd := &cobra.Command{
		Use:   "pick <slide.json>",
		Short: "Choose an alignment mode interactively",
		Long: `Show the alignment modes in a list and apply the chosen one.

Without --order the shapes keep their current order (like align); with
--order they are placed in the given sequence (like arrange).`,
		Example: `  shapealign pick slide.json
  shapealign pick slide.json --order 12,7,9`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPick(cmd.Context(), cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.order, "order", "", "comma-separated shape ids, first = leftmost/topmost")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <slide>.arranged.json)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show the result without writing it")

	return cmd
}

func (c *CLI) runPick(ctx context.Context, cmd *cobra.Command, input string, opts pickOpts) error {
	s, err := slide.ReadFile(input)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Align %d shapes", len(s.Shapes))
	final, err := tea.NewProgram(NewModeListModel(title), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("mode picker: %w", err)
	}
	picked := final.(ModeListModel).Selected
	if picked == "" {
		c.printInfo("Cancelled")
		return nil
	}

	runner := c.newRunner()
	popts := c.options(cmd)
	if opts.order != "" {
		d := slide.Directive{Order: parseOrder(opts.order), Alignment: string(picked)}
		res, err := runner.Arrange(ctx, s, d, popts)
		if err != nil {
			return err
		}
		c.printResult(s, res)
		return c.finish(input, opts.output, opts.dryRun, res)
	}

	res, err := runner.Align(ctx, s, string(picked), popts)
	if err != nil {
		return err
	}
	c.printResult(s, res)
	return c.finish(input, opts.output, opts.dryRun, res)
}
