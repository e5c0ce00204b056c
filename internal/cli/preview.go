package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shapealign/pkg/cache"
	"github.com/matzehuels/shapealign/pkg/render"
	"github.com/matzehuels/shapealign/pkg/render/preview"
	"github.com/matzehuels/shapealign/pkg/slide"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	output     string
	format     string
	scale      float64
	showMargin bool
	showIDs    bool
	noCache    bool
}

// previewCommand creates the preview command for drawing a snapshot.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview <slide.json>",
		Short: "Draw a slide snapshot as SVG, PNG, PDF or DOT",
		Long: `Draw every shape of a slide snapshot at its position on the canvas.

The canvas outline and (optionally) the margin are drawn as frames. PNG and
PDF output require rsvg-convert (librsvg) on the PATH.`,
		Example: `  shapealign preview slide.arranged.json
  shapealign preview slide.json -f png --ids -o before.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <slide>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", render.FormatSVG, "output format: svg, png, pdf, dot")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "scale factor (default from config)")
	cmd.Flags().BoolVar(&opts.showMargin, "margin-guide", false, "draw the margin frame (default from config)")
	cmd.Flags().BoolVar(&opts.showIDs, "ids", false, "print shape ids under their labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render even when a cached preview exists")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{render.FormatSVG, render.FormatPNG, render.FormatPDF, render.FormatDOT}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, cmd *cobra.Command, input string, opts previewOpts) error {
	format := strings.ToLower(opts.format)
	if err := render.ValidateFormat(format); err != nil {
		return err
	}

	s, err := slide.ReadFile(input)
	if err != nil {
		return err
	}

	popts := preview.Options{
		Scale:      c.Config.Preview.Scale,
		ShowMargin: c.Config.Preview.ShowMargin,
		ShowIDs:    opts.showIDs,
	}
	if cmd.Flags().Changed("scale") {
		popts.Scale = opts.scale
	}
	if cmd.Flags().Changed("margin-guide") {
		popts.ShowMargin = opts.showMargin
	}

	runOpts := c.options(cmd)
	canvas := runOpts.CanvasFor(s)
	prog := newProgress(c.Logger)
	renderer := c.newRenderer(opts.noCache)
	data, err := renderer.Render(ctx, s, canvas, format, popts)
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %d shapes", len(s.Shapes)))

	c.printSuccess("Preview %s", StyleDim.Render(fmt.Sprintf("(%s, %gx%g)", format, canvas.Width, canvas.Height)))
	c.printFile(out)
	return nil
}

// newRenderer returns a preview renderer backed by the on-disk cache unless
// caching is off. A cache that cannot be opened only costs a re-render.
func (c *CLI) newRenderer(noCache bool) *preview.Renderer {
	if noCache || !c.Config.Preview.Cache {
		return &preview.Renderer{}
	}
	dir, err := cache.Dir()
	if err == nil {
		var fc *cache.FileCache
		if fc, err = cache.NewFileCache(dir); err == nil {
			return &preview.Renderer{Cache: fc, TTL: cache.DefaultTTL}
		}
	}
	c.Logger.Debug("preview cache disabled", "error", err)
	return &preview.Renderer{}
}
