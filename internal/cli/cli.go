package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shapealign/pkg/buildinfo"
	"github.com/matzehuels/shapealign/pkg/config"
	"github.com/matzehuels/shapealign/pkg/errors"
	"github.com/matzehuels/shapealign/pkg/observability"
	"github.com/matzehuels/shapealign/pkg/pipeline"
	"github.com/matzehuels/shapealign/pkg/slide"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = config.AppName

	// arrangedSuffix is inserted before the extension of default output files.
	arrangedSuffix = ".arranged"

	// stdoutPath selects standard output for -o.
	stdoutPath = "-"

	// annotConfigOptional marks commands that run without the --config file.
	annotConfigOptional = "config-optional"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	out        io.Writer // status lines
	data       io.Writer // snapshots written to "-"
	verbose    bool
	configPath string
	canvas     canvasFlags
}

// canvasFlags are the global canvas overrides.
type canvasFlags struct {
	width  float64
	height float64
	margin float64
}

// New creates a new CLI instance with a default logger.
// Command output is written to stdout; w receives log lines.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		out:    os.Stdout,
		data:   os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetVerbose forces debug logging regardless of the configured level and
// logs pipeline events.
func (c *CLI) SetVerbose(v bool) {
	c.verbose = v
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "shapealign arranges slide shapes from structured directives",
		Long: `shapealign applies arrangement directives to slide snapshots: it distributes
shapes evenly across the canvas or lines up their centers, then writes the
updated snapshot back for the host application to import.`,
		Version:           buildinfo.Get().Version,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return c.setup(cmd) },
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/shapealign/config.toml)")
	pf.Float64Var(&c.canvas.width, "canvas-width", 0, "canvas width in points (overrides snapshot and config)")
	pf.Float64Var(&c.canvas.height, "canvas-height", 0, "canvas height in points (overrides snapshot and config)")
	pf.Float64Var(&c.canvas.margin, "margin", 0, "canvas margin in points (overrides snapshot and config)")

	// Register all subcommands
	root.AddCommand(c.arrangeCommand())
	root.AddCommand(c.alignCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.labelCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and applies the log level.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := c.loadConfig()
	if err != nil {
		if cmd.Annotations[annotConfigOptional] == "" || !errors.Is(err, errors.ErrCodeFileNotFound) {
			return err
		}
		cfg = config.Default()
	}
	c.Config = cfg

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
		observability.SetPipelineHooks(&logHooks{logger: c.Logger})
		observability.SetPreviewHooks(&logHooks{logger: c.Logger})
	}
	c.SetLogLevel(level)

	if cfg.Source != "" {
		c.Logger.Debug("loaded config", "path", cfg.Source)
	}
	return nil
}

func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath, false)
	}
	return config.LoadDefault()
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// options builds pipeline options from the config and the global flags.
// Canvas flags that were set on the command line win over everything,
// including the snapshot's own canvas.
func (c *CLI) options(cmd *cobra.Command) pipeline.Options {
	opts := pipeline.Options{
		Canvas:      c.Config.Canvas,
		Concurrency: c.Config.Batch.Concurrency,
		Logger:      c.Logger,
	}

	flags := cmd.Flags()
	if flags.Changed("canvas-width") {
		opts.Canvas.Width = c.canvas.width
		opts.ForceCanvas = true
	}
	if flags.Changed("canvas-height") {
		opts.Canvas.Height = c.canvas.height
		opts.ForceCanvas = true
	}
	if flags.Changed("margin") {
		opts.Canvas.Margin = c.canvas.margin
		opts.ForceCanvas = true
	}
	return opts
}

// =============================================================================
// Paths
// =============================================================================

// outputPath returns the explicit output path, or input with ".arranged"
// inserted before its extension.
func outputPath(input, explicit string) string {
	if explicit != "" {
		return explicit
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + arrangedSuffix + ext
}

// outputPathIn places the default output name for input in dir.
func outputPathIn(dir, input string) string {
	name := filepath.Base(outputPath(input, ""))
	if dir == "" {
		return filepath.Join(filepath.Dir(input), name)
	}
	return filepath.Join(dir, name)
}

// =============================================================================
// Argument Helpers
// =============================================================================

// parseOrder splits a comma-separated --order flag, trimming spaces and
// dropping empty entries.
func parseOrder(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func requireOneOf(names ...string) error {
	return fmt.Errorf("one of %s is required", strings.Join(names, ", "))
}

// =============================================================================
// Output
// =============================================================================

// statusFor moves status lines to stderr when the snapshot itself goes to
// stdout, so the JSON stays parseable.
func (c *CLI) statusFor(output string) {
	if output == stdoutPath {
		c.out = os.Stderr
	}
}

// writeSlide writes s to path, or to stdout when path is "-".
func (c *CLI) writeSlide(path string, s *slide.Slide) error {
	if path == stdoutPath {
		return slide.Write(c.data, s)
	}
	return slide.WriteFile(path, s)
}
