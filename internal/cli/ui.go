package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/shapealign/pkg/errors"
	"github.com/matzehuels/shapealign/pkg/pipeline"
	"github.com/matzehuels/shapealign/pkg/slide"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleMoved   = lipgloss.NewStyle().Foreground(colorGreen)
	styleUnmoved = lipgloss.NewStyle().Foreground(colorDim)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func (c *CLI) printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func (c *CLI) printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func (c *CLI) printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func (c *CLI) printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func (c *CLI) printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func (c *CLI) printFile(path string) {
	fmt.Fprintln(c.out, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func (c *CLI) printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(c.out, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func (c *CLI) printNextStep(description, cmd string) {
	fmt.Fprintln(c.out, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Result Display
// =============================================================================

// printResult reports a pipeline run: notices as warnings, unresolved
// identifiers, overflow and a table of the shapes that moved.
func (c *CLI) printResult(before *slide.Slide, res *pipeline.Result) {
	if res.Skipped != nil {
		c.printWarning("Skipped: %s", errors.UserMessage(res.Skipped))
	}
	if res.Notice != nil {
		c.printWarning("Nothing arranged: %s", errors.UserMessage(res.Notice))
		return
	}

	c.printSuccess("Applied %s to %d shapes", StyleNumber.Render(string(res.Mode)), res.Stats.Placed)
	if res.Mode.IsDistribute() {
		c.printDetail("gap %.2f pt on a %gx%g canvas (margin %g)", res.Gap, res.Canvas.Width, res.Canvas.Height, res.Canvas.Margin)
	}
	if res.Overflow {
		c.printWarning("Shapes are wider than the usable canvas and now overlap")
	}
	fmt.Fprintln(c.out, moveTable(before, res.Slide))
}

// moveTable renders old and new positions of every shape.
func moveTable(before, after *slide.Slide) string {
	rows := make([][]string, 0, len(after.Shapes))
	moved := make([]bool, 0, len(after.Shapes))
	for i, sh := range after.Shapes {
		old := before.Shapes[i]
		rows = append(rows, []string{
			sh.ID,
			displayLabel(sh),
			fmtPoint(old.Left, old.Top),
			fmtPoint(sh.Left, sh.Top),
		})
		moved = append(moved, old.Left != sh.Left || old.Top != sh.Top)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Label", "Before", "After").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(moved) {
				return lipgloss.NewStyle()
			}
			if moved[row] {
				return styleMoved
			}
			return styleUnmoved
		})
	return t.Render()
}

func displayLabel(sh slide.Shape) string {
	if sh.Label == "" {
		return "—"
	}
	return sh.Label
}

func fmtPoint(x, y float64) string {
	return fmt.Sprintf("%.1f, %.1f", x, y)
}

// =============================================================================
// Utilities
// =============================================================================

// joinIDs formats identifiers for a single status line.
func joinIDs(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = fmt.Sprintf("%q", id)
	}
	return strings.Join(quoted, ", ")
}
