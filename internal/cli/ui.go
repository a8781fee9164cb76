package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - titles
	colorGreen = lipgloss.Color("35")  // Green - success
	colorAmber = lipgloss.Color("220") // Amber - no improvement
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorAmber)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
)

// printTitle prints a heading line.
func (c *CLI) printTitle(title string) {
	fmt.Fprintln(c.out, StyleTitle.Render(title))
}

// printSuccess prints a success message.
func (c *CLI) printSuccess(format string, args ...any) {
	fmt.Fprintln(c.out, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func (c *CLI) printWarning(format string, args ...any) {
	fmt.Fprintln(c.out, styleIconWarning.Render(iconWarning)+" "+fmt.Sprintf(format, args...))
}

// printKeyValue prints a labeled value.
func (c *CLI) printKeyValue(key, value string) {
	fmt.Fprintln(c.out, "  "+styleKey.Render(key)+" "+StyleValue.Render(value))
}
