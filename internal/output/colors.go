package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// kindColors maps branch prefixes to a display color
var kindColors = map[string]lipgloss.Color{
	"feature": lipgloss.Color("#4dca7d"),
	"bugfix":  lipgloss.Color("#f89048"),
	"release": lipgloss.Color("#4ccbf1"),
	"hotfix":  lipgloss.Color("#f46251"),
	"support": lipgloss.Color("#9f83e4"),
}

// ColorBranchName renders a branch name in its kind's color, bold when current
func ColorBranchName(kind, name string, isCurrent bool) string {
	style := lipgloss.NewStyle()
	if c, ok := kindColors[kind]; ok {
		style = style.Foreground(c)
	}
	if isCurrent {
		style = style.Bold(true)
	}
	return style.Render(name)
}

// ColorDim renders secondary text
func ColorDim(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render(text)
}

// IsTTY returns true if stdin and stdout are both terminals
func IsTTY() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}
