package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha / Latte peach, the one color the shell's diagnostic
// output actually uses.
var (
	mochaPeach = lipgloss.Color("#fab387")
	lattePeach = lipgloss.Color("#fe640b")
)

// WarningStyle colors REPL-level diagnostics (pipe setup failures); startup
// warnings printed by cmd/pshell do not use it. It is computed once, at
// package init, from the detected terminal theme.
var WarningStyle lipgloss.Style

func init() {
	refreshStyles()
}

func refreshStyles() {
	peach := mochaPeach
	if DetectTheme() == ThemeLight {
		peach = lattePeach
	}
	WarningStyle = lipgloss.NewStyle().Foreground(peach)
}
