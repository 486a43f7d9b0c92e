// Package ui styles the shell's non-protocol diagnostic output.
//
// Built-in output (echo, type, pwd, cd, history) is never touched by this
// package — only REPL-level diagnostics, i.e. pipe-setup failures, are
// styled.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme names the detected terminal color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DetectTheme returns the detected terminal theme.
func DetectTheme() Theme {
	if lipgloss.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}
