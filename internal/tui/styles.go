package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorWarning = lipgloss.Color("214") // Orange
	ColorLink    = lipgloss.Color("51")  // Cyan
)

// Styles for listing output.
var (
	DirectoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SymlinkStyle = lipgloss.NewStyle().
			Foreground(ColorLink)

	FileStyle = lipgloss.NewStyle()
)

// WarningStyle highlights destructive-operation banners.
var WarningStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWarning)

// Symbols for visual feedback.
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
)
