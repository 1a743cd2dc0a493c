package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// TitleStyle renders listing headers
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// PackageStyle renders package names
	PackageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	// MutedStyle renders secondary information like counts and paths
	MutedStyle = lipgloss.NewStyle().Faint(true)
)

// RenderPackageList renders package names under a title, styled for the
// terminal or plain for pipes.
func RenderPackageList(title string, pkgs []string, format Format) string {
	var b strings.Builder

	if format == FormatTerminal {
		b.WriteString(TitleStyle.Render(title) + "\n")
		for _, pkg := range pkgs {
			b.WriteString("  " + PackageStyle.Render(pkg) + "\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}

	for _, pkg := range pkgs {
		b.WriteString(pkg + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderFileList renders manifest paths, muted detail style on terminals.
func RenderFileList(files []string, format Format) string {
	var b strings.Builder
	for _, f := range files {
		if format == FormatTerminal {
			b.WriteString(MutedStyle.Render(f) + "\n")
		} else {
			b.WriteString(f + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
