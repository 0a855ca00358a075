package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Commands
	commands := []string{
		"  /help, /h         Show this help",
		"  /settings, /s     Open settings",
		"  /details, /d      Toggle the transformation record",
		"  /intensity N, /i  Set intensity (0-10)",
		"  /quit, /q         Quit mien",
		"",
		"  Anything else is enhanced as a prompt",
	}

	commandsBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	// Intensity semantics
	levels := []string{
		"  0      Prompt passes through untouched",
		"  1-3    Subtle quality and mood shifts",
		"  4-6    The character's taste is unmistakable",
		"  7-9    Their worldview dominates the scene",
		"  10     Complete saturation",
	}

	levelsTitle := styleSubtitle.Render("Intensity")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, levelsTitle))
	b.WriteString("\n\n")

	levelsBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(levels, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, levelsBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
