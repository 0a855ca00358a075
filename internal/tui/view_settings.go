package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/mien/internal/character"
	"github.com/sant0-9/mien/internal/character/endora"
)

func (a *App) renderSettings() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Character list
	var lines []string
	for i, c := range character.Characters {
		cursor := "  "
		if i == a.state.selectedCharacter {
			cursor = "> "
		}
		active := ""
		if c.ID == a.state.characterID {
			active = " (active)"
		}
		availability := ""
		if !c.Available {
			availability = fmt.Sprintf(" [%s]", c.Status)
		}
		line := fmt.Sprintf("%s%s%s%s", cursor, c.Name, availability, active)
		if i == a.state.selectedCharacter {
			line = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(line)
		}
		lines = append(lines, line)
	}

	listBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	// Intensity dial
	dial := intensityDial(a.state.intensity)
	dialLines := []string{
		fmt.Sprintf("  Intensity: %2d/10  %s", a.state.intensity, dial),
		"",
		"  " + truncate(endora.IntensityDescription(a.state.intensity), 44),
	}
	dialBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(dialLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, dialBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Up/Down] Character  [Left/Right] Intensity  [Enter] Save  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func intensityDial(intensity int) string {
	return strings.Repeat("█", intensity) + strings.Repeat("░", 10-intensity)
}
