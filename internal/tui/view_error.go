package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	errMsg := "Unknown error"
	if a.state.runError != nil {
		errMsg = a.state.runError.Error()
	}

	errBox := styleBox.Copy().
		Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	// Suggestions based on error type
	var suggestions []string
	errLower := strings.ToLower(errMsg)

	if strings.Contains(errLower, "intensity") {
		suggestions = append(suggestions, "Intensity must be an integer from 0 to 10")
		suggestions = append(suggestions, "Use /intensity N or adjust it in /settings")
	} else if strings.Contains(errLower, "character") {
		suggestions = append(suggestions, "Only released characters can be selected")
		suggestions = append(suggestions, "Pick one in /settings")
	} else if strings.Contains(errLower, "olog") || strings.Contains(errLower, "yaml") {
		suggestions = append(suggestions, "A character definition failed to load")
		suggestions = append(suggestions, "Check olog_dir in ~/.config/mien/config.yaml")
	} else if strings.Contains(errLower, "permission") || strings.Contains(errLower, "config") {
		suggestions = append(suggestions, "Settings could not be written")
		suggestions = append(suggestions, "Check ~/.config/mien is writable")
	}

	if len(suggestions) > 0 {
		suggBox := styleBox.Copy().
			Width(min(60, a.width-4)).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
