package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder

	// Show what was asked
	asked := styleSubtitle.Render(fmt.Sprintf("> %s", truncate(a.state.lastPrompt, 70)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	b.WriteString("\n\n")

	result := a.state.result
	if result == nil {
		return a.renderWelcome()
	}

	resultBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(colorPrimary).
		Render(result.EnhancedPrompt)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n")

	// Coherence summary line
	if d := result.Details; d != nil && d.Coherence != nil {
		c := d.Coherence
		verdict := lipgloss.NewStyle().Foreground(colorSuccess).Render("coherent")
		if !c.IsCoherent {
			verdict = lipgloss.NewStyle().Foreground(colorError).Render("incoherent")
		}
		summary := styleSubtitle.Render(fmt.Sprintf(
			"intensity %d/10  %s  %d checks passed, %d warnings",
			result.IntensityApplied, verdict, len(c.ChecksPassed), len(c.Warnings),
		))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, summary))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if a.state.showDetails {
		b.WriteString(a.renderDetails())
		b.WriteString("\n")
	}

	// Input for the next prompt
	inputBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(colorMuted).
		Render(a.state.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Enter] Enhance  /details  /settings  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) renderDetails() string {
	d := a.state.result.Details
	if d == nil {
		return ""
	}

	rows := []struct {
		dimension string
		before    string
		after     string
	}{
		{"material", d.Original.Subject, d.Transformed.Subject},
		{"temporal", d.Original.Action, d.Transformed.Action},
		{"spatial", d.Original.Setting, d.Transformed.Setting},
		{"material", strings.Join(d.Original.Objects, ", "), strings.Join(d.Transformed.Objects, ", ")},
		{"chromatic", strings.Join(d.Original.Colors, ", "), strings.Join(d.Transformed.Colors, ", ")},
		{"emotional", d.Original.Mood, d.Transformed.Mood},
	}

	var lines []string
	for _, r := range rows {
		if r.before == "" && r.after == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-9s  %s", r.dimension, truncate(r.before, 24)))
		lines = append(lines, fmt.Sprintf("  %-9s> %s", "", truncate(r.after, 50)))
	}

	if c := d.Coherence; c != nil {
		for _, w := range c.Warnings {
			lines = append(lines, "")
			lines = append(lines, fmt.Sprintf("  warning: %s", truncate(w, 55)))
		}
	}

	detailsBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, detailsBox) + "\n"
}
