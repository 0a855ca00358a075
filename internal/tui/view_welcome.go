package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/mien/internal/character"
)

const logo = `
 ███╗   ███╗██╗███████╗███╗   ██╗
 ████╗ ████║██║██╔════╝████╗  ██║
 ██╔████╔██║██║█████╗  ██╔██╗ ██║
 ██║╚██╔╝██║██║██╔══╝  ██║╚██╗██║
 ██║ ╚═╝ ██║██║███████╗██║ ╚████║
 ╚═╝     ╚═╝╚═╝╚══════╝╚═╝  ╚═══╝
`

func (a *App) renderWelcome() string {
	// Logo
	logoRendered := styleLogo.Render(logo)

	// Subtitle
	subtitle := styleSubtitle.Render("Character Sensibility for Image Prompts")

	// Active operator
	name := a.state.characterID
	if info := character.GetInfo(a.state.characterID); info != nil {
		name = info.Name
	}
	operatorLine := styleSubtitle.Render(
		fmt.Sprintf("\nCharacter: %s   Intensity: %d/10", name, a.state.intensity),
	)

	firstRunHint := ""
	if a.state.firstRun {
		firstRunHint = styleSubtitle.Render("No config yet - /settings saves one to ~/.config/mien")
	}

	// Input box
	inputBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(colorPrimary).
		Render(a.state.input.View())

	// Status bar
	statusBar := styleStatusBar.Render("[Enter] Enhance  /settings  /help  [Esc] Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		operatorLine,
		firstRunHint,
		inputBox,
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
