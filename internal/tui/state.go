package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sant0-9/mien/internal/config"
	"github.com/sant0-9/mien/internal/operator"
)

type state struct {
	// Config
	config   *config.Config
	firstRun bool

	// Active operator settings
	characterID string
	intensity   int

	// Settings cursor
	selectedCharacter int

	// Last transformation
	lastPrompt  string
	result      *operator.Result
	showDetails bool

	// Input
	input textinput.Model

	// Errors
	runError error
}

const (
	placeholderWelcome = "Describe an image, or /help for commands..."
	placeholderResult  = "Next prompt..."
)

func newState(cfg *config.Config) *state {
	input := textinput.New()
	input.Placeholder = placeholderWelcome
	input.CharLimit = 500
	input.Width = 60

	return &state{
		config:      cfg,
		characterID: cfg.Character,
		intensity:   cfg.Intensity,
		input:       input,
	}
}
