package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/mien/internal/character"
	"github.com/sant0-9/mien/internal/character/endora"
	"github.com/sant0-9/mien/internal/config"
	"github.com/sant0-9/mien/internal/operator"
)

type view int

const (
	viewWelcome view = iota
	viewResult
	viewSettings
	viewHelp
	viewError
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp() *App {
	cfg, _ := config.Load()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := newState(cfg)
	s.firstRun = !config.Exists()

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	a.state.input.Focus()
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case transformDoneMsg:
		a.state.result = msg.result
		a.state.showDetails = false
		a.state.input.Placeholder = placeholderResult
		a.view = viewResult
		return a, nil

	case transformErrorMsg:
		a.state.runError = msg.error
		a.view = viewError
		return a, nil

	case settingsSavedMsg:
		a.state.firstRun = false
		a.view = viewWelcome
		return a, nil

	case settingsErrorMsg:
		a.state.runError = msg.error
		a.view = viewError
		return a, nil
	}

	// Text input is live on the prompt views only
	if a.view == viewWelcome || a.view == viewResult {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		switch a.view {
		case viewSettings, viewHelp, viewError, viewResult:
			a.state.runError = nil
			a.state.input.Placeholder = placeholderWelcome
			a.view = viewWelcome
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Enter):
		if a.view == viewWelcome || a.view == viewResult {
			return a.handleInput()
		}
	}

	if a.view == viewSettings {
		return a.handleSettingsKey(msg)
	}

	return nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}

	// Handle slash commands
	if strings.HasPrefix(input, "/") {
		fields := strings.Fields(strings.ToLower(input))
		switch fields[0] {
		case "/help", "/h":
			a.view = viewHelp
			a.state.input.Reset()
			return nil
		case "/settings", "/s":
			a.state.selectedCharacter = characterIndex(a.state.characterID)
			a.view = viewSettings
			a.state.input.Reset()
			return nil
		case "/details", "/d":
			if a.state.result != nil {
				a.state.showDetails = !a.state.showDetails
				a.view = viewResult
			}
			a.state.input.Reset()
			return nil
		case "/intensity", "/i":
			if len(fields) > 1 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					a.state.intensity = operator.ClampIntensity(n)
				}
			}
			a.state.input.Reset()
			return nil
		case "/quit", "/q":
			a.quitting = true
			return tea.Quit
		}
	}

	a.state.lastPrompt = input
	a.state.input.Reset()
	return a.transform(input)
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if a.state.selectedCharacter > 0 {
			a.state.selectedCharacter--
		}
	case key.Matches(msg, keys.Down):
		if a.state.selectedCharacter < len(character.Characters)-1 {
			a.state.selectedCharacter++
		}
	case key.Matches(msg, keys.Left):
		if a.state.intensity > 0 {
			a.state.intensity--
		}
	case key.Matches(msg, keys.Right):
		if a.state.intensity < 10 {
			a.state.intensity++
		}
	case key.Matches(msg, keys.Enter):
		selected := character.Characters[a.state.selectedCharacter]
		if selected.Available {
			a.state.characterID = selected.ID
		}
		return a.saveSettings()
	}
	return nil
}

func (a *App) saveSettings() tea.Cmd {
	a.state.config.Character = a.state.characterID
	a.state.config.Intensity = a.state.intensity
	cfg := *a.state.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return settingsErrorMsg{err}
		}
		return settingsSavedMsg{}
	}
}

func (a *App) transform(promptText string) tea.Cmd {
	id := a.state.characterID
	intensity := a.state.intensity
	ologDir := a.state.config.OlogDir
	return func() tea.Msg {
		var (
			c   operator.Character
			err error
		)
		if id == "endora" && ologDir != "" {
			c, err = endora.NewFromDir(ologDir)
		} else {
			c, err = character.New(id)
		}
		if err != nil {
			return transformErrorMsg{err}
		}
		return transformDoneMsg{operator.New(c, intensity).Apply(promptText)}
	}
}

func characterIndex(id string) int {
	for i, c := range character.Characters {
		if c.ID == id {
			return i
		}
	}
	return 0
}

type transformDoneMsg struct{ result *operator.Result }
type transformErrorMsg struct{ error }
type settingsSavedMsg struct{}
type settingsErrorMsg struct{ error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewResult:
		return a.renderResult()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderWelcome()
	}
}
