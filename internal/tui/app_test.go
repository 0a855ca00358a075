package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/mien/internal/character/endora"
	"github.com/sant0-9/mien/internal/operator"
)

func testApp(t *testing.T) *App {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return NewApp()
}

func testResult(t *testing.T) *operator.Result {
	t.Helper()
	c, err := endora.New()
	if err != nil {
		t.Fatalf("endora.New() error: %v", err)
	}
	return operator.New(c, 5).Apply("a coffee cup")
}

func TestTransformDoneSwitchesToResultView(t *testing.T) {
	a := testApp(t)

	a.Update(transformDoneMsg{testResult(t)})

	if a.view != viewResult {
		t.Errorf("view = %d, want viewResult", a.view)
	}
	if got := a.state.input.Placeholder; got != placeholderResult {
		t.Errorf("Placeholder = %q, want %q", got, placeholderResult)
	}
}

func TestEscFromResultRestoresWelcome(t *testing.T) {
	a := testApp(t)
	a.Update(transformDoneMsg{testResult(t)})

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if a.view != viewWelcome {
		t.Errorf("view = %d, want viewWelcome", a.view)
	}
	if got := a.state.input.Placeholder; got != placeholderWelcome {
		t.Errorf("Placeholder = %q, want %q", got, placeholderWelcome)
	}
}

func TestFirstRunClearsAfterSettingsSaved(t *testing.T) {
	a := testApp(t)

	if !a.state.firstRun {
		t.Fatal("firstRun = false with no config on disk")
	}

	a.Update(settingsSavedMsg{})
	if a.state.firstRun {
		t.Error("firstRun = true after settings were saved")
	}
}
