package endora

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sant0-9/mien/internal/operator"
)

func newCharacter(t *testing.T) *Character {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

func TestNewFromDir(t *testing.T) {
	dir := t.TempDir()
	docs := map[string][]byte{
		"framework_categorical.yaml":    frameworkCategorical,
		"categorical.yaml":              characterCategorical,
		"intentionality.yaml":           characterIntentionality,
		"framework_intentionality.yaml": frameworkIntentionality,
	}
	for name, data := range docs {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0600); err != nil {
			t.Fatal(err)
		}
	}

	c, err := NewFromDir(dir)
	if err != nil {
		t.Fatalf("NewFromDir() error: %v", err)
	}
	if got := c.Info().Name; got != "Endora" {
		t.Errorf("Info().Name = %q, want %q", got, "Endora")
	}

	if _, err := NewFromDir(t.TempDir()); err == nil {
		t.Error("NewFromDir(empty dir) error = nil, want missing-document failure")
	}
}

func TestInfoFromOlogs(t *testing.T) {
	c := newCharacter(t)
	info := c.Info()
	if info.Name != "Endora" {
		t.Errorf("Name = %q, want %q", info.Name, "Endora")
	}
	if info.CoreWorldview == "" {
		t.Error("CoreWorldview is empty")
	}
	if len(info.Manifestations) == 0 {
		t.Error("Manifestations is empty")
	}
}

func TestOlogCoherence(t *testing.T) {
	c := newCharacter(t)
	if issues := c.Worldview().ValidateCoherence(); len(issues) != 0 {
		t.Errorf("ValidateCoherence() = %v, want no issues", issues)
	}
}

func TestMaterialBands(t *testing.T) {
	c := newCharacter(t)

	tests := []struct {
		factor float64
		want   string
	}{
		{0.0, "a teapot"},
		{0.1, "a teapot"},
		{0.2, "a teapot with subtle presence"},
		{0.4, "a teapot rendered with material precision and intention"},
		{0.6, "a teapot materially precious and intentionally crafted"},
		{0.8, "exquisitely crafted teapot, materially significant"},
		{1.0, "exquisitely crafted teapot, materially significant"},
	}

	for _, tt := range tests {
		if got := c.Material("a teapot", tt.factor); got != tt.want {
			t.Errorf("Material(%v) = %q, want %q", tt.factor, got, tt.want)
		}
	}
}

func TestMaterialEmptySubject(t *testing.T) {
	c := newCharacter(t)
	if got := c.Material("", 1.0); got != "" {
		t.Errorf("Material(empty) = %q, want empty", got)
	}
}

func TestRewritesUntouchedOnlyInFirstBand(t *testing.T) {
	c := newCharacter(t)

	for _, factor := range []float64{0.0, 0.1, 0.19} {
		if got := c.Material("a teapot", factor); got != "a teapot" {
			t.Errorf("Material(%v) = %q, want input unchanged in first band", factor, got)
		}
		if got := c.Spatial("kitchen", factor); got != "kitchen" {
			t.Errorf("Spatial(%v) = %q, want input unchanged in first band", factor, got)
		}
		if got := c.Temporal("running", factor); got != "running" {
			t.Errorf("Temporal(%v) = %q, want input unchanged in first band", factor, got)
		}
	}

	for _, factor := range []float64{0.2, 0.4, 0.6, 0.8, 1.0} {
		if got := c.Material("a teapot", factor); got == "a teapot" {
			t.Errorf("Material(%v) left input unchanged above first band", factor)
		}
		if got := c.Spatial("kitchen", factor); got == "kitchen" {
			t.Errorf("Spatial(%v) left input unchanged above first band", factor)
		}
		if got := c.Temporal("running", factor); got == "running" {
			t.Errorf("Temporal(%v) left input unchanged above first band", factor)
		}
		if got := c.Emotional("tense", factor); got == "tense" {
			t.Errorf("Emotional(%v) left input unchanged above first band", factor)
		}
	}
}

func TestChromaticSuffixOnLastElementOnly(t *testing.T) {
	c := newCharacter(t)

	got := c.Chromatic([]string{"red", "blue"}, 0.7)
	want := []string{
		"saturated deep jewel red",
		"saturated sapphire blue composed with intention",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Chromatic() = %v, want %v", got, want)
	}
}

func TestChromaticBands(t *testing.T) {
	c := newCharacter(t)

	tests := []struct {
		name   string
		colors []string
		factor float64
		want   []string
	}{
		{
			name:   "untouched below threshold",
			colors: []string{"red"},
			factor: 0.2,
			want:   []string{"red"},
		},
		{
			name:   "hint band",
			colors: []string{"red"},
			factor: 0.4,
			want:   []string{"hint of deep jewel red"},
		},
		{
			name:   "unknown color elevated",
			colors: []string{"teal"},
			factor: 0.4,
			want:   []string{"hint of teal elevated to richness"},
		},
		{
			name:   "jewel band with suffix",
			colors: []string{"green"},
			factor: 0.6,
			want:   []string{"emerald green composed with intention"},
		},
		{
			name:   "empty input below synthesis threshold",
			colors: nil,
			factor: 0.3,
			want:   nil,
		},
		{
			name:   "empty input mid synthesis",
			colors: nil,
			factor: 0.5,
			want:   []string{"rich jewel-tone accents"},
		},
		{
			name:   "empty input full palette without suffix",
			colors: nil,
			factor: 1.0,
			want:   []string{"deep sapphire, emerald, and amethyst tones with gold accents"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Chromatic(tt.colors, tt.factor); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Chromatic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmotionalDefaultsToNeutral(t *testing.T) {
	c := newCharacter(t)
	if got := c.Emotional("", 0.1); got != "neutral" {
		t.Errorf("Emotional(empty) = %q, want %q", got, "neutral")
	}
	if got := c.Emotional("", 0.3); !strings.HasPrefix(got, "neutral, ") {
		t.Errorf("Emotional(empty) = %q, want neutral prefix", got)
	}
}

func TestOperatorEndToEnd(t *testing.T) {
	c := newCharacter(t)

	t.Run("intensity 0 is the identity", func(t *testing.T) {
		text := "a coffee cup"
		result := operator.New(c, 0).Apply(text)
		if result.EnhancedPrompt != text {
			t.Errorf("EnhancedPrompt = %q, want %q", result.EnhancedPrompt, text)
		}
	})

	t.Run("intensity 10 saturates every dimension", func(t *testing.T) {
		result := operator.New(c, 10).Apply("a coffee cup on a table in a kitchen")
		for _, want := range []string{
			"exquisitely crafted coffee cup",
			"completely reorganized",
			"sapphire",
			"supernatural judgment",
		} {
			if !strings.Contains(result.EnhancedPrompt, want) {
				t.Errorf("EnhancedPrompt = %q, want it to contain %q", result.EnhancedPrompt, want)
			}
		}
	})

	t.Run("first band is still the identity", func(t *testing.T) {
		text := "a coffee cup"
		if got := operator.New(c, 1).Apply(text).EnhancedPrompt; got != text {
			t.Errorf("EnhancedPrompt = %q, want %q", got, text)
		}
	})

	t.Run("second band departs from the original", func(t *testing.T) {
		text := "a coffee cup"
		if got := operator.New(c, 2).Apply(text).EnhancedPrompt; got == text {
			t.Error("intensity 2 left the prompt unchanged")
		}
	})
}
