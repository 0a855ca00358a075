// Package olog loads the structured documents (ologs) that declare a
// character's worldview: a framework-level and a character-level
// categorical structure, plus intentionality documents for both levels.
// The typed Worldview is immutable after loading and shared by all
// operator instances of the character.
package olog

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound indicates a missing olog document.
	ErrNotFound = errors.New("olog document not found")
	// ErrInvalidConfig indicates an empty or unparsable olog document.
	ErrInvalidConfig = errors.New("invalid olog document")
)

var validate = validator.New()

// DimensionSpec declares one transformation dimension of a character.
type DimensionSpec struct {
	Description          string            `yaml:"description"`
	Properties           map[string]string `yaml:"properties"`
	IntensificationCurve map[int]string    `yaml:"intensification_curve"`
	CoherenceMechanism   string            `yaml:"coherence_mechanism"`
	Example              string            `yaml:"example"`
}

// IntensityParameter declares the intensity domain for a character.
type IntensityParameter struct {
	Default int `yaml:"default" validate:"min=0,max=10"`
	Min     int `yaml:"min" validate:"eq=0"`
	Max     int `yaml:"max" validate:"eq=10"`
}

// CharacterDoc is the typed shape of a character intentionality document.
type CharacterDoc struct {
	CharacterName            string                   `yaml:"character_name" validate:"required"`
	CoreWorldview            string                   `yaml:"core_worldview" validate:"required"`
	UnifiedSensoryLogic      string                   `yaml:"unified_sensory_logic"`
	TransformationDimensions map[string]DimensionSpec `yaml:"transformation_dimensions" validate:"required,min=1"`
	IntensityParameter       IntensityParameter       `yaml:"intensity_parameter"`
	IntensityProgression     map[int]string           `yaml:"intensity_progression"`
	Manifestations           map[string]string        `yaml:"manifestations"`
}

// FrameworkDoc is the typed shape of the framework intentionality
// document.
type FrameworkDoc struct {
	CorePrinciple      string                       `yaml:"core_principle" validate:"required"`
	SensoryPrinciples  map[string]map[string]string `yaml:"framework_sensory_principles"`
	IntensitySemantics map[string]string            `yaml:"intensity_semantics"`
	CoherenceRules     map[string]string            `yaml:"coherence_mechanisms"`
}

// Worldview bundles the four parsed documents. The raw categorical
// documents are kept only for coherence validation; pipeline stages see
// the typed fields exclusively.
type Worldview struct {
	Character CharacterDoc
	Framework FrameworkDoc

	rawFrameworkCategorical map[string]any
	rawCharacterCategorical map[string]any
}

// Paths names the four olog documents on disk.
type Paths struct {
	FrameworkCategorical    string
	CharacterCategorical    string
	CharacterIntentionality string
	FrameworkIntentionality string
}

// Load reads and parses the four documents from disk. A missing file is
// reported as ErrNotFound, an empty or unparsable one as
// ErrInvalidConfig.
func Load(paths Paths) (*Worldview, error) {
	frameworkCat, err := readDoc(paths.FrameworkCategorical)
	if err != nil {
		return nil, err
	}
	characterCat, err := readDoc(paths.CharacterCategorical)
	if err != nil {
		return nil, err
	}
	characterIntent, err := readDoc(paths.CharacterIntentionality)
	if err != nil {
		return nil, err
	}
	frameworkIntent, err := readDoc(paths.FrameworkIntentionality)
	if err != nil {
		return nil, err
	}
	return Parse(frameworkCat, characterCat, characterIntent, frameworkIntent)
}

// Parse builds a Worldview from raw document bytes. Used both by Load and
// by characters that embed their ologs in the binary.
func Parse(frameworkCat, characterCat, characterIntent, frameworkIntent []byte) (*Worldview, error) {
	w := &Worldview{}

	if err := unmarshalDoc("framework categorical", frameworkCat, &w.rawFrameworkCategorical); err != nil {
		return nil, err
	}
	if err := unmarshalDoc("character categorical", characterCat, &w.rawCharacterCategorical); err != nil {
		return nil, err
	}
	if err := unmarshalDoc("character intentionality", characterIntent, &w.Character); err != nil {
		return nil, err
	}
	if err := unmarshalDoc("framework intentionality", frameworkIntent, &w.Framework); err != nil {
		return nil, err
	}

	if err := validate.Struct(w.Character); err != nil {
		return nil, fmt.Errorf("character intentionality: %v: %w", err, ErrInvalidConfig)
	}
	if err := validate.Struct(w.Framework); err != nil {
		return nil, fmt.Errorf("framework intentionality: %v: %w", err, ErrInvalidConfig)
	}

	return w, nil
}

func readDoc(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, err
	}
	return data, nil
}

func unmarshalDoc(name string, data []byte, out any) error {
	if len(data) == 0 {
		return fmt.Errorf("%s: empty document: %w", name, ErrInvalidConfig)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %v: %w", name, err, ErrInvalidConfig)
	}
	return nil
}

// Dimension returns the spec for one transformation dimension.
func (w *Worldview) Dimension(name string) (DimensionSpec, bool) {
	spec, ok := w.Character.TransformationDimensions[name]
	return spec, ok
}

// Progression returns the declared description of a given intensity.
// Unknown intensities within range resolve to an empty string, not an
// error.
func (w *Worldview) Progression(intensity int) (string, error) {
	if intensity < 0 || intensity > 10 {
		return "", fmt.Errorf("intensity must be 0-10, got %d", intensity)
	}
	return w.Character.IntensityProgression[intensity], nil
}

// ValidateCoherence cross-checks the documents and returns a list of
// issues found. Issues are warnings, not load failures: a dimension
// declared in the categorical document but absent from the
// intentionality document (or vice versa) keeps the worldview usable.
func (w *Worldview) ValidateCoherence() []string {
	var issues []string

	categorical := map[string]bool{}
	if dims, ok := w.rawCharacterCategorical["transformation_dimensions"].(map[string]any); ok {
		for name := range dims {
			categorical[name] = true
		}
	}
	intentionality := map[string]bool{}
	for name := range w.Character.TransformationDimensions {
		intentionality[name] = true
	}

	for _, name := range sortedKeys(categorical) {
		if !intentionality[name] {
			issues = append(issues, fmt.Sprintf("dimension %q missing in intentionality document", name))
		}
	}
	for _, name := range sortedKeys(intentionality) {
		if !categorical[name] {
			issues = append(issues, fmt.Sprintf("dimension %q missing in categorical document", name))
		}
	}

	if d := w.Character.IntensityParameter.Default; d < 0 || d > 10 {
		issues = append(issues, fmt.Sprintf("default intensity out of range: %d", d))
	}

	for _, name := range sortedKeys(intentionality) {
		if len(w.Character.TransformationDimensions[name].IntensificationCurve) == 0 {
			issues = append(issues, fmt.Sprintf("dimension %q has no intensification curve", name))
		}
	}

	return issues
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
