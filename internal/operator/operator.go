// Package operator implements the continuous deformation operator: it
// decomposes a prompt, rewrites each semantic slot through a character's
// five transformation dimensions at a fixed intensity, and recomposes the
// result.
package operator

import (
	"errors"

	"github.com/sant0-9/mien/internal/prompt"
)

// Dimension is one of the five transformation axes.
type Dimension string

const (
	Material  Dimension = "material"
	Spatial   Dimension = "spatial"
	Temporal  Dimension = "temporal"
	Chromatic Dimension = "chromatic"
	Emotional Dimension = "emotional"
)

// Dimensions returns the five dimensions in their fixed order.
func Dimensions() []Dimension {
	return []Dimension{Material, Spatial, Temporal, Chromatic, Emotional}
}

// Band is one of the five intensity sub-ranges of the factor domain [0,1].
// Band 1 leaves input essentially unchanged; band 5 is maximal departure.
type Band int

// BandFor maps an intensity factor to its band. Boundaries sit at
// 0.2, 0.4, 0.6 and 0.8; band 5 covers [0.8, 1.0].
func BandFor(factor float64) Band {
	switch {
	case factor < 0.2:
		return 1
	case factor < 0.4:
		return 2
	case factor < 0.6:
		return 3
	case factor < 0.8:
		return 4
	default:
		return 5
	}
}

// ErrIntensityOutOfRange is returned by strict-validation entry points
// when intensity falls outside [0,10]. The operator constructor itself
// clamps instead; the two layers intentionally disagree.
var ErrIntensityOutOfRange = errors.New("intensity out of range 0-10")

// ClampIntensity constrains an intensity to [0,10].
func ClampIntensity(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}

// Factor converts a clamped intensity to the [0,1] factor used for all
// band comparisons.
func Factor(intensity int) float64 {
	return float64(intensity) / 10.0
}

// Info describes a character's fixed worldview metadata.
type Info struct {
	Name               string
	CoreWorldview      string
	UnifiedSensibility string
	Manifestations     map[string]string
}

// Character supplies the five per-dimension rewrite hooks. Every
// implementation must keep the monotonic-departure invariant: for a fixed
// input, a higher factor never produces a smaller departure from it.
// All hooks must be total over factor in [0,1] and never fail.
type Character interface {
	Info() Info

	// Material rewrites the subject; MaterialObjects rewrites the object
	// list element-wise with the same band logic.
	Material(subject string, factor float64) string
	MaterialObjects(objects []string, factor float64) []string

	// Spatial rewrites the setting. Empty setting is a no-op.
	Spatial(setting string, factor float64) string

	// Temporal rewrites the action. Empty action is a no-op.
	Temporal(action string, factor float64) string

	// Chromatic rewrites the color list. An empty input list may
	// synthesize a default palette at sufficient intensity.
	Chromatic(colors []string, factor float64) []string

	// Emotional rewrites the mood, defaulting empty input to "neutral".
	Emotional(mood string, factor float64) string
}

// Operator applies one character at one fixed intensity. Immutable after
// construction; safe for concurrent use.
type Operator struct {
	character Character
	intensity int
	factor    float64
}

// New creates an operator. Out-of-range intensity is clamped, not
// rejected.
func New(c Character, intensity int) *Operator {
	clamped := ClampIntensity(intensity)
	return &Operator{
		character: c,
		intensity: clamped,
		factor:    Factor(clamped),
	}
}

// Intensity returns the clamped intensity this operator applies.
func (o *Operator) Intensity() int { return o.intensity }

// Factor returns intensity/10.
func (o *Operator) Factor() float64 { return o.factor }

// Components mirrors the slot set before and after rewriting.
type Components = prompt.Slots

// Details records the transformation for transparency.
type Details struct {
	Character          string            `json:"character"`
	Intensity          int               `json:"intensity"`
	IntensityFactor    float64           `json:"intensity_factor"`
	Original           Components        `json:"original_components"`
	Transformed        Components        `json:"transformed_components"`
	DimensionsApplied  []string          `json:"dimensions_applied"`
	UnifiedSensibility string            `json:"unified_sensibility,omitempty"`
	Manifestations     map[string]string `json:"manifestations,omitempty"`
	Coherence          *Report           `json:"coherence_check,omitempty"`
}

// Result is the externally visible artifact of one transformation.
type Result struct {
	EnhancedPrompt   string   `json:"enhanced_prompt"`
	Details          *Details `json:"transformation_details"`
	IntensityApplied int      `json:"intensity_applied"`
}

// Apply transforms a prompt through all five dimensions and recomposes
// the rewritten slots. It is a pure function of the prompt text and the
// operator's fixed character and intensity.
func (o *Operator) Apply(text string) *Result {
	parsed := prompt.Decompose(text)

	rewritten := prompt.Slots{
		Subject: o.character.Material(parsed.Subject, o.factor),
		Action:  o.character.Temporal(parsed.Action, o.factor),
		Setting: o.character.Spatial(parsed.Setting, o.factor),
		Objects: o.character.MaterialObjects(parsed.Objects, o.factor),
		Colors:  o.character.Chromatic(parsed.Colors, o.factor),
		Mood:    o.character.Emotional(parsed.Mood, o.factor),
	}

	info := o.character.Info()
	applied := make([]string, 0, 5)
	for _, d := range Dimensions() {
		applied = append(applied, string(d))
	}

	result := &Result{
		EnhancedPrompt: prompt.Recompose(parsed, rewritten),
		Details: &Details{
			Character:          info.Name,
			Intensity:          o.intensity,
			IntensityFactor:    o.factor,
			Original:           parsed.Slots,
			Transformed:        rewritten,
			DimensionsApplied:  applied,
			UnifiedSensibility: info.UnifiedSensibility,
			Manifestations:     info.Manifestations,
		},
		IntensityApplied: o.intensity,
	}

	// Diagnostic only; never feeds back into the enhanced prompt.
	report := CheckCoherence(result)
	result.Details.Coherence = &report

	return result
}
