package endora

import (
	"fmt"

	"github.com/sant0-9/mien/internal/operator"
)

// Response is the high-level enhancement payload returned to callers at
// the tool boundary.
type Response struct {
	EnhancedPrompt string            `json:"enhanced_prompt"`
	OriginalPrompt string            `json:"original_prompt"`
	Character      string            `json:"character"`
	Intensity      int               `json:"intensity"`
	Success        bool              `json:"success"`
	Details        *operator.Details `json:"transformation_details,omitempty"`
}

// Enhance applies Endora's operator to a prompt. Unlike the operator
// constructor, which clamps, this entry point validates intensity
// strictly and rejects values outside 0-10.
func Enhance(promptText string, intensity int, includeDetails bool) (*Response, error) {
	if intensity < 0 || intensity > 10 {
		return nil, fmt.Errorf("intensity must be an integer 0-10, got %d: %w",
			intensity, operator.ErrIntensityOutOfRange)
	}

	character, err := New()
	if err != nil {
		return nil, err
	}

	result := operator.New(character, intensity).Apply(promptText)

	resp := &Response{
		EnhancedPrompt: result.EnhancedPrompt,
		OriginalPrompt: promptText,
		Character:      character.Info().Name,
		Intensity:      result.IntensityApplied,
		Success:        true,
	}
	if includeDetails {
		resp.Details = result.Details
	}
	return resp, nil
}

var intensityDescriptions = map[int]string{
	0:  "No transformation - original prompt unchanged",
	1:  "Whisper - barely perceptible aristocratic presence",
	2:  "Subtle - character sensibility just barely visible",
	3:  "Light touch - character influence present but not dominant",
	4:  "Moderate-light - clear Endora sensibility but respecting original",
	5:  "Balanced - Endora operator and original prompt in clear conversation",
	6:  "Moderate-strong - Endora's logic becoming dominant",
	7:  "Strong - Endora's sensibility clearly dominant, original secondary",
	8:  "Very strong - Endora's logic saturating nearly everything",
	9:  "Overwhelming - original prompt barely visible through Endora's presence",
	10: "Complete saturation - Endora's sensory logic is the primary reality",
}

// IntensityDescription returns a human-readable description of what a
// given intensity means for Endora. Out-of-range values yield the
// literal "Invalid intensity".
func IntensityDescription(intensity int) string {
	if intensity < 0 || intensity > 10 {
		return "Invalid intensity"
	}
	return intensityDescriptions[intensity]
}

// Example is one before/after transformation pair.
type Example struct {
	Original    string `json:"original"`
	Enhanced    string `json:"enhanced"`
	Description string `json:"description"`
}

var examples = map[int]Example{
	2: {
		Original:    "a coffee cup",
		Enhanced:    "a coffee cup with subtle presence and material intention",
		Description: "Barely perceptible Endora influence",
	},
	5: {
		Original:    "a coffee cup on a table",
		Enhanced:    "a coffee cup rendered with material precision and intention, on a table organized with subtle hierarchy, with undertones of aristocratic knowing and gentle contempt",
		Description: "Balanced blend of character and original prompt",
	},
	8: {
		Original:    "a coffee cup on a table in a kitchen",
		Enhanced:    "exquisitely crafted coffee cup, materially significant with visible texture and presence, placed on a table dramatically reorganized into clear spatial tiers, in a kitchen completely reorganized - foreground precious and clear, background diminished. Motion is deliberate, weighted, and significant. Colors rendered with jewel-tone composition. Feeling of being evaluated by aristocratic judgment and supernatural knowing",
		Description: "Strong Endora dominance",
	},
}

// Examples returns all example transformations keyed by intensity.
func Examples() map[int]Example {
	out := make(map[int]Example, len(examples))
	for k, v := range examples {
		out[k] = v
	}
	return out
}

// ExampleFor returns the example for one intensity. A missing entry is
// not an error; the second return is false.
func ExampleFor(intensity int) (Example, bool) {
	ex, ok := examples[intensity]
	return ex, ok
}

// FormatForGeneration formats an enhanced prompt for an image generation
// model, optionally appending an operator metadata line.
func FormatForGeneration(enhanced string, intensity int, includeMetadata bool) string {
	if !includeMetadata {
		return enhanced
	}
	return fmt.Sprintf("%s\n[Endora operator, intensity %d/10]", enhanced, intensity)
}
