// Package endora implements Endora's continuous deformation operator:
// aristocratic supernatural authority applied across all five
// transformation dimensions with proportional intensity scaling.
package endora

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sant0-9/mien/internal/olog"
	"github.com/sant0-9/mien/internal/operator"
)

//go:embed olog/framework_categorical.yaml
var frameworkCategorical []byte

//go:embed olog/categorical.yaml
var characterCategorical []byte

//go:embed olog/intentionality.yaml
var characterIntentionality []byte

//go:embed olog/framework_intentionality.yaml
var frameworkIntentionality []byte

// Character is Endora's operator implementation. Immutable after New.
type Character struct {
	worldview *olog.Worldview
}

// New loads the embedded olog documents and returns Endora's character.
func New() (*Character, error) {
	w, err := olog.Parse(frameworkCategorical, characterCategorical, characterIntentionality, frameworkIntentionality)
	if err != nil {
		return nil, fmt.Errorf("loading endora ologs: %w", err)
	}
	return &Character{worldview: w}, nil
}

// NewFromDir loads the four olog documents from a directory instead of
// the embedded copies, for deployments that edit the worldview on disk.
func NewFromDir(dir string) (*Character, error) {
	w, err := olog.Load(olog.Paths{
		FrameworkCategorical:    filepath.Join(dir, "framework_categorical.yaml"),
		CharacterCategorical:    filepath.Join(dir, "categorical.yaml"),
		CharacterIntentionality: filepath.Join(dir, "intentionality.yaml"),
		FrameworkIntentionality: filepath.Join(dir, "framework_intentionality.yaml"),
	})
	if err != nil {
		return nil, fmt.Errorf("loading endora ologs from %s: %w", dir, err)
	}
	return &Character{worldview: w}, nil
}

// Worldview exposes the loaded olog documents, e.g. for coherence
// validation at startup.
func (c *Character) Worldview() *olog.Worldview { return c.worldview }

// Info returns Endora's worldview metadata as declared in her ologs.
func (c *Character) Info() operator.Info {
	doc := c.worldview.Character
	return operator.Info{
		Name:               doc.CharacterName,
		CoreWorldview:      doc.CoreWorldview,
		UnifiedSensibility: doc.UnifiedSensoryLogic,
		Manifestations:     doc.Manifestations,
	}
}

// Material rewrites the subject through material precision: materials
// become precious, intentional, textured.
func (c *Character) Material(subject string, factor float64) string {
	if subject == "" {
		return subject
	}

	// High intensity strips the leading article for cleaner composition.
	clean := strings.TrimSpace(subject)
	for _, article := range []string{"a ", "an ", "the "} {
		if strings.HasPrefix(strings.ToLower(clean), article) {
			clean = clean[len(article):]
			break
		}
	}

	switch {
	case factor < 0.2:
		return subject
	case factor < 0.4:
		return subject + " with subtle presence"
	case factor < 0.6:
		return subject + " rendered with material precision and intention"
	case factor < 0.8:
		return subject + " materially precious and intentionally crafted"
	default:
		return "exquisitely crafted " + clean + ", materially significant"
	}
}

// MaterialObjects rewrites each object with the material band logic.
func (c *Character) MaterialObjects(objects []string, factor float64) []string {
	if len(objects) == 0 {
		return objects
	}

	transformed := make([]string, 0, len(objects))
	for _, obj := range objects {
		switch {
		case factor < 0.3:
			transformed = append(transformed, obj)
		case factor < 0.6:
			transformed = append(transformed, obj+" with clear material intention")
		case factor < 0.8:
			transformed = append(transformed, "precious "+obj+" rendered with material precision")
		default:
			transformed = append(transformed, "exquisitely crafted "+obj+", materially significant")
		}
	}
	return transformed
}

// Spatial rewrites the setting through spatial hierarchy: space
// reorganizes by significance, with Endora as reference point.
func (c *Character) Spatial(setting string, factor float64) string {
	if setting == "" {
		return setting
	}

	switch {
	case factor < 0.2:
		return setting
	case factor < 0.4:
		return setting + " with subtle hierarchy"
	case factor < 0.6:
		return setting + ", organized by significance and hierarchy"
	case factor < 0.8:
		return setting + " dramatically reorganized into clear spatial tiers"
	default:
		return setting + " completely reorganized - foreground precious and clear, background diminished"
	}
}

// Temporal rewrites the action through temporal authority: motion becomes
// deliberate and weighted, moments significant.
func (c *Character) Temporal(action string, factor float64) string {
	if action == "" {
		return action
	}

	switch {
	case factor < 0.2:
		return action
	case factor < 0.4:
		return action + ", slightly paused in time"
	case factor < 0.6:
		return action + " with deliberate, weighted motion - each gesture significant"
	case factor < 0.8:
		return action + " with extreme temporal deliberation - moment stretched and weighted"
	default:
		return action + " outside normal temporal flow, with supernatural inevitability"
	}
}

// Jewel-tone substitutions for common colors.
var jewelTones = map[string]string{
	"red":    "deep jewel red",
	"blue":   "sapphire blue",
	"green":  "emerald green",
	"purple": "amethyst purple",
	"yellow": "golden honey",
	"orange": "rose gold",
	"black":  "midnight with silver shimmer",
	"white":  "cream or ivory",
	"brown":  "aged bronze or copper",
	"gray":   "cool gray with depth",
}

// Chromatic rewrites colors toward jewel tones and golds. An empty input
// list synthesizes a default palette at factor >= 0.4; this is the one
// place the rewriter introduces content not derived from input. For
// non-empty input at factor >= 0.6, only the last element of the
// transformed list gains the compositional suffix.
func (c *Character) Chromatic(colors []string, factor float64) []string {
	if len(colors) == 0 {
		switch {
		case factor < 0.4:
			return nil
		case factor < 0.7:
			return []string{"rich jewel-tone accents"}
		default:
			return []string{"deep sapphire, emerald, and amethyst tones with gold accents"}
		}
	}

	transformed := make([]string, 0, len(colors))
	for _, color := range colors {
		lower := strings.ToLower(color)
		switch {
		case factor < 0.3:
			transformed = append(transformed, color)
		case factor < 0.5:
			jewel, ok := jewelTones[lower]
			if !ok {
				jewel = color + " elevated to richness"
			}
			transformed = append(transformed, "hint of "+jewel)
		case factor < 0.7:
			jewel, ok := jewelTones[lower]
			if !ok {
				jewel = color + " rendered as precious tone"
			}
			transformed = append(transformed, jewel)
		default:
			jewel, ok := jewelTones[lower]
			if !ok {
				jewel = color + " transformed to jewel intensity"
			}
			transformed = append(transformed, "saturated "+jewel)
		}
	}

	if factor >= 0.6 {
		transformed[len(transformed)-1] += " composed with intention"
	}

	return transformed
}

// Emotional rewrites the mood through emotional subtext: aristocratic
// judgment, supernatural knowing, contempt with hidden care.
func (c *Character) Emotional(mood string, factor float64) string {
	if mood == "" {
		mood = "neutral"
	}

	switch {
	case factor < 0.2:
		return mood
	case factor < 0.4:
		return mood + ", subtly observed and evaluated"
	case factor < 0.6:
		return mood + " with undertones of aristocratic knowing and gentle contempt"
	case factor < 0.8:
		return mood + ", overwhelmed by aristocratic judgment and supernatural knowing - feeling observed and evaluated against standards one doesn't understand"
	default:
		return mood + ", completely saturated by Endora's presence - supernatural judgment by a being of superior knowledge, possessing dimensions of reality mortals cannot access"
	}
}
