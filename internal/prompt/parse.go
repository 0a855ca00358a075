// Package prompt decomposes free-text image prompts into semantic slots
// and recomposes rewritten slots back into a single prompt string.
package prompt

import (
	"regexp"
	"strings"
)

// Slots holds the named semantic components of a prompt.
type Slots struct {
	Subject string   `json:"subject"`
	Action  string   `json:"action"`
	Setting string   `json:"setting"`
	Objects []string `json:"objects"`
	Colors  []string `json:"colors"`
	Mood    string   `json:"mood"`
}

// ParsedPrompt is the result of decomposing a prompt. It is read-only
// after construction.
type ParsedPrompt struct {
	BasePrompt string
	Slots
	// OtherDetails is whatever text wasn't claimed by any slot.
	OtherDetails string
}

// DefaultMood is used when no mood keyword is found in the prompt.
const DefaultMood = "neutral"

// Subject patterns, tried in order against the lower-cased prompt.
var subjectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:a|an|the)\s+([a-z\s]+?)(?:\s+(?:in|on|at|with|wearing|holding))`),
	regexp.MustCompile(`^([a-z\s]+?)(?:\s+(?:in|on|at|with|wearing|holding|is|are))`),
}

// Fixed vocabularies. Process-wide constants, never mutated.
var (
	subjectStopWords = map[string]bool{
		"in": true, "on": true, "at": true, "with": true, "wearing": true,
		"holding": true, "near": true, "by": true, "under": true, "above": true,
	}

	actionVerbs = []string{
		"walking", "running", "standing", "sitting", "eating", "drinking",
		"looking", "holding", "wearing", "riding", "driving", "cooking",
		"reading", "writing", "talking", "singing", "dancing", "playing",
		"tasting", "smelling", "touching", "building", "creating",
	}

	settingNouns = []string{
		"kitchen", "bedroom", "living room", "office", "street", "park",
		"forest", "beach", "mountain", "city", "village", "house", "building",
		"room", "garden", "library", "cafe", "restaurant", "bar", "stage",
	}

	objectNouns = []string{
		"cup", "bottle", "glass", "table", "chair", "book",
		"flower", "plant", "lamp", "window", "door", "painting", "mirror",
		"knife", "fork", "plate", "bowl", "pot", "pan", "mug",
	}

	// Compound-noun adjectives: "coffee cup" must not also count "cup".
	compoundAdjectives = []string{"coffee", "soup", "wine", "water", "tea", "beer", "milk"}

	colorNames = []string{
		"red", "blue", "green", "yellow", "orange", "purple", "pink",
		"black", "white", "gray", "grey", "brown", "gold", "silver",
		"sapphire", "emerald", "amethyst", "ruby", "jade", "bronze",
	}

	moodWords = []string{
		"happy", "sad", "angry", "peaceful", "tense", "cheerful", "somber",
		"playful", "serious", "warm", "cold", "inviting", "mysterious",
		"anxious", "calm", "chaotic", "orderly", "bright", "dark",
	}
)

// Decompose splits a prompt into semantic slots using ordered keyword and
// pattern heuristics. It never fails: a missing pattern degrades to an
// empty or default slot value.
func Decompose(text string) ParsedPrompt {
	p := ParsedPrompt{BasePrompt: text}
	p.Subject = extractSubject(text)
	p.Action = extractAction(text)
	p.Setting = extractSetting(text)
	p.Objects = extractObjects(text)
	p.Colors = extractColors(text)
	p.Mood = extractMood(text)

	// Leftover text: remove the first occurrence of each claimed slot
	// value, in slot order.
	other := text
	claimed := []string{p.Subject, p.Action, p.Setting}
	claimed = append(claimed, p.Objects...)
	claimed = append(claimed, p.Colors...)
	claimed = append(claimed, p.Mood)
	for _, v := range claimed {
		if v != "" {
			other = strings.Replace(other, v, "", 1)
		}
	}
	p.OtherDetails = strings.TrimSpace(other)

	return p
}

func extractSubject(text string) string {
	lower := strings.ToLower(text)
	for _, re := range subjectPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	// Fallback: leading token run up to the first preposition, max 4 tokens.
	var words []string
	for _, w := range strings.Fields(text) {
		if subjectStopWords[strings.ToLower(w)] {
			break
		}
		words = append(words, w)
	}
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.Join(words, " ")
}

func extractAction(text string) string {
	lower := strings.ToLower(text)
	for _, verb := range actionVerbs {
		idx := strings.Index(lower, verb)
		if idx < 0 {
			continue
		}
		// Return a window of the original text around the verb. The index
		// comes from the lowered string, which can be longer than the
		// original for some non-ASCII runes, so both bounds need clamping.
		start := idx - 10
		if start < 0 {
			start = 0
		}
		end := idx + len(verb) + 20
		if end > len(text) {
			end = len(text)
		}
		if start > end {
			start = end
		}
		return strings.TrimSpace(text[start:end])
	}
	return ""
}

func extractSetting(text string) string {
	lower := strings.ToLower(text)
	for _, s := range settingNouns {
		if strings.Contains(lower, s) {
			return s
		}
	}
	return ""
}

func extractObjects(text string) []string {
	lower := strings.ToLower(text)
	var objects []string
	for _, obj := range objectNouns {
		if !strings.Contains(lower, obj) {
			continue
		}
		compound := false
		for _, adj := range compoundAdjectives {
			if strings.Contains(lower, adj+" "+obj) {
				compound = true
				break
			}
		}
		if !compound {
			objects = append(objects, obj)
		}
	}
	return objects
}

func extractColors(text string) []string {
	lower := strings.ToLower(text)
	var colors []string
	for _, c := range colorNames {
		if strings.Contains(lower, c) {
			colors = append(colors, c)
		}
	}
	return colors
}

func extractMood(text string) string {
	lower := strings.ToLower(text)
	for _, m := range moodWords {
		if strings.Contains(lower, m) {
			return m
		}
	}
	return DefaultMood
}
