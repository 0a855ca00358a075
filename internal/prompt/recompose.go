package prompt

import "strings"

// Recompose assembles rewritten slots plus the original leftover text into
// one prompt string. Segment order and the ". " join are part of the
// output contract: the same slots always produce byte-identical output.
//
// The mood segment is omitted when the rewritten mood is still the
// untouched default, so a zero-intensity transformation of a prompt with
// no mood keyword returns the prompt unchanged.
func Recompose(parsed ParsedPrompt, rewritten Slots) string {
	var parts []string

	if rewritten.Subject != "" {
		parts = append(parts, rewritten.Subject)
	}
	if rewritten.Action != "" {
		parts = append(parts, rewritten.Action)
	}
	if rewritten.Setting != "" {
		parts = append(parts, "in "+rewritten.Setting)
	}
	if len(rewritten.Objects) > 0 {
		parts = append(parts, strings.Join(rewritten.Objects, ", "))
	}
	if len(rewritten.Colors) > 0 {
		parts = append(parts, "with "+strings.Join(rewritten.Colors, ", "))
	}
	if rewritten.Mood != "" && rewritten.Mood != DefaultMood {
		parts = append(parts, "mood: "+rewritten.Mood)
	}
	if parsed.OtherDetails != "" {
		parts = append(parts, parsed.OtherDetails)
	}

	return strings.Join(parts, ". ")
}
