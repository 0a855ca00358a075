package prompt

import "testing"

func TestRecomposeSegmentOrder(t *testing.T) {
	parsed := ParsedPrompt{OtherDetails: "at dawn"}
	rewritten := Slots{
		Subject: "a fox",
		Action:  "leaping",
		Setting: "a forest",
		Objects: []string{"a lantern", "a key"},
		Colors:  []string{"amber"},
		Mood:    "tense",
	}

	want := "a fox. leaping. in a forest. a lantern, a key. with amber. mood: tense. at dawn"
	if got := Recompose(parsed, rewritten); got != want {
		t.Errorf("Recompose() = %q, want %q", got, want)
	}
}

func TestRecomposeSkipsEmptySlots(t *testing.T) {
	tests := []struct {
		name      string
		rewritten Slots
		want      string
	}{
		{
			name:      "subject only",
			rewritten: Slots{Subject: "a fox"},
			want:      "a fox",
		},
		{
			name:      "untouched default mood omitted",
			rewritten: Slots{Subject: "a fox", Mood: DefaultMood},
			want:      "a fox",
		},
		{
			name:      "transformed mood kept",
			rewritten: Slots{Subject: "a fox", Mood: "neutral, subtly observed"},
			want:      "a fox. mood: neutral, subtly observed",
		},
		{
			name:      "everything empty",
			rewritten: Slots{},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recompose(ParsedPrompt{}, tt.rewritten); got != tt.want {
				t.Errorf("Recompose() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecomposeRoundTripAtZero(t *testing.T) {
	// Untouched slots recompose to the original prompt.
	text := "a coffee cup"
	parsed := Decompose(text)
	if got := Recompose(parsed, parsed.Slots); got != text {
		t.Errorf("Recompose() = %q, want %q", got, text)
	}
}
