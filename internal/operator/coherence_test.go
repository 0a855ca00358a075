package operator

import (
	"strings"
	"testing"
)

func allDimensions() []string {
	names := make([]string, 0, 5)
	for _, d := range Dimensions() {
		names = append(names, string(d))
	}
	return names
}

func TestCheckCoherencePasses(t *testing.T) {
	result := &Result{
		EnhancedPrompt: "exquisitely crafted teapot in a grand kitchen. mood: neutral, observed",
		Details: &Details{
			Original:          Components{Subject: "teapot"},
			Transformed:       Components{Subject: "exquisitely crafted teapot", Setting: "a grand kitchen", Mood: "neutral, observed"},
			DimensionsApplied: allDimensions(),
		},
		IntensityApplied: 7,
	}

	report := CheckCoherence(result)
	if !report.IsCoherent {
		t.Fatalf("IsCoherent = false, failed: %v", report.ChecksFailed)
	}
	if len(report.ChecksPassed) != 4 {
		t.Errorf("ChecksPassed = %v, want 4 entries", report.ChecksPassed)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", report.Warnings)
	}
}

func TestCheckCoherenceMissingDimension(t *testing.T) {
	result := &Result{
		EnhancedPrompt: "a teapot",
		Details: &Details{
			Original:          Components{Subject: "teapot"},
			Transformed:       Components{Subject: "a teapot", Setting: "x", Mood: "y"},
			DimensionsApplied: []string{"material", "spatial", "temporal", "chromatic"},
		},
		IntensityApplied: 5,
	}

	report := CheckCoherence(result)
	if report.IsCoherent {
		t.Fatal("IsCoherent = true, want false for a missing dimension")
	}
	found := false
	for _, f := range report.ChecksFailed {
		if strings.Contains(f, "emotional") {
			found = true
		}
	}
	if !found {
		t.Errorf("ChecksFailed = %v, want the missing dimension named", report.ChecksFailed)
	}
}

func TestCheckCoherenceWeakSensibilityIsOnlyAWarning(t *testing.T) {
	result := &Result{
		EnhancedPrompt: "a teapot",
		Details: &Details{
			Original:          Components{Subject: "teapot"},
			Transformed:       Components{Subject: "a teapot", Mood: "neutral"},
			DimensionsApplied: allDimensions(),
		},
		IntensityApplied: 1,
	}

	report := CheckCoherence(result)
	if !report.IsCoherent {
		t.Fatalf("IsCoherent = false, failed: %v", report.ChecksFailed)
	}
	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "only 2 of 6 components transformed") {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v, want a weak-sensibility warning", report.Warnings)
	}
}

func TestCheckCoherenceUnrecognizableSubjectIsOnlyAWarning(t *testing.T) {
	result := &Result{
		EnhancedPrompt: "something entirely different. mood: judged. with gold",
		Details: &Details{
			Original:          Components{Subject: "teapot"},
			Transformed:       Components{Subject: "x", Setting: "y", Mood: "judged"},
			DimensionsApplied: allDimensions(),
		},
		IntensityApplied: 10,
	}

	report := CheckCoherence(result)
	if !report.IsCoherent {
		t.Fatalf("IsCoherent = false, failed: %v", report.ChecksFailed)
	}
	if len(report.Warnings) == 0 {
		t.Error("want a warning for an unrecognizable subject")
	}
}

func TestCheckCoherenceIntensityOutOfRange(t *testing.T) {
	result := &Result{
		EnhancedPrompt: "a teapot",
		Details: &Details{
			Original:          Components{Subject: "teapot"},
			Transformed:       Components{Subject: "a teapot", Setting: "x", Mood: "y"},
			DimensionsApplied: allDimensions(),
		},
		IntensityApplied: 11,
	}

	if report := CheckCoherence(result); report.IsCoherent {
		t.Error("IsCoherent = true, want false for out-of-range intensity")
	}
}

func TestCheckCoherenceNilDetails(t *testing.T) {
	if report := CheckCoherence(&Result{}); report.IsCoherent {
		t.Error("IsCoherent = true, want false when details are absent")
	}
	if report := CheckCoherence(nil); report.IsCoherent {
		t.Error("IsCoherent = true, want false for a nil result")
	}
}
