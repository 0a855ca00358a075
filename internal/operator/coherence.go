package operator

import (
	"fmt"
	"strings"
)

// Report is a non-authoritative diagnostic describing whether a
// transformation is internally consistent with the unified-sensibility
// heuristics.
type Report struct {
	IsCoherent   bool     `json:"is_coherent"`
	ChecksPassed []string `json:"checks_passed"`
	ChecksFailed []string `json:"checks_failed"`
	Warnings     []string `json:"warnings"`
}

// CheckCoherence runs the coherence heuristics over a result. Only the
// hard checks (dimension set, intensity range) can flip IsCoherent;
// warnings never do.
func CheckCoherence(r *Result) Report {
	report := Report{IsCoherent: true}
	if r == nil || r.Details == nil {
		report.IsCoherent = false
		report.ChecksFailed = append(report.ChecksFailed, "no transformation details present")
		return report
	}

	// Check 1: all five dimensions applied, exact set comparison.
	want := make(map[string]bool, 5)
	for _, d := range Dimensions() {
		want[string(d)] = true
	}
	got := make(map[string]bool, len(r.Details.DimensionsApplied))
	for _, d := range r.Details.DimensionsApplied {
		got[d] = true
	}
	if setsEqual(want, got) {
		report.ChecksPassed = append(report.ChecksPassed, "All five transformation dimensions applied")
	} else {
		var missing []string
		for _, d := range Dimensions() {
			if !got[string(d)] {
				missing = append(missing, string(d))
			}
		}
		report.ChecksFailed = append(report.ChecksFailed,
			fmt.Sprintf("Missing dimensions: %s", strings.Join(missing, ", ")))
		report.IsCoherent = false
	}

	// Check 2: original subject still recognizable in the output. A miss
	// is only a warning; very high intensity is expected to trip it.
	if subject := r.Details.Original.Subject; subject != "" {
		enhanced := strings.ToLower(r.EnhancedPrompt)
		recognizable := strings.Contains(enhanced, strings.ToLower(subject))
		if !recognizable {
			for _, word := range strings.Fields(subject) {
				if strings.Contains(enhanced, strings.ToLower(word)) {
					recognizable = true
					break
				}
			}
		}
		if recognizable {
			report.ChecksPassed = append(report.ChecksPassed, "Original subject recognizable")
		} else {
			report.Warnings = append(report.Warnings,
				"Original subject may not be easily recognizable (high intensity?)")
		}
	}

	// Check 3: unified sensibility — at least 3 of 6 slots transformed to
	// something non-empty.
	transformed := 0
	t := r.Details.Transformed
	if t.Subject != "" {
		transformed++
	}
	if t.Action != "" {
		transformed++
	}
	if t.Setting != "" {
		transformed++
	}
	if len(t.Objects) > 0 {
		transformed++
	}
	if len(t.Colors) > 0 {
		transformed++
	}
	if t.Mood != "" {
		transformed++
	}
	if transformed >= 3 {
		report.ChecksPassed = append(report.ChecksPassed,
			"Unified sensibility detected (multiple dimensions transformed)")
	} else {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("Unified sensibility weak: only %d of 6 components transformed", transformed))
	}

	// Check 4: intensity in range.
	if r.IntensityApplied >= 0 && r.IntensityApplied <= 10 {
		report.ChecksPassed = append(report.ChecksPassed,
			fmt.Sprintf("Intensity valid: %d/10", r.IntensityApplied))
	} else {
		report.ChecksFailed = append(report.ChecksFailed,
			fmt.Sprintf("Intensity out of range: %d", r.IntensityApplied))
		report.IsCoherent = false
	}

	return report
}

func setsEqual(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
