package domain

// CheckResult is a single validation finding. Engines return every finding
// at once so callers can render all violations together instead of
// one-at-a-time; a failed check is data, never a Go error.
type CheckResult struct {
	Passed        bool          `json:"passed"`
	FieldPath     string        `json:"field_path"`
	ExpectedValue string        `json:"expected_value"`
	ActualValue   string        `json:"actual_value"`
	Message       string        `json:"message"`
	Severity      CheckSeverity `json:"severity"`
}

// Failures filters a result set down to the checks that did not pass.
func Failures(results []CheckResult) []CheckResult {
	var failed []CheckResult
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// AllPassed reports whether every check in the set passed.
func AllPassed(results []CheckResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
