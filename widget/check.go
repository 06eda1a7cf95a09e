package widget

import "slices"

// Verdict is the outcome of checking an assembled response
type Verdict uint8

const (
	VerdictNone    Verdict = iota // Empty response, nothing reported
	VerdictCorrect                // Exact match against an accepted answer
	VerdictMistake                // Non-empty response matching no answer
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictMistake:
		return "mistake"
	default:
		return "none"
	}
}

// Evaluate compares response against the accepted answers by exact string equality
func Evaluate(response string, answers []string) Verdict {
	if response == "" {
		return VerdictNone
	}
	if slices.Contains(answers, response) {
		return VerdictCorrect
	}
	return VerdictMistake
}
