package judge

import (
	"strings"

	"github.com/sempr/acedit-go/pkg/constants"
)

// Normalize trims the text as a whole, strips each line, and rejoins.
// Idempotent: normalizing normalized text is a no-op.
func Normalize(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// Classify maps one case's exit status and outputs to a verdict. Pure: the
// timeout sentinel wins regardless of outputs, exit 0 compares normalized
// outputs byte for byte, any other exit is a runtime error.
func Classify(res RunResult, expected, actual string) constants.Verdict {
	switch {
	case res.TimedOut:
		return constants.TLE
	case res.ExitCode == 0:
		if Normalize(expected) == Normalize(actual) {
			return constants.AC
		}
		return constants.WA
	default:
		return constants.RTE
	}
}
