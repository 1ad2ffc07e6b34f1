package quiz

import (
	"strconv"
	"strings"

	"github.com/verte-zerg/tuimath/internal/model"
)

// Evaluate parses input as a float and compares it with expected using exact
// equality. Unparseable input is wrong.
func Evaluate(input string, expected float64) model.Verdict {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return model.VerdictWrong
	}
	if v == expected {
		return model.VerdictCorrect
	}
	return model.VerdictWrong
}
