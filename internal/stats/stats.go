// Package stats renders quiz summaries and preset tables.
package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/tuimath/internal/model"
)

// Accuracy returns the share of correct answers in [0,1].
func Accuracy(correct, wrong int) float64 {
	total := correct + wrong
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// RenderSummary prints the end-of-run summary.
func RenderSummary(w io.Writer, s model.SessionStats) error {
	if s.Issued == 0 {
		_, err := fmt.Fprintln(w, "No questions answered.")
		return err
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Questions: %d", s.Issued),
		fmt.Sprintf("Completed: %d", s.Completed()),
		fmt.Sprintf("Correct: %d", s.Correct),
		fmt.Sprintf("Wrong: %d", s.Wrong),
		fmt.Sprintf("Accuracy: %.2f%%", Accuracy(s.Correct, s.Wrong)*100),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderPresetTable prints the difficulty presets.
func RenderPresetTable(w io.Writer) error {
	headers := []string{"Level", "Limit", "Operators"}
	presets := model.Presets()
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		ops := make([]string, len(p.Ops))
		for i, op := range p.Ops {
			ops[i] = op.String()
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Level),
			fmt.Sprintf("%d", p.Limit),
			strings.Join(ops, " "),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true, 1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
