package quiz

import "github.com/verte-zerg/tuimath/internal/model"

// Scoreboard tracks issued and resolved questions for one game.
type Scoreboard struct {
	stats model.SessionStats
}

// RecordNewQuestion counts a question as issued. It is called before the
// question is shown.
func (s *Scoreboard) RecordNewQuestion() {
	s.stats.Issued++
}

// RecordOutcome counts a resolved question.
func (s *Scoreboard) RecordOutcome(v model.Verdict) {
	if v == model.VerdictCorrect {
		s.stats.Correct++
		return
	}
	s.stats.Wrong++
}

// Reset zeroes all counters.
func (s *Scoreboard) Reset() {
	s.stats = model.SessionStats{}
}

// Stats returns a snapshot of the counters.
func (s *Scoreboard) Stats() model.SessionStats {
	return s.stats
}
