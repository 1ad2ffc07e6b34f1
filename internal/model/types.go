// Package model defines shared data structures.
package model

import "time"

// Config defines quiz settings after flags, environment and file are merged.
type Config struct {
	Level     int
	QuickMode bool
	TimeLimit time.Duration
	Seed      int64
	LogLevel  string
	LogFile   string
}

// Question is a generated arithmetic question. It is never mutated; the next
// round supersedes it.
type Question struct {
	Text     string
	Answer   float64
	Seq      int
	Operands [3]int
	Ops      [2]Operator
}

// Verdict is the result of comparing an answer with the expected value.
type Verdict int

const (
	VerdictWrong Verdict = iota
	VerdictCorrect
)

func (v Verdict) String() string {
	if v == VerdictCorrect {
		return "correct"
	}
	return "wrong"
}

// FeedbackKind selects which transient message the presentation shows.
type FeedbackKind int

const (
	FeedbackCorrect FeedbackKind = iota
	FeedbackWrong
	FeedbackTimeUp
)

func (k FeedbackKind) String() string {
	switch k {
	case FeedbackCorrect:
		return "correct"
	case FeedbackWrong:
		return "wrong"
	case FeedbackTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// SessionStats counts questions within a single game.
//
// Issued is incremented when a question is shown; Correct and Wrong when it
// resolves. While a question is pending Issued == Completed()+1.
type SessionStats struct {
	Issued  int
	Correct int
	Wrong   int
}

// Completed returns the number of resolved questions.
func (s SessionStats) Completed() int {
	return s.Correct + s.Wrong
}
