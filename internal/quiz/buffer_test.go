package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/tuimath/internal/model"
)

func TestInputBufferRules(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		want  string
	}{
		{"digits", "123", "123"},
		{"single dot", "1.5", "1.5"},
		{"second dot ignored", "1..5.", "1.5"},
		{"leading minus", "-7", "-7"},
		{"minus only first", "7-", "7"},
		{"double minus", "--3", "-3"},
		{"letters ignored", "a1b2", "12"},
		{"dot then minus", ".-5", ".5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b InputBuffer
			for _, r := range tc.typed {
				b.Append(r)
			}
			assert.Equal(t, tc.want, b.Value())
		})
	}
}

func TestInputBufferAppendReportsChange(t *testing.T) {
	var b InputBuffer
	assert.True(t, b.Append('.'))
	assert.False(t, b.Append('.'))
	assert.Equal(t, ".", b.Value())
	assert.False(t, b.Append('-'))
}

func TestInputBufferDeleteAndClear(t *testing.T) {
	var b InputBuffer
	b.DeleteLast()
	assert.Equal(t, "", b.Value())

	for _, r := range "-4.2" {
		b.Append(r)
	}
	b.DeleteLast()
	assert.Equal(t, "-4.", b.Value())
	b.DeleteLast()
	assert.True(t, b.Append('.'), "dot allowed again after deleting it")

	b.Clear()
	assert.Equal(t, "", b.Value())
	assert.True(t, b.Append('-'))
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		want     model.Verdict
	}{
		{"3", 3, model.VerdictCorrect},
		{"3.0", 3, model.VerdictCorrect},
		{"-9", -9, model.VerdictCorrect},
		{"0.25", 0.25, model.VerdictCorrect},
		{"4", 3, model.VerdictWrong},
		{"abc", 3, model.VerdictWrong},
		{"", 0, model.VerdictWrong},
		{"-", 0, model.VerdictWrong},
		{".", 0, model.VerdictWrong},
		{"0.3", 0.33, model.VerdictWrong},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Evaluate(tc.input, tc.expected), "Evaluate(%q, %v)", tc.input, tc.expected)
	}
}

func TestScoreboard(t *testing.T) {
	var s Scoreboard
	s.RecordNewQuestion()
	s.RecordOutcome(model.VerdictCorrect)
	s.RecordNewQuestion()
	s.RecordOutcome(model.VerdictWrong)
	s.RecordNewQuestion()

	stats := s.Stats()
	assert.Equal(t, model.SessionStats{Issued: 3, Correct: 1, Wrong: 1}, stats)
	assert.Equal(t, stats.Issued-1, stats.Completed())

	s.Reset()
	assert.Equal(t, model.SessionStats{}, s.Stats())
}
