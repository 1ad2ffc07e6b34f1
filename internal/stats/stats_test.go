package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuimath/internal/model"
)

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, Accuracy(0, 0))
	assert.Equal(t, 0.5, Accuracy(2, 2))
	assert.Equal(t, 1.0, Accuracy(3, 0))
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, model.SessionStats{Issued: 7, Correct: 2, Wrong: 4}))

	out := buf.String()
	assert.Contains(t, out, "Questions: 7\n")
	assert.Contains(t, out, "Completed: 6\n")
	assert.Contains(t, out, "Correct: 2\n")
	assert.Contains(t, out, "Wrong: 4\n")
	assert.Contains(t, out, "Accuracy: 33.33%\n")
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, model.SessionStats{}))
	assert.Equal(t, "No questions answered.\n", buf.String())
}

func TestRenderPresetTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPresetTable(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Level  Limit  Operators", lines[0])
	assert.Equal(t, "    1     10  + -", lines[1])
	assert.Equal(t, "    5    200  + - * * +", lines[5])
}
