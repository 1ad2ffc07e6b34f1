package quiz

import (
	"time"

	"github.com/verte-zerg/tuimath/internal/model"
)

// fakeClock runs scheduled callbacks synchronously from Advance.
type fakeClock struct {
	now   time.Time
	seq   int
	tasks []*fakeTask
}

type fakeTask struct {
	at      time.Time
	seq     int
	f       func()
	stopped bool
}

func (t *fakeTask) Stop() {
	t.stopped = true
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Handle {
	t := &fakeTask{at: c.now.Add(d), seq: c.seq, f: f}
	c.seq++
	c.tasks = append(c.tasks, t)
	return t
}

// Advance moves time forward, firing due callbacks in schedule order.
func (c *fakeClock) Advance(d time.Duration) {
	target := c.now.Add(d)
	for {
		t := c.popDue(target)
		if t == nil {
			break
		}
		c.now = t.at
		t.f()
	}
	c.now = target
}

func (c *fakeClock) popDue(target time.Time) *fakeTask {
	idx := -1
	for i, t := range c.tasks {
		if t.stopped || t.at.After(target) {
			continue
		}
		if idx == -1 || t.at.Before(c.tasks[idx].at) || (t.at.Equal(c.tasks[idx].at) && t.seq < c.tasks[idx].seq) {
			idx = i
		}
	}
	if idx == -1 {
		return nil
	}
	t := c.tasks[idx]
	c.tasks = append(c.tasks[:idx], c.tasks[idx+1:]...)
	return t
}

func (c *fakeClock) pending() int {
	n := 0
	for _, t := range c.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

type recordingPresenter struct {
	frames   []Frame
	feedback []Feedback
}

func (p *recordingPresenter) Render(f Frame) {
	p.frames = append(p.frames, f)
}

func (p *recordingPresenter) Notify(fb Feedback) {
	p.feedback = append(p.feedback, fb)
}

func (p *recordingPresenter) lastFeedback() Feedback {
	if len(p.feedback) == 0 {
		return Feedback{}
	}
	return p.feedback[len(p.feedback)-1]
}

// scriptedGenerator hands out fixed questions in order, repeating the last.
type scriptedGenerator struct {
	questions []model.Question
	presets   []model.Preset
}

func (g *scriptedGenerator) Generate(preset model.Preset, seq int) model.Question {
	g.presets = append(g.presets, preset)
	idx := len(g.presets) - 1
	if idx >= len(g.questions) {
		idx = len(g.questions) - 1
	}
	q := g.questions[idx]
	q.Seq = seq
	return q
}
