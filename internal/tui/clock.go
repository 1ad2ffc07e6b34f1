package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuimath/internal/quiz"
)

// firedMsg is delivered when a scheduled task is due.
type firedMsg struct {
	id uint64
}

// teaClock schedules controller callbacks as tea.Tick commands so they run
// inside Update, on the same goroutine as key events.
type teaClock struct {
	now    func() time.Time
	next   uint64
	tasks  map[uint64]func()
	queued []tea.Cmd
}

func newTeaClock(now func() time.Time) *teaClock {
	if now == nil {
		now = time.Now
	}
	return &teaClock{now: now, tasks: map[uint64]func(){}}
}

func (c *teaClock) Now() time.Time {
	return c.now()
}

func (c *teaClock) AfterFunc(d time.Duration, f func()) quiz.Handle {
	c.next++
	id := c.next
	c.tasks[id] = f
	c.queued = append(c.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return firedMsg{id: id}
	}))
	return taskHandle{clock: c, id: id}
}

// fire runs the task unless it was stopped or already ran.
func (c *teaClock) fire(id uint64) {
	f, ok := c.tasks[id]
	if !ok {
		return
	}
	delete(c.tasks, id)
	f()
}

func (c *teaClock) drain() []tea.Cmd {
	cmds := c.queued
	c.queued = nil
	return cmds
}

func (c *teaClock) pending() int {
	return len(c.tasks)
}

type taskHandle struct {
	clock *teaClock
	id    uint64
}

func (h taskHandle) Stop() {
	delete(h.clock.tasks, h.id)
}
