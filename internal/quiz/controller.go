package quiz

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuimath/internal/model"
)

const (
	// DefaultTimeLimit is the countdown length for each question.
	DefaultTimeLimit = 20 * time.Second
	// CorrectDelay is how long correct feedback stays before the next question.
	CorrectDelay = 1000 * time.Millisecond
	// WrongDelay is the delay after a wrong answer or a timeout.
	WrongDelay = 1500 * time.Millisecond
)

// State is a phase of the question lifecycle.
type State int

const (
	StateMenu State = iota
	StateAwaitingAnswer
	StateResolving
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Frame is what the presentation needs to draw the current round.
type Frame struct {
	QuestionText  string
	QuestionIndex int
	TimerFraction float64
	Scoreboard    model.SessionStats
}

// Feedback is a transient message about a resolved question. The presenter
// owns its dismissal; Dismiss is the delay before the next question.
type Feedback struct {
	Kind    model.FeedbackKind
	Title   string
	Message string
	Answer  float64
	Dismiss time.Duration
}

// Presenter receives render signals and feedback notifications.
type Presenter interface {
	Render(Frame)
	Notify(Feedback)
}

// Generator produces the question for a preset.
type Generator interface {
	Generate(preset model.Preset, seq int) model.Question
}

// Options tunes a Controller.
type Options struct {
	TimeLimit time.Duration
	QuickMode bool
	Logger    *zerolog.Logger
	NewID     func() string
}

// Controller owns the game state and mediates every transition. All methods
// and every scheduled callback must run on one logical thread.
type Controller struct {
	clock     Clock
	gen       Generator
	presenter Presenter
	baseLog   zerolog.Logger
	log       zerolog.Logger
	newID     func() string

	timeLimit time.Duration
	quick     bool

	state     State
	preset    model.Preset
	gameID    string
	question  *model.Question
	input     InputBuffer
	score     Scoreboard
	countdown *Countdown
	advance   Handle
}

// NewController returns a Controller in the menu state.
func NewController(clock Clock, gen Generator, presenter Presenter, opts Options) *Controller {
	if opts.TimeLimit <= 0 {
		opts.TimeLimit = DefaultTimeLimit
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Controller{
		clock:     clock,
		gen:       gen,
		presenter: presenter,
		baseLog:   logger,
		log:       logger,
		newID:     opts.NewID,
		timeLimit: opts.TimeLimit,
		quick:     opts.QuickMode,
		state:     StateMenu,
		countdown: NewCountdown(clock),
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// QuickMode reports whether answers auto-submit on a match.
func (c *Controller) QuickMode() bool { return c.quick }

// Input returns the buffered answer text.
func (c *Controller) Input() string { return c.input.Value() }

// Level returns the level of the current or last game.
func (c *Controller) Level() model.Level { return c.preset.Level }

// Stats returns the counters of the current or last game.
func (c *Controller) Stats() model.SessionStats { return c.score.Stats() }

// Question returns the active question, if any.
func (c *Controller) Question() (model.Question, bool) {
	if c.question == nil {
		return model.Question{}, false
	}
	return *c.question, true
}

// Frame builds the render signal for the current state.
func (c *Controller) Frame() Frame {
	f := Frame{
		TimerFraction: c.countdown.Fraction(),
		Scoreboard:    c.score.Stats(),
	}
	if c.question != nil {
		f.QuestionText = c.question.Text + " = ?"
		f.QuestionIndex = c.question.Seq
	}
	return f
}

// SelectDifficulty starts a fresh game from the menu. Unknown levels fall
// back to level 1.
func (c *Controller) SelectDifficulty(level model.Level) {
	if c.state != StateMenu {
		return
	}
	c.preset = model.ResolvePreset(level)
	c.score.Reset()
	c.gameID = c.newID()
	c.log = c.baseLog.With().Str("game", c.gameID).Int("level", int(c.preset.Level)).Logger()
	c.log.Info().Bool("quick", c.quick).Dur("time_limit", c.timeLimit).Msg("game started")
	c.nextQuestion()
}

// InputChar appends r to the answer. In quick mode a matching buffer submits
// immediately.
func (c *Controller) InputChar(r rune) {
	if c.state != StateAwaitingAnswer {
		return
	}
	if !c.input.Append(r) {
		return
	}
	if c.quick && Evaluate(c.input.Value(), c.question.Answer) == model.VerdictCorrect {
		c.resolve(model.VerdictCorrect, model.FeedbackCorrect)
		return
	}
	c.render()
}

// Backspace removes the last typed character.
func (c *Controller) Backspace() {
	if c.state != StateAwaitingAnswer {
		return
	}
	c.input.DeleteLast()
	c.render()
}

// Submit evaluates the buffered answer.
func (c *Controller) Submit() {
	if c.state != StateAwaitingAnswer {
		return
	}
	verdict := Evaluate(c.input.Value(), c.question.Answer)
	kind := model.FeedbackWrong
	if verdict == model.VerdictCorrect {
		kind = model.FeedbackCorrect
	}
	c.resolve(verdict, kind)
}

// ToggleQuickMode flips the evaluation policy. It affects only later input.
func (c *Controller) ToggleQuickMode() {
	c.quick = !c.quick
	c.log.Debug().Bool("quick", c.quick).Msg("quick mode toggled")
	c.render()
}

// Reset returns to the menu, cancelling the countdown and any pending advance.
func (c *Controller) Reset() {
	if c.state == StateMenu {
		return
	}
	c.countdown.Cancel()
	c.cancelAdvance()
	c.question = nil
	c.input.Clear()
	c.state = StateMenu
	stats := c.score.Stats()
	c.log.Info().Int("completed", stats.Completed()).Int("correct", stats.Correct).Int("wrong", stats.Wrong).Msg("game reset")
	c.render()
}

func (c *Controller) nextQuestion() {
	c.cancelAdvance()
	c.countdown.Cancel()
	c.score.RecordNewQuestion()
	q := c.gen.Generate(c.preset, c.score.Stats().Issued)
	c.question = &q
	c.input.Clear()
	c.state = StateAwaitingAnswer
	c.log.Debug().Int("seq", q.Seq).Str("text", q.Text).Float64("answer", q.Answer).Msg("question issued")
	c.countdown.Start(c.timeLimit, c.onTick, c.onExpire)
	c.render()
}

func (c *Controller) onTick(float64) {
	c.render()
}

func (c *Controller) onExpire() {
	if c.state != StateAwaitingAnswer {
		return
	}
	c.resolve(model.VerdictWrong, model.FeedbackTimeUp)
}

func (c *Controller) resolve(verdict model.Verdict, kind model.FeedbackKind) {
	c.countdown.Cancel()
	c.score.RecordOutcome(verdict)
	c.state = StateResolving
	fb := newFeedback(kind, c.question.Answer)
	c.log.Info().
		Int("seq", c.question.Seq).
		Str("input", c.input.Value()).
		Str("outcome", kind.String()).
		Msg("question resolved")
	c.presenter.Notify(fb)
	c.render()
	c.advance = c.clock.AfterFunc(fb.Dismiss, c.onAdvance)
}

func (c *Controller) onAdvance() {
	c.advance = nil
	if c.state != StateResolving {
		return
	}
	c.nextQuestion()
}

func (c *Controller) cancelAdvance() {
	if c.advance == nil {
		return
	}
	c.advance.Stop()
	c.advance = nil
}

func (c *Controller) render() {
	c.presenter.Render(c.Frame())
}

func newFeedback(kind model.FeedbackKind, answer float64) Feedback {
	text := FormatAnswer(answer)
	fb := Feedback{Kind: kind, Answer: answer, Dismiss: WrongDelay}
	switch kind {
	case model.FeedbackCorrect:
		fb.Title = "Correct!"
		fb.Message = fmt.Sprintf("%s is the answer.", text)
		fb.Dismiss = CorrectDelay
	case model.FeedbackTimeUp:
		fb.Title = "Time Up!"
		fb.Message = fmt.Sprintf("The answer was %s", text)
	default:
		fb.Title = "Wrong!"
		fb.Message = fmt.Sprintf("The correct answer was %s", text)
	}
	return fb
}

// FormatAnswer renders an answer without trailing zeros.
func FormatAnswer(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
