// Package generator builds random arithmetic questions.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/tuimath/internal/expr"
	"github.com/verte-zerg/tuimath/internal/model"
)

// Generator produces randomized questions.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate draws three operands in [0, preset.Limit) and two operators from
// the preset pool with replacement, then evaluates "n1 op1 n2 op2 n3".
func (g *Generator) Generate(preset model.Preset, seq int) model.Question {
	q := model.Question{Seq: seq}
	for i := range q.Operands {
		q.Operands[i] = g.rnd.Intn(preset.Limit)
	}
	for i := range q.Ops {
		q.Ops[i] = preset.Ops[g.rnd.Intn(len(preset.Ops))]
	}
	q.Text = fmt.Sprintf("%d %s %d %s %d", q.Operands[0], q.Ops[0], q.Operands[1], q.Ops[1], q.Operands[2])
	answer, err := expr.Eval(q.Text)
	if err != nil {
		// Generated text always matches the grammar.
		panic(fmt.Sprintf("generator produced invalid expression %q: %v", q.Text, err))
	}
	q.Answer = expr.Round2(answer)
	return q
}
