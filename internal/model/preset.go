package model

import "fmt"

// Operator is a binary arithmetic operator used in generated questions.
type Operator rune

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
)

// Precedence returns the binding strength; higher binds tighter.
func (o Operator) Precedence() int {
	if o == OpMul {
		return 2
	}
	return 1
}

func (o Operator) String() string {
	return string(rune(o))
}

// Level is a difficulty level in the range [MinLevel, MaxLevel].
type Level int

const (
	MinLevel Level = 1
	MaxLevel Level = 5
)

// Preset pairs the operand magnitude limit with the operator pool for a level.
// Duplicate pool entries make an operator proportionally more likely.
type Preset struct {
	Level Level
	Limit int
	Ops   []Operator
}

// String renders the pool as "+ - * *".
func (p Preset) String() string {
	out := make([]byte, 0, len(p.Ops)*2)
	for i, op := range p.Ops {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, byte(op))
	}
	return fmt.Sprintf("limit %d, ops %s", p.Limit, out)
}

var presets = [...]Preset{
	{Level: 1, Limit: 10, Ops: []Operator{OpAdd, OpSub}},
	{Level: 2, Limit: 20, Ops: []Operator{OpAdd, OpSub, OpMul}},
	{Level: 3, Limit: 50, Ops: []Operator{OpAdd, OpSub, OpMul}},
	{Level: 4, Limit: 100, Ops: []Operator{OpAdd, OpSub, OpMul, OpMul}},
	{Level: 5, Limit: 200, Ops: []Operator{OpAdd, OpSub, OpMul, OpMul, OpAdd}},
}

// PresetFor returns a copy of the preset for level.
func PresetFor(level Level) (Preset, bool) {
	if level < MinLevel || level > MaxLevel {
		return Preset{}, false
	}
	return clonePreset(presets[level-MinLevel]), true
}

// ResolvePreset returns the preset for level, falling back to level 1.
func ResolvePreset(level Level) Preset {
	if p, ok := PresetFor(level); ok {
		return p
	}
	return clonePreset(presets[0])
}

// Presets returns copies of all presets ordered by level.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, clonePreset(p))
	}
	return out
}

func clonePreset(p Preset) Preset {
	ops := make([]Operator, len(p.Ops))
	copy(ops, p.Ops)
	p.Ops = ops
	return p
}
