// Package quiz implements the question lifecycle: input buffering, answer
// evaluation, scoring, the per-question countdown and the controller that
// drives them.
package quiz

// InputBuffer holds the answer being typed. It contains at most one '.' and
// a '-' only in the first position.
type InputBuffer struct {
	runes []rune
}

// Append adds r if it keeps the buffer valid and reports whether it changed.
func (b *InputBuffer) Append(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
	case r == '.':
		if b.hasDot() {
			return false
		}
	case r == '-':
		if len(b.runes) > 0 {
			return false
		}
	default:
		return false
	}
	b.runes = append(b.runes, r)
	return true
}

// DeleteLast removes the final character; it is a no-op on an empty buffer.
func (b *InputBuffer) DeleteLast() {
	if len(b.runes) == 0 {
		return
	}
	b.runes = b.runes[:len(b.runes)-1]
}

// Clear empties the buffer.
func (b *InputBuffer) Clear() {
	b.runes = nil
}

// Value returns the buffered text.
func (b *InputBuffer) Value() string {
	return string(b.runes)
}

func (b *InputBuffer) hasDot() bool {
	for _, r := range b.runes {
		if r == '.' {
			return true
		}
	}
	return false
}
