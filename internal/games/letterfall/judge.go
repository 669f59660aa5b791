package letterfall

import (
	"unicode"
	"unicode/utf8"
)

// JudgmentKind classifies how a keypress was resolved.
type JudgmentKind int

const (
	JudgeIgnored JudgmentKind = iota // Malformed input or session not playing
	JudgeHit                         // A matching letter in the band was struck
	JudgeMiss                        // A letter key matched nothing eligible
)

// String returns a human-readable name for the judgment kind.
func (k JudgmentKind) String() string {
	switch k {
	case JudgeIgnored:
		return "Ignored"
	case JudgeHit:
		return "Hit"
	case JudgeMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Judgment is the outcome of one keypress, for presentation feedback.
type Judgment struct {
	Kind     JudgmentKind
	Key      rune
	LetterID int // ID of the struck letter, 0 unless Kind == JudgeHit
	Points   int
}

// NormalizeKey turns raw key text into a lowercase letter.
// Empty, multi-character and non-letter input is rejected.
func NormalizeKey(key string) (rune, bool) {
	if utf8.RuneCountInString(key) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return 0, false
	}
	return unicode.ToLower(r), true
}

// Target picks the letter a keypress for sym resolves, or nil.
// Candidates are Falling letters with Char == sym inside the band;
// the lowest one on screen (greatest Y) wins, spawn order breaks exact ties.
func (f Field) Target(letters []*Letter, sym rune) *Letter {
	var best *Letter
	for _, l := range letters {
		if l.Status != StatusFalling || l.Char != sym || !f.InBand(l.Y) {
			continue
		}
		if best == nil || l.Y > best.Y {
			best = l
		}
	}
	return best
}
