// Package domain defines the core domain models and types for ticket generation.
// A ticket is a fixed-length random string drawn from an alphabet assembled out
// of user-selected character classes minus an exclusion list.
package domain

import "strings"

// Character classes available for alphabet construction. Classes are disjoint,
// so concatenating any combination of them never produces duplicate characters.
const (
	// CapitalChars are the uppercase letters A-Z.
	CapitalChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// LowercaseChars are the lowercase letters a-z.
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	// DigitChars are the decimal digits 0-9.
	DigitChars = "0123456789"
	// SpecialChars are the punctuation characters eligible for ticket generation.
	SpecialChars = ",.;:\"'!%#"
)

// ClassSelection holds the mutable alphabet configuration: which character
// classes are enabled and which individual characters are excluded. It is kept
// separate from the one-shot GenerationRequest so that alphabet construction
// stays pure and testable.
type ClassSelection struct {
	// Capitals enables the uppercase letter class.
	Capitals bool
	// Lowercase enables the lowercase letter class.
	Lowercase bool
	// Digits enables the decimal digit class.
	Digits bool
	// Specials enables the punctuation class.
	Specials bool
	// Exclude lists individual characters to remove from the assembled alphabet.
	// It is a literal character set, not a pattern.
	Exclude string
}

// BuildAlphabet assembles the working alphabet from the selection. Enabled
// classes are concatenated in fixed order (capitals, lowercase, digits,
// specials) and every character present in Exclude is then filtered out.
// The result can be empty; callers must check before starting generation.
func BuildAlphabet(sel ClassSelection) string {
	var buf strings.Builder

	if sel.Capitals {
		buf.WriteString(CapitalChars)
	}
	if sel.Lowercase {
		buf.WriteString(LowercaseChars)
	}
	if sel.Digits {
		buf.WriteString(DigitChars)
	}
	if sel.Specials {
		buf.WriteString(SpecialChars)
	}

	if sel.Exclude == "" {
		return buf.String()
	}

	var filtered strings.Builder
	for _, r := range buf.String() {
		if !strings.ContainsRune(sel.Exclude, r) {
			filtered.WriteRune(r)
		}
	}

	return filtered.String()
}
