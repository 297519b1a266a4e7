package life

import (
	"fmt"
	"strings"
)

// RuleSet holds the neighbor counts that cause a dead cell to be born and
// the counts that let a live cell survive. Both keep the order and
// duplicates of the digit strings they were parsed from.
type RuleSet struct {
	born     []uint8
	survives []uint8
}

// ParseRules builds a RuleSet from two digit strings, one entry per digit.
// Empty strings yield empty sets.
func ParseRules(born, survives string) (RuleSet, error) {
	b, err := parseDigits("born", born)
	if err != nil {
		return RuleSet{}, err
	}
	s, err := parseDigits("survives", survives)
	if err != nil {
		return RuleSet{}, err
	}
	return RuleSet{born: b, survives: s}, nil
}

// ParseRuleString parses the canonical "B<digits>/S<digits>" form.
// The B and S prefixes are case-insensitive.
func ParseRuleString(rule string) (RuleSet, error) {
	parts := strings.Split(strings.TrimSpace(rule), "/")
	if len(parts) != 2 {
		return RuleSet{}, fmt.Errorf("life: rule %q: expected B<digits>/S<digits>: %w", rule, ErrInvalidRule)
	}
	born, ok := cutPrefixFold(parts[0], "b")
	if !ok {
		return RuleSet{}, fmt.Errorf("life: rule %q: missing B prefix: %w", rule, ErrInvalidRule)
	}
	survives, ok := cutPrefixFold(parts[1], "s")
	if !ok {
		return RuleSet{}, fmt.Errorf("life: rule %q: missing S prefix: %w", rule, ErrInvalidRule)
	}
	return ParseRules(born, survives)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", false
	}
	return s[len(prefix):], true
}

func parseDigits(field, digits string) ([]uint8, error) {
	out := make([]uint8, 0, len(digits))
	for i, r := range digits {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("life: %s rule %q: character %q at position %d is not a digit: %w",
				field, digits, r, i, ErrInvalidRule)
		}
		out = append(out, uint8(r-'0'))
	}
	return out, nil
}

// IsBorn reports whether a dead cell with n live neighbors comes alive.
func (r RuleSet) IsBorn(n uint8) bool {
	return contains(r.born, n)
}

// IsSurvivor reports whether a live cell with n live neighbors stays alive.
func (r RuleSet) IsSurvivor(n uint8) bool {
	return contains(r.survives, n)
}

func contains(set []uint8, n uint8) bool {
	for _, v := range set {
		if v == n {
			return true
		}
	}
	return false
}

// BornDigits renders the born set back to its original digit string.
func (r RuleSet) BornDigits() string {
	return digitsString(r.born)
}

// SurvivesDigits renders the survives set back to its original digit string.
func (r RuleSet) SurvivesDigits() string {
	return digitsString(r.survives)
}

func digitsString(set []uint8) string {
	var sb strings.Builder
	sb.Grow(len(set))
	for _, v := range set {
		sb.WriteByte('0' + v)
	}
	return sb.String()
}

// String returns the canonical B<digits>/S<digits> form.
func (r RuleSet) String() string {
	return "B" + r.BornDigits() + "/S" + r.SurvivesDigits()
}
