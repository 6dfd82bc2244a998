package domain

import (
	"fmt"
	"slices"
)

// Difficulty bounds for every entry.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// DifficultyRange is an inclusive [Min, Max] difficulty window.
type DifficultyRange struct {
	Min int
	Max int
}

// Validate checks 1 <= Min <= Max <= 5.
func (r DifficultyRange) Validate() error {
	if r.Min < MinDifficulty || r.Max > MaxDifficulty {
		return fmt.Errorf("difficulty range [%d,%d] outside [%d,%d]", r.Min, r.Max, MinDifficulty, MaxDifficulty)
	}
	if r.Min > r.Max {
		return fmt.Errorf("difficulty range [%d,%d]: min > max", r.Min, r.Max)
	}
	return nil
}

// Contains reports whether d lies inside the range.
func (r DifficultyRange) Contains(d int) bool {
	return d >= r.Min && d <= r.Max
}

// Clamp moves d into the range.
func (r DifficultyRange) Clamp(d int) int {
	return min(max(d, r.Min), r.Max)
}

func (r DifficultyRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Level is a named proficiency tier with its corpus size and difficulty window.
// Aliases are additional level tags whose entries qualify for this level.
// A non-empty Topic restricts the seeds to the words of that topic.
type Level struct {
	Name    string
	Target  int
	Range   DifficultyRange
	Aliases []string
	Topic   string
}

// Validate checks the level configuration.
func (l Level) Validate() error {
	var errs []FieldError
	if l.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if l.Target <= 0 {
		errs = append(errs, FieldError{Field: "target", Message: fmt.Sprintf("must be > 0 (got %d)", l.Target)})
	}
	if err := l.Range.Validate(); err != nil {
		errs = append(errs, FieldError{Field: "difficulty", Message: err.Error()})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Matches reports whether tag names this level or one of its aliases.
func (l Level) Matches(tag string) bool {
	if tag == "" {
		return false
	}
	tag = NormalizeText(tag)
	return tag == NormalizeText(l.Name) || slices.ContainsFunc(l.Aliases, func(a string) bool {
		return NormalizeText(a) == tag
	})
}
