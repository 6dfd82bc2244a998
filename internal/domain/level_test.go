package domain

import (
	"errors"
	"testing"
)

func TestDifficultyRange_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r       DifficultyRange
		wantErr bool
	}{
		{"full", DifficultyRange{1, 5}, false},
		{"single", DifficultyRange{3, 3}, false},
		{"min zero", DifficultyRange{0, 3}, true},
		{"max six", DifficultyRange{2, 6}, true},
		{"inverted", DifficultyRange{4, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.r.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDifficultyRange_ContainsClamp(t *testing.T) {
	t.Parallel()

	r := DifficultyRange{Min: 2, Max: 4}
	for d, want := range map[int]bool{1: false, 2: true, 3: true, 4: true, 5: false} {
		if got := r.Contains(d); got != want {
			t.Errorf("Contains(%d) = %v, want %v", d, got, want)
		}
	}
	for d, want := range map[int]int{1: 2, 3: 3, 5: 4} {
		if got := r.Clamp(d); got != want {
			t.Errorf("Clamp(%d) = %d, want %d", d, got, want)
		}
	}
	if got := r.String(); got != "2-4" {
		t.Errorf("String() = %q", got)
	}
}

func TestLevel_Validate(t *testing.T) {
	t.Parallel()

	ok := Level{Name: "cet4", Target: 10, Range: DifficultyRange{1, 3}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid level: %v", err)
	}

	bad := Level{Target: 0, Range: DifficultyRange{3, 1}}
	err := bad.Validate()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Errors) != 3 {
		t.Fatalf("expected 3 field errors, got %v", err)
	}
}

func TestLevel_Matches(t *testing.T) {
	t.Parallel()

	l := Level{Name: "cet4", Aliases: []string{"CET6"}}
	tests := []struct {
		tag  string
		want bool
	}{
		{"cet4", true},
		{"CET4", true},
		{"cet6", true},
		{"gre", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := l.Matches(tt.tag); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}
