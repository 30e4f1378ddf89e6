package title

import (
	"errors"
	"testing"
)

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Untitled", true},
		{"Untitled document", true},
		{"untitled document", true},
		{"UNTITLED", true},
		{"UNTITLED DOCUMENT", true},
		{"Untitled Notes", false},
		{"My Untitled Draft", false},
		{"Untitled documents", false},
		{"", false},
		{"Budget Draft", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := IsPlaceholder(tt.title); got != tt.want {
				t.Errorf("IsPlaceholder(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestIsMeaningful(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Budget Draft", true},
		{"Untitled document", false}, // placeholder, despite length
		{"short", false},             // five characters is not enough
		{"sixchr", true},
		{"      padded      ", false}, // trimmed length counts
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := IsMeaningful(tt.title); got != tt.want {
				t.Errorf("IsMeaningful(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	t.Run("clean title passes through", func(t *testing.T) {
		got, truncated, err := Sanitize("Meeting Notes 2024", 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if truncated {
			t.Error("unexpected truncation")
		}
		if got != "Meeting Notes 2024" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("strips every illegal character", func(t *testing.T) {
		got, _, err := Sanitize(`Q3: "Report" <final>/draft\*?|`, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Q3 Report finaldraft" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("only illegal characters yields error", func(t *testing.T) {
		_, _, err := Sanitize(`\/:*?"<>|`, 100)
		if !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("err = %v, want ErrEmptyTitle", err)
		}
	})

	t.Run("empty candidate yields error", func(t *testing.T) {
		_, _, err := Sanitize("", 100)
		if !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("err = %v, want ErrEmptyTitle", err)
		}
	})

	t.Run("truncates to max length", func(t *testing.T) {
		got, truncated, err := Sanitize("abcdefghij", 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !truncated {
			t.Error("expected truncation to be reported")
		}
		if got != "abcd" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"Meeting Notes 2024",
			`Q3: "Report"`,
			"abcdefghij",
		}
		for _, in := range inputs {
			once, _, err := Sanitize(in, 8)
			if err != nil {
				t.Fatalf("Sanitize(%q): %v", in, err)
			}
			twice, _, err := Sanitize(once, 8)
			if err != nil {
				t.Fatalf("Sanitize(%q): %v", once, err)
			}
			if once != twice {
				t.Errorf("not idempotent: %q -> %q -> %q", in, once, twice)
			}
		}
	})
}
