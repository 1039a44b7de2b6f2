package cmd

import (
	"testing"

	"github.com/fatih/color"
)

func TestFormatGradeWithColor(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	cases := []struct {
		letter string
		color  string
	}{
		{"A", "green"},
		{"B", "teal"},
		{"C", "yellow"},
		{"D", "orange"},
		{"F", "red"},
		{"?", "magenta"},
	}
	for _, tc := range cases {
		if got := formatGradeWithColor(tc.letter, tc.color); got != tc.letter {
			t.Errorf("formatGradeWithColor(%q, %q) = %q, want %q", tc.letter, tc.color, got, tc.letter)
		}
	}
}

func TestFormatHealthWithColor(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	for _, status := range []string{"Excellent", "Good", "Fair", "Poor", "Unknown"} {
		if got := formatHealthWithColor(status); got != status {
			t.Errorf("formatHealthWithColor(%q) = %q", status, got)
		}
	}
}

func TestStarBar(t *testing.T) {
	cases := []struct {
		stars int
		want  string
	}{
		{5, "★★★★★"},
		{3, "★★★☆☆"},
		{0, "☆☆☆☆☆"},
		{-1, "☆☆☆☆☆"},
		{9, "★★★★★"},
	}
	for _, tc := range cases {
		if got := starBar(tc.stars); got != tc.want {
			t.Errorf("starBar(%d) = %q, want %q", tc.stars, got, tc.want)
		}
	}
}
