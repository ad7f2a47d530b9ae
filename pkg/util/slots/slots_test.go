package slots

import (
	"testing"
	"time"
)

func TestStart(t *testing.T) {
	tests := []struct {
		name  string
		token int
		want  time.Duration
	}{
		{"token 1 is 09:00", 1, 9 * time.Hour},
		{"token 2 is 09:15", 2, 9*time.Hour + 15*time.Minute},
		{"token 5 is 10:00", 5, 10 * time.Hour},
		{"token 13 is 12:00", 13, 12 * time.Hour},
		{"token 100 runs past end of day", 100, 9*time.Hour + 99*15*time.Minute},
		{"token 0 clamps to 1", 0, 9 * time.Hour},
		{"negative token clamps to 1", -3, 9 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Start(tt.token); got != tt.want {
				t.Errorf("Start(%d) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestStartFormula(t *testing.T) {
	// Start(t) = 09:00 + 15min*(t-1) for all t >= 1
	for token := 1; token <= 200; token++ {
		want := 9*time.Hour + time.Duration(token-1)*15*time.Minute
		if got := Start(token); got != want {
			t.Fatalf("Start(%d) = %v, want %v", token, got, want)
		}
	}
}

func TestAt(t *testing.T) {
	day := time.Date(2026, time.March, 14, 17, 45, 3, 0, time.UTC)

	got := At(day, 3)
	want := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got, want)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		token int
		want  string
	}{
		{1, "09:00"},
		{2, "09:15"},
		{4, "09:45"},
		{5, "10:00"},
		{45, "20:00"},
	}

	for _, tt := range tests {
		if got := Label(tt.token); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.token, got, tt.want)
		}
	}
}
