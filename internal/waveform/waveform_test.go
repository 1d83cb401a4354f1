package waveform

import (
	"testing"
	"time"
	"unicode/utf8"
)

func TestNewSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	if len(a) != DefaultSize {
		t.Fatalf("expected %d samples, got %d", DefaultSize, len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
		if a[i] < 0 || a[i] >= DefaultMagnitude {
			t.Errorf("sample %d out of range: %v", i, a[i])
		}
	}
}

func TestBarLength(t *testing.T) {
	s := Samples{0.0, 0.1, 0.2, 0.49}
	total := 40 * time.Second

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 1}, // zero sample still draws one cell
		{9 * time.Second, 1},
		{10 * time.Second, 5},
		{20 * time.Second, 10},
		{39 * time.Second, 24},
		{40 * time.Second, 1}, // wraps to the first sample
	}

	for _, tt := range tests {
		t.Run(tt.elapsed.String(), func(t *testing.T) {
			if got := s.BarLength(tt.elapsed, total); got != tt.want {
				t.Errorf("BarLength(%v) = %d, want %d", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestBarLengthDegenerate(t *testing.T) {
	if got := (Samples{}).BarLength(time.Second, time.Minute); got != 1 {
		t.Errorf("expected 1 for empty samples, got %d", got)
	}
	if got := (Samples{0.3}).BarLength(time.Second, 0); got != 1 {
		t.Errorf("expected 1 for zero total, got %d", got)
	}
}

func TestBar(t *testing.T) {
	if got := utf8.RuneCountInString(Bar(7)); got != 7 {
		t.Errorf("expected 7 cells, got %d", got)
	}
	if Bar(0) != "" {
		t.Error("expected empty bar for 0")
	}
}
