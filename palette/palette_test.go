package palette

import (
	"testing"

	"github.com/snapmark/snapmark"
)

func TestDefault(t *testing.T) {
	colors := Default()
	if len(colors) != 8 {
		t.Fatalf("len(Default()) = %d, want 8", len(colors))
	}
	for i, c := range colors {
		if c.A != 255 {
			t.Errorf("color %d = %v, want opaque", i, c)
		}
	}
}

func TestHighlight(t *testing.T) {
	if got := Highlight(); got != (snapmark.RGBA{R: 255, G: 255, A: 128}) {
		t.Errorf("Highlight() = %v", got)
	}
}

func TestDistinct(t *testing.T) {
	colors := Distinct(6)
	if len(colors) != 6 {
		t.Fatalf("len(Distinct(6)) = %d", len(colors))
	}

	seen := make(map[snapmark.RGBA]bool)
	for i, c := range colors {
		if c.A != 255 {
			t.Errorf("color %d = %v, want opaque", i, c)
		}
		if seen[c] {
			t.Errorf("color %d = %v repeats", i, c)
		}
		seen[c] = true
	}
}

func TestDistinctEmpty(t *testing.T) {
	if got := Distinct(0); got != nil {
		t.Errorf("Distinct(0) = %v, want nil", got)
	}
	if got := Distinct(-3); got != nil {
		t.Errorf("Distinct(-3) = %v, want nil", got)
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		name string
		in   snapmark.RGBA
		want snapmark.RGBA
	}{
		{name: "on white", in: snapmark.White, want: snapmark.Black},
		{name: "on black", in: snapmark.Black, want: snapmark.White},
		{name: "on yellow", in: snapmark.Yellow, want: snapmark.Black},
		{name: "on blue", in: snapmark.Blue, want: snapmark.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contrast(tt.in); got != tt.want {
				t.Errorf("Contrast(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
