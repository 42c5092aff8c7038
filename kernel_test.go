package mandel

import (
	"image/color"
	"testing"
)

func TestEscape_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		c    complex128
		want int
	}{
		{"origin", 0, 256},
		{"far right", 3, 1},
		{"period two", -1, 256},
		{"cardioid", complex(-0.5, 0), 256},
		{"outside disk", complex(0, 2.5), 1},
		{"just outside", complex(0.5, 0), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.c); got != tt.want {
				t.Errorf("Escape(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestEscape_DeterministicAndBounded(t *testing.T) {
	w, err := NewWindow(FullSet.TopLeft(), FullSet.BottomRight(), 37, 29)
	if err != nil {
		t.Fatal(err)
	}
	for row := range 29 {
		for col := range 37 {
			c := w.At(row, col)
			k := Escape(c)
			if k < 0 || k > IterationLimit {
				t.Fatalf("Escape(%v) = %d, out of [0, %d]", c, k, IterationLimit)
			}
			if again := Escape(c); again != k {
				t.Fatalf("Escape(%v) not deterministic: %d then %d", c, k, again)
			}
		}
	}
}

func TestEscapeLimit_RespectsCap(t *testing.T) {
	if got := EscapeLimit(0, 10); got != 10 {
		t.Errorf("EscapeLimit(0, 10) = %d, want 10", got)
	}
	if got := EscapeLimit(0, 0); got != 0 {
		t.Errorf("EscapeLimit(0, 0) = %d, want 0", got)
	}
}

func TestToColor(t *testing.T) {
	tests := []struct {
		k    int
		want color.RGBA
	}{
		{0, color.RGBA{R: 0, A: 255}},
		{1, color.RGBA{R: 10, A: 255}},
		{25, color.RGBA{R: 250, A: 255}},
		{26, color.RGBA{R: 255, A: 255}},
		{255, color.RGBA{R: 255, A: 255}},
		{256, color.RGBA{A: 255}},
	}
	for _, tt := range tests {
		if got := ToColor(tt.k); got != tt.want {
			t.Errorf("ToColor(%d) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestToColorLimit_InSetIsBlack(t *testing.T) {
	if got := ToColorLimit(64, 64); got != (color.RGBA{A: 255}) {
		t.Errorf("ToColorLimit(64, 64) = %v, want opaque black", got)
	}
}
