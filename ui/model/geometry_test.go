package model

import (
	"image"
	"testing"
)

func TestParseGeometry(t *testing.T) {
	cases := []struct {
		in   string
		want image.Rectangle
		ok   bool
	}{
		{"960x640+100+100", image.Rect(100, 100, 1060, 740), true},
		{" 800x600+0+0 ", image.Rect(0, 0, 800, 600), true},
		{"800x600+-20+-5", image.Rect(-20, -5, 780, 595), true},
		{"800x600-20+5", image.Rect(-20, 5, 780, 605), true},
		{"0x600+0+0", image.Rectangle{}, false},
		{"800x600", image.Rectangle{}, false},
		{"garbage", image.Rectangle{}, false},
	}
	for _, c := range cases {
		got, ok := ParseGeometry(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ParseGeometry(%q) = %v,%v want %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestInset(t *testing.T) {
	if w, h := Inset(960, 640, 280, 40); w != 680 || h != 600 {
		t.Fatalf("unexpected inset %dx%d", w, h)
	}
	if w, h := Inset(100, 20, 280, 40); w != 0 || h != 0 {
		t.Fatalf("inset must not go negative, got %dx%d", w, h)
	}
}
