package theme

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#1e88e5", color.NRGBA{0x1e, 0x88, 0xe5, 0xff}, true},
		{"#00000060", color.NRGBA{0, 0, 0, 0x60}, true},
		{"cc0000", color.NRGBA{0xcc, 0, 0, 0xff}, true},
		{"#abc", color.NRGBA{}, false},
		{"#zzzzzz", color.NRGBA{}, false},
	}
	for _, c := range cases {
		got, err := ParseHex(c.in)
		if (err == nil) != c.ok {
			t.Fatalf("%q: err=%v", c.in, err)
		}
		if c.ok && got != c.want {
			t.Fatalf("%q: got %v want %v", c.in, got, c.want)
		}
	}
}

func TestEmbeddedPalettes(t *testing.T) {
	if err := Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	defer SetDark(false)
	SetDark(false)
	l := CurrentPalette()
	if l.Frame != (color.NRGBA{0x1e, 0x88, 0xe5, 0xff}) || l.Mask.A != 0x60 {
		t.Fatalf("unexpected light palette %+v", l)
	}
	if !ToggleDark() || !IsDark() {
		t.Fatalf("toggle should enable dark mode")
	}
	d := CurrentPalette()
	if d.AppBg == l.AppBg || d.Mask.A <= l.Mask.A {
		t.Fatalf("dark palette should differ: %+v", d)
	}
}

func TestParsePalettes_Errors(t *testing.T) {
	if _, _, err := ParsePalettes([]byte("{")); err == nil {
		t.Fatalf("expected decode error")
	}
	bad := []byte(`{"light":{"mask":"#000","frame":"#ffffff","laser":"#ffffff"},"dark":{}}`)
	if _, _, err := ParsePalettes(bad); err == nil {
		t.Fatalf("expected color error")
	}
}
