package theme

// Light/dark palettes for the viewfinder UI. The presets live in
// assets/palettes.json; Tk style application is done by the view package so
// this package stays free of Tk and can be used headless.

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"github.com/soocke/viewfinder-go/assets"
)

// PaletteSnapshot represents resolved colors for the active mode. String
// fields are Tk color specs; Mask/Frame/Laser feed the overlay renderer.
type PaletteSnapshot struct {
	AppBg     string `json:"app_bg"`
	Surface   string `json:"surface"`
	Border    string `json:"border"`
	Primary   string `json:"primary"`
	Danger    string `json:"danger"`
	Accent    string `json:"accent"`
	Text      string `json:"text"`
	TextMuted string `json:"text_muted"`
	PreviewBg string `json:"preview_bg"`

	MaskHex  string `json:"mask"`
	FrameHex string `json:"frame"`
	LaserHex string `json:"laser"`

	Mask  color.NRGBA `json:"-"`
	Frame color.NRGBA `json:"-"`
	Laser color.NRGBA `json:"-"`
}

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleAccentLabel   = "accent.TLabel"
	StyleStateLabel    = "state.TLabel"
)

var (
	loadOnce sync.Once
	light    PaletteSnapshot
	dark     PaletteSnapshot
	loadErr  error

	// internal flag for current mode
	darkMode bool
)

// Load parses the embedded presets. It is safe to call repeatedly.
func Load() error {
	loadOnce.Do(func() {
		raw, err := assets.Palettes()
		if err != nil {
			loadErr = err
			return
		}
		light, dark, loadErr = ParsePalettes(raw)
	})
	return loadErr
}

// ParsePalettes decodes a {"light": ..., "dark": ...} document.
func ParsePalettes(raw []byte) (PaletteSnapshot, PaletteSnapshot, error) {
	var doc struct {
		Light PaletteSnapshot `json:"light"`
		Dark  PaletteSnapshot `json:"dark"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return PaletteSnapshot{}, PaletteSnapshot{}, fmt.Errorf("theme: decode palettes: %w", err)
	}
	if err := doc.Light.resolve(); err != nil {
		return PaletteSnapshot{}, PaletteSnapshot{}, fmt.Errorf("theme: light: %w", err)
	}
	if err := doc.Dark.resolve(); err != nil {
		return PaletteSnapshot{}, PaletteSnapshot{}, fmt.Errorf("theme: dark: %w", err)
	}
	return doc.Light, doc.Dark, nil
}

func (p *PaletteSnapshot) resolve() error {
	var err error
	if p.Mask, err = ParseHex(p.MaskHex); err != nil {
		return fmt.Errorf("mask: %w", err)
	}
	if p.Frame, err = ParseHex(p.FrameHex); err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	if p.Laser, err = ParseHex(p.LaserHex); err != nil {
		return fmt.Errorf("laser: %w", err)
	}
	return nil
}

// ParseHex accepts #rrggbb (opaque) or #rrggbbaa.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// CurrentPalette returns colors for the current dark/light mode. If the
// presets failed to load the zero palette is returned.
func CurrentPalette() PaletteSnapshot {
	_ = Load()
	if darkMode {
		return dark
	}
	return light
}

// SetDark switches mode. Returns new mode value.
func SetDark(d bool) bool {
	darkMode = d
	return darkMode
}

// ToggleDark flips dark mode. Returns new mode value.
func ToggleDark() bool { return SetDark(!darkMode) }

// IsDark reports current mode.
func IsDark() bool { return darkMode }
