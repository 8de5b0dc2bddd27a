package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/soocke/viewfinder-go/domain/framing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.SquarePortrait || cfg.LineLength != 60 || cfg.AnimationDelay() != 80*time.Millisecond {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestSaveLoad_PreservesEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.DarkMode = true
	cfg.SquarePortrait = false
	cfg.StrokeWidth = 6
	cfg.LaserAlpha = []int{10, 20, 30, 40, 50, 40, 30, 20}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.DarkMode || got.SquarePortrait || got.StrokeWidth != 6 {
		t.Fatalf("edits lost: %+v", got)
	}
	if len(got.LaserAlpha) != 8 || got.LaserAlpha[4] != 50 {
		t.Fatalf("laser table lost: %v", got.LaserAlpha)
	}
	if got.Constraints != framing.DefaultConstraints() {
		t.Fatalf("constraints changed: %+v", got.Constraints)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.LineLength != 60 {
		t.Fatalf("expected defaults on error, got %+v", cfg)
	}
}

func TestValidate_Clamps(t *testing.T) {
	cfg := &Config{
		Constraints:      framing.DefaultConstraints(),
		LineLength:       -1,
		StrokeWidth:      0,
		CornerRadius:     -3,
		AnimationDelayMS: 2,
		LaserAlpha:       []int{-5, 300, 7, 0, 0, 0, 0, 0},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LineLength != 60 || cfg.StrokeWidth != 4 || cfg.CornerRadius != 0 {
		t.Fatalf("drawing params not clamped: %+v", cfg)
	}
	if cfg.AnimationDelayMS != 10 {
		t.Fatalf("expected delay floor of 10ms, got %d", cfg.AnimationDelayMS)
	}
	want := []uint8{0, 255, 7, 0, 0, 0, 0, 0}
	for i, a := range cfg.LaserAlphaTable() {
		if a != want[i] {
			t.Fatalf("alpha[%d]=%d want %d", i, a, want[i])
		}
	}
	if cfg.WindowWidth != 960 || cfg.WindowHeight != 640 || cfg.LayerCacheSize != 8 {
		t.Fatalf("window defaults not applied: %+v", cfg)
	}

	short := DefaultConfig()
	short.LaserAlpha = []int{0, 255}
	if err := short.Validate(); !errors.Is(err, ErrLaserAlphaLength) {
		t.Fatalf("expected ErrLaserAlphaLength, got %v", err)
	}
	if len(short.LaserAlpha) != 8 || short.LaserAlpha[4] != 255 {
		t.Fatalf("short table not replaced: %v", short.LaserAlpha)
	}
	if n := len(short.LaserAlphaTable()); n != 8 {
		t.Fatalf("expected 8-step pulse, got %d", n)
	}
}

func TestValidate_BadConstraintsResetToDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Constraints.LandscapeWidth.Ratio = 2
	err := cfg.Validate()
	if !errors.Is(err, framing.ErrInvalidConstraint) {
		t.Fatalf("expected ErrInvalidConstraint, got %v", err)
	}
	if cfg.Constraints != framing.DefaultConstraints() {
		t.Fatalf("constraints not reset")
	}
}

func TestCalculatorFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SquarePortrait = false
	r, err := cfg.Calculator().Compute(1080, 1920, framing.Portrait)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if r.Dx() != 945 || r.Dy() != 720 {
		t.Fatalf("expected 945x720 got %dx%d", r.Dx(), r.Dy())
	}
}

func TestApplyFields(t *testing.T) {
	base := *DefaultConfig()
	got, rejected := ApplyFields(base, map[string]string{
		"line_length":     " 80 ",
		"stroke_width":    "2.5",
		"square_portrait": "no",
		"point_size":      "ten",
		"bogus":           "1",
	})
	if got.LineLength != 80 || got.StrokeWidth != 2.5 || got.SquarePortrait {
		t.Fatalf("fields not applied: %+v", got)
	}
	if got.PointSize != base.PointSize {
		t.Fatalf("rejected field must keep its value, got %d", got.PointSize)
	}
	if len(rejected) != 2 || rejected[0] != "bogus" || rejected[1] != "point_size" {
		t.Fatalf("unexpected rejected list %v", rejected)
	}
	if base.LineLength != 60 {
		t.Fatalf("input config must not change")
	}
}
