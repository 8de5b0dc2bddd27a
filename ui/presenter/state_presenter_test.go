package presenter

import (
	"testing"
	"time"

	"github.com/soocke/viewfinder-go/config"
	"github.com/soocke/viewfinder-go/domain/overlay"
	"github.com/soocke/viewfinder-go/ui/model"
	"github.com/soocke/viewfinder-go/ui/theme"
)

type labelView struct{ labels []string }

func (v *labelView) SetStateLabel(s string) { v.labels = append(v.labels, s) }

func TestStatePresenter_ShowsLatestOnly(t *testing.T) {
	view := &labelView{}
	p := NewStatePresenter(view)
	p.Tick(time.Now())
	if len(view.labels) != 1 || view.labels[0] != "State: uninitialized" {
		t.Fatalf("expected initial label, got %v", view.labels)
	}
	p.OnState(overlay.StateUninitialized, overlay.StateIdle)
	p.OnState(overlay.StateIdle, overlay.StateAnimating)
	p.Tick(time.Now())
	if got := view.labels[len(view.labels)-1]; got != "State: animating" || len(view.labels) != 2 {
		t.Fatalf("expected single Animating update, got %v", view.labels)
	}
	p.Tick(time.Now())
	if len(view.labels) != 2 {
		t.Fatalf("idle tick should not touch the view")
	}
}

func TestStatePresenter_FollowsRenderer(t *testing.T) {
	view := &labelView{}
	sp := NewStatePresenter(view)
	vf, sched := newViewfinder(t, &fakePreview{w: 400, h: 400})
	vf.Renderer().AddListener(sp.OnState)
	vf.Poll()
	sched.Run()
	sp.Tick(time.Now())
	if sp.Latest() != overlay.StateIdle {
		t.Fatalf("expected Idle, got %v", sp.Latest())
	}
	vf.Renderer().StartLaser()
	sp.Tick(time.Now())
	if sp.Latest() != overlay.StateAnimating {
		t.Fatalf("expected Animating, got %v", sp.Latest())
	}
	vf.Renderer().StopLaser()
}

type sessionView struct {
	session, total time.Duration
	scans          int
}

func (v *sessionView) SetSession(s, t time.Duration, n int) { v.session, v.total, v.scans = s, t, n }

func TestSessionPresenter_Tick(t *testing.T) {
	scan := &model.ScanModel{}
	view := &sessionView{}
	p := NewSessionPresenter(model.NewSessionModel(), scan, view)
	t0 := time.Unix(0, 0)
	scan.SetEnabled(true)
	p.Tick(t0)
	p.Tick(t0.Add(3 * time.Second))
	if view.session != 3*time.Second || view.scans != 1 {
		t.Fatalf("unexpected view values %+v", view)
	}
}

func TestLoop_TickPollsAndReschedules(t *testing.T) {
	view := &fakePreview{w: 400, h: 400}
	vf, _ := newViewfinder(t, view)
	scheduled := 0
	l := NewLoop(vf, NewStatePresenter(&labelView{}), nil, func() { scheduled++ })
	l.Tick()
	if w, h := vf.Viewport().Size(); w != 400 || h != 400 || scheduled != 1 {
		t.Fatalf("tick did not poll/reschedule: %dx%d scheduled=%d", w, h, scheduled)
	}
	var nilLoop *Loop
	nilLoop.Tick()
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.StrokeWidth = 7
	cfg.AnimationDelayMS = 120
	if err := theme.Load(); err != nil {
		t.Fatalf("theme: %v", err)
	}
	pal := theme.CurrentPalette()
	got := ParamsFromConfig(cfg, pal)
	if got.StrokeWidth != 7 || got.AnimationDelay != 120*time.Millisecond {
		t.Fatalf("config not applied: %+v", got)
	}
	if got.BorderColor != pal.Frame || got.MaskColor != pal.Mask {
		t.Fatalf("palette not applied: %+v", got)
	}
	def := ParamsFromConfig(nil, theme.PaletteSnapshot{})
	if def.BorderColor != overlay.DefaultParams().BorderColor {
		t.Fatalf("empty palette should keep stock colors")
	}

	short := config.DefaultConfig()
	short.LaserAlpha = []int{0, 255}
	if n := len(ParamsFromConfig(short, pal).LaserAlpha); n != 8 {
		t.Fatalf("expected 8-step pulse from a short table, got %d", n)
	}
}
