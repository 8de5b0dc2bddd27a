package view

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/soocke/viewfinder-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ParamsPanel is the form editing overlay drawing parameters. It writes back
// into *config.Config on ApplyChanges, persists it and notifies onApply.
type ParamsPanel interface {
	Build(parent *FrameWidget, startRow int) (endRow int)
	SetEditable(enabled bool)
	ApplyChanges()
}

type paramsPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onApply  func(*config.Config)
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by config json name
}

// NewParamsPanel creates the panel bound to cfg.
func NewParamsPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func(*config.Config)) ParamsPanel {
	return &paramsPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *paramsPanel) Build(parent *FrameWidget, startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(10))
		Grid(w, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("line_length", "Line Length", fmt.Sprintf("%d", c.LineLength))
	makeRow("stroke_width", "Stroke Width", formatFloat(c.StrokeWidth))
	makeRow("corner_radius", "Corner Radius", formatFloat(c.CornerRadius))
	makeRow("point_size", "Laser Margin", fmt.Sprintf("%d", c.PointSize))
	makeRow("animation_delay_ms", "Frame Delay (ms)", fmt.Sprintf("%d", c.AnimationDelayMS))
	makeRow("square_portrait", "Square Portrait", fmt.Sprintf("%t", c.SquarePortrait))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *paramsPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *paramsPanel) text(id string) (string, bool) {
	w := v.widgets[id]
	if w == nil {
		return "", false
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), "")), true
}

func (v *paramsPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	fields := make(map[string]string, len(v.widgets))
	for id := range v.widgets {
		if s, ok := v.text(id); ok {
			fields[id] = s
		}
	}
	cfg, rejected := config.ApplyFields(*v.cfg, fields)
	for _, id := range rejected {
		if v.logger != nil {
			v.logger.Warn("ignored invalid parameter", "field", id, "value", fields[id])
		}
	}
	if err := cfg.Validate(); err != nil {
		if v.logger != nil {
			v.logger.Error("parameters rejected", "error", err)
		}
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApply != nil {
		v.onApply(v.cfg)
	}
}

func formatFloat(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}
