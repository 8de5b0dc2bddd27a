package presenter

import (
	"github.com/soocke/viewfinder-go/config"
	"github.com/soocke/viewfinder-go/domain/overlay"
	"github.com/soocke/viewfinder-go/ui/theme"
)

// ParamsFromConfig maps config values and the active palette onto overlay
// drawing parameters. Palette colors that failed to load fall back to the
// stock overlay colors.
func ParamsFromConfig(cfg *config.Config, pal theme.PaletteSnapshot) overlay.Params {
	p := overlay.DefaultParams()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	p.LineLength = cfg.LineLength
	p.StrokeWidth = cfg.StrokeWidth
	p.CornerRadius = cfg.CornerRadius
	p.PointSize = cfg.PointSize
	p.AnimationDelay = cfg.AnimationDelay()
	if len(cfg.LaserAlpha) == len(overlay.DefaultLaserAlpha) {
		p.LaserAlpha = cfg.LaserAlphaTable()
	}
	if pal.Mask.A != 0 {
		p.MaskColor = pal.Mask
	}
	if pal.Frame.A != 0 {
		p.BorderColor = pal.Frame
	}
	if pal.Laser.A != 0 {
		p.LaserColor = pal.Laser
	}
	return p
}
