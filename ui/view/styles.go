package view

import (
	"github.com/soocke/viewfinder-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ApplyStyles (re)configures the semantic widget styles for pal.
func ApplyStyles(pal theme.PaletteSnapshot) {
	_ = ActivateTheme("azure light") // baseline metrics
	if pal.AppBg != "" {
		App.Configure(Background(pal.AppBg))
	}
	StyleConfigure(theme.StylePrimaryButton,
		Background(pal.Primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(theme.StyleDangerButton,
		Background(pal.Danger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(theme.StyleAccentLabel,
		Foreground(pal.Primary),
		Background(pal.Surface),
		Padding("2p 1p"),
	)
	StyleConfigure(theme.StyleStateLabel,
		Foreground(pal.Text),
		Background(pal.Accent),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
