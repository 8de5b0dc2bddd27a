package assets

import (
	_ "embed"
	"fmt"
)

// PalettesJSON contains the raw light/dark palette presets.
//
//go:embed palettes.json
var PalettesJSON []byte

// Palettes returns the embedded palette presets, failing if the file is empty.
func Palettes() ([]byte, error) {
	if len(PalettesJSON) == 0 {
		return nil, fmt.Errorf("embedded palettes.json is empty")
	}
	return PalettesJSON, nil
}
