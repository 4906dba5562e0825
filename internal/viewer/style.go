// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package viewer holds the browser-side presentation: 3Dmol.js style
// objects for the supported color schemes and the HTML viewer page.
package viewer

import (
	"errors"
	"fmt"
	"strings"
)

// Color schemes accepted by Style.
const (
	SchemeLDDT    = "lDDT"
	SchemeRainbow = "rainbow"
)

// ErrUnknownScheme is returned for color schemes other than lDDT and rainbow.
var ErrUnknownScheme = errors.New("unknown color scheme")

// Style returns the 3Dmol.js setStyle argument for scheme. lDDT colors the
// cartoon by per-residue confidence, which AlphaFold stores in the B-factor
// column. Scheme names are case-insensitive.
func Style(scheme string) (map[string]any, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", strings.ToLower(SchemeLDDT):
		return map[string]any{
			"cartoon": map[string]any{
				"colorscheme": map[string]any{
					"prop":     "b",
					"gradient": "roygb",
					"min":      50,
					"max":      90,
				},
			},
		}, nil
	case SchemeRainbow:
		return map[string]any{
			"cartoon": map[string]any{"color": "spectrum"},
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
}

// Schemes lists the supported color schemes.
func Schemes() []string {
	return []string{SchemeLDDT, SchemeRainbow}
}
