package material

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnknownPreset is returned by Preset for an unrecognized name.
var ErrUnknownPreset = errors.New("material: unknown preset")

// Gold returns a polished gold preset.
func Gold() PBR {
	return NewPBR(WithAlbedo(mgl64.Vec3{1.0, 0.766, 0.336}), WithMetallic(1), WithRoughness(0.3))
}

// Silver returns a polished silver preset.
func Silver() PBR {
	return NewPBR(WithAlbedo(mgl64.Vec3{0.972, 0.960, 0.915}), WithMetallic(1), WithRoughness(0.2))
}

// Copper returns a brushed copper preset.
func Copper() PBR {
	return NewPBR(WithAlbedo(mgl64.Vec3{0.955, 0.637, 0.538}), WithMetallic(1), WithRoughness(0.4))
}

// Plastic returns a gray dielectric preset.
func Plastic() PBR {
	return NewPBR(WithAlbedo(mgl64.Vec3{0.5, 0.5, 0.5}), WithMetallic(0), WithRoughness(0.5))
}

// Rubber returns a dark rough dielectric preset.
func Rubber() PBR {
	return NewPBR(WithAlbedo(mgl64.Vec3{0.1, 0.1, 0.1}), WithMetallic(0), WithRoughness(0.9))
}

// CarPaint returns a red paint preset with a clearcoat layer.
func CarPaint() PBR {
	return NewPBR(WithAlbedo(mgl64.Vec3{0.7, 0.1, 0.1}), WithRoughness(0.4),
		WithClearcoat(1.0, 0.03))
}

// LacqueredWood returns a wood preset with a clearcoat layer.
func LacqueredWood() PBR {
	return NewPBR(WithAlbedo(mgl64.Vec3{0.4, 0.2, 0.1}), WithRoughness(0.6),
		WithClearcoat(0.8, 0.1))
}

// WetPlastic returns a blue plastic preset with a thin clearcoat.
func WetPlastic() PBR {
	return NewPBR(WithAlbedo(mgl64.Vec3{0.2, 0.3, 0.8}), WithRoughness(0.3),
		WithClearcoat(0.5, 0.05))
}

// Wax returns a soft-scattering wax preset.
func Wax() PBR {
	return NewPBR(WithAlbedo(mgl64.Vec3{0.9, 0.85, 0.7}), WithRoughness(0.5),
		WithSoftScattering(0.8, mgl64.Vec3{1.0, 0.5, 0.2}, mgl64.Vec3{1.0, 0.9, 0.7}))
}

// Jade returns a soft-scattering jade preset.
func Jade() PBR {
	return NewPBR(WithAlbedo(mgl64.Vec3{0.3, 0.6, 0.4}), WithRoughness(0.3),
		WithSoftScattering(0.5, mgl64.Vec3{0.3, 0.8, 0.5}, mgl64.Vec3{0.4, 0.9, 0.6}))
}

// Skin returns a soft-scattering skin preset.
func Skin() PBR {
	return NewPBR(WithAlbedo(mgl64.Vec3{0.8, 0.6, 0.5}), WithRoughness(0.4),
		WithSoftScattering(0.7, mgl64.Vec3{1.0, 0.2, 0.1}, mgl64.Vec3{0.9, 0.5, 0.3}))
}

// Marble returns a soft-scattering marble preset.
func Marble() PBR {
	return NewPBR(WithAlbedo(mgl64.Vec3{0.9, 0.9, 0.85}), WithRoughness(0.2),
		WithSoftScattering(0.3, mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0.95, 0.95, 0.9}))
}

// presets lists the presets in display order.
var presets = []struct {
	name string
	fn   func() PBR
}{
	{"Gold", Gold},
	{"Silver", Silver},
	{"Copper", Copper},
	{"Plastic", Plastic},
	{"Rubber", Rubber},
	{"Car Paint", CarPaint},
	{"Lacquered Wood", LacqueredWood},
	{"Wet Plastic", WetPlastic},
	{"Wax", Wax},
	{"Jade", Jade},
	{"Skin", Skin},
	{"Marble", Marble},
	{"Custom", DefaultPBR},
}

// PresetNames returns the preset display names in order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}

// Preset returns a fresh copy of the named preset. Matching ignores case,
// spaces, hyphens and underscores, so "car-paint" finds "Car Paint".
func Preset(name string) (PBR, error) {
	key := presetKey(name)
	for _, p := range presets {
		if presetKey(p.name) != key {
			continue
		}
		return p.fn(), nil
	}
	return PBR{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func presetKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
