package lights

import (
	"github.com/pdf/golifx/common"
	"github.com/scheerer/lifx-hue-report/internal/hue"
)

const defaultKelvin = 3500

type NamedColor struct {
	Name    string
	Degrees int
}

// Palette returns the named colors in display order.
func Palette() []NamedColor {
	return []NamedColor{
		{Name: "Red", Degrees: 0},
		{Name: "Orange", Degrees: 39},
		{Name: "Yellow", Degrees: 60},
		{Name: "Green", Degrees: 120},
		{Name: "Cyan", Degrees: 180},
		{Name: "Blue", Degrees: 240},
		{Name: "Purple", Degrees: 275},
		{Name: "Pink", Degrees: 350},
	}
}

func (c NamedColor) Hue() uint16 {
	return hue.ToU16(c.Degrees)
}

// LifxColor returns the fully saturated, full brightness HSBK for the color.
func (c NamedColor) LifxColor() common.Color {
	return common.Color{
		Hue:        c.Hue(),
		Saturation: 0xFFFF,
		Brightness: 0xFFFF,
		Kelvin:     defaultKelvin,
	}
}
