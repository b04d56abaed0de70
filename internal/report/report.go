// Package report renders the comparison between the legacy 182.0 hue factor
// and 65536/360 for a fixed set of degrees and named colors.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scheerer/lifx-hue-report/internal/hue"
	"github.com/scheerer/lifx-hue-report/internal/lights"
	"github.com/scheerer/lifx-hue-report/internal/logging"
)

var logger = logging.New("report")

const ruleWidth = 50

var explanation = []string{
	"- This provides better rounding behavior and wrapping at 360 degrees",
	"- The difference is small but can accumulate in color transitions",
}

type Generator struct {
	Degrees []int
	Colors  []lights.NamedColor
}

func New() *Generator {
	return &Generator{
		Degrees: []int{0, 60, 120, 180, 240, 300, 360},
		Colors:  lights.Palette(),
	}
}

// Run writes the default report to w.
func Run(w io.Writer) error {
	return New().Write(w)
}

func (g *Generator) Write(w io.Writer) error {
	p := &printer{w: w}

	p.println("LIFX Color Conversion Factor Analysis")
	p.rule("=")

	p.printf("Original magic number: %s\n", decimal.NewFromFloat(hue.FactorLegacy).StringFixed(1))
	p.printf("65535 / 360 = %s\n", ratio(65535, 360).StringFixed(10))
	p.printf("65536 / 360 = %s\n", ratio(65536, 360).StringFixed(10))
	p.println("")

	p.println("Conversion comparison for various hue values:")
	p.rule("-")
	p.printf("%-10s %-15s %-20s %s\n", "Degrees", "Old (182.0)", "Correct (65536/360)", "Difference")
	p.rule("-")
	for _, d := range g.Degrees {
		c := hue.Compare(d)
		logger.With(
			zap.Int("degrees", c.Degrees),
			zap.Int("legacy", c.Legacy),
			zap.Uint16("correct", c.Correct),
			zap.Int("difference", c.Difference)).
			Debug("Compared hue factors")
		p.printf("%-10d %-15d %-20d %+d\n", c.Degrees, c.Legacy, c.Correct, c.Difference)
	}

	p.println("")
	p.println("Explanation:")
	p.printf("- The magic number 182.0 was an approximation of 65535/360 = %s...\n", ratio(65535, 360).Truncate(5))
	p.printf("- However, LIFX documentation recommends using 65536/360 = %s...\n", ratio(65536, 360).Truncate(5))
	for _, line := range explanation {
		p.println(line)
	}

	p.println("")
	p.println("Named colors in LIFX u16 format:")
	p.rule("-")
	for _, c := range g.Colors {
		lifxColor := c.LifxColor()
		logger.With(zap.String("name", c.Name), zap.Any("lifxColor", lifxColor)).
			Debug("Converted named color")
		p.printf("%-10s %3d° → %5d (0x%04X)\n", c.Name, c.Degrees, lifxColor.Hue, lifxColor.Hue)
	}

	if p.err != nil {
		return fmt.Errorf("write report: %w", p.err)
	}
	return nil
}

func ratio(num, den int64) decimal.Decimal {
	return decimal.NewFromInt(num).Div(decimal.NewFromInt(den))
}

// printer stops writing after the first error and keeps it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}

func (p *printer) rule(ch string) {
	p.println(strings.Repeat(ch, ruleWidth))
}
