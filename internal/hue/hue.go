package hue

// LIFX encodes hue as a u16 where 0x10000 is a full turn of the color wheel.
const (
	// FactorLegacy is the hand-rounded multiplier older code used for degrees -> u16.
	FactorLegacy = 182.0
	// Factor65535 is what FactorLegacy approximates.
	Factor65535 = 65535.0 / 360
	// FactorCorrect is the multiplier recommended by the LIFX LAN protocol docs.
	FactorCorrect = 65536.0 / 360

	wrap = 65536
)

type Comparison struct {
	Degrees    int
	Legacy     int
	Correct    uint16
	Difference int
}

// Legacy converts degrees with FactorLegacy, truncating toward zero.
func Legacy(degrees int) int {
	return int(float64(degrees) * FactorLegacy)
}

// ToU16 converts degrees with FactorCorrect. The product is truncated first and
// the integer is then wrapped into [0, 65535], so 360 maps back to 0.
func ToU16(degrees int) uint16 {
	v := int64(float64(degrees)*FactorCorrect) % wrap
	if v < 0 {
		v += wrap
	}
	return uint16(v)
}

func Compare(degrees int) Comparison {
	legacy := Legacy(degrees)
	correct := ToU16(degrees)
	return Comparison{
		Degrees:    degrees,
		Legacy:     legacy,
		Correct:    correct,
		Difference: int(correct) - legacy,
	}
}
