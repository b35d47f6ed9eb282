package fincalc

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Rate is a periodic discount or yield rate expressed as a fraction
// (0.1 for 10%). It can be negative; standard discounting is only defined
// for rates above -1, where (1+r) stays positive.
type Rate float64

// Percent returns the rate as a display percentage.
func (r Rate) Percent() Percent { return Percent(100 * r) }

// Valid reports whether discounting at this rate is defined.
func (r Rate) Valid() bool { return r > -1 }

func (r Rate) String() string { return r.Percent().String() }
