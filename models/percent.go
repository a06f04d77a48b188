package models

import "fmt"

// Percent is a percentage value: 2.5 means 2.5%.
type Percent float64

// PercentFromFraction converts a fraction (0.025) into a Percent (2.5).
func PercentFromFraction(fraction float64) Percent {
	return Percent(fraction * 100)
}

// Equal compares two percents with a 0.0001 precision.
func (p Percent) Equal(q Percent) bool {
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

// SignedString always shows the sign, e.g. "+1.20%".
func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.2f%%", float64(p))
}
