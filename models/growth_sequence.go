package models

// GrowthSequence is the ordered list of month-over-month growth fractions observed
// in a price series (0.02 means +2%). It is immutable once created.
type GrowthSequence struct {
	rates []float64
}

// NewGrowthSequence copies rates into a new GrowthSequence.
func NewGrowthSequence(rates ...float64) GrowthSequence {
	return GrowthSequence{rates: append([]float64(nil), rates...)}
}

// Len returns the number of observed month boundaries.
func (gs GrowthSequence) Len() int { return len(gs.rates) }

// IsEmpty is true when no month boundary was observed.
func (gs GrowthSequence) IsEmpty() bool { return len(gs.rates) == 0 }

// At returns the i-th rate. It panics when i is out of range, like a slice would.
func (gs GrowthSequence) At(i int) float64 { return gs.rates[i] }

// Rates returns a copy of the rates.
func (gs GrowthSequence) Rates() []float64 { return append([]float64(nil), gs.rates...) }
