package models

import "time"

// DateLayout is the layout used for every date shown to the user.
const DateLayout = "2006-01-02"

// PurchaseRecord is one simulated monthly buy.
type PurchaseRecord struct {
	Date          time.Time
	Symbol        string
	Price         float64 // predicted price the shares were bought at
	GrowthPercent Percent // forecast growth that made the symbol win the month
	Shares        float64
}

// TrendPoint is the forecast growth of one symbol for one simulated month, whether
// the symbol was bought that month or not.
type TrendPoint struct {
	Date          time.Time
	Symbol        string
	GrowthPercent Percent
}
