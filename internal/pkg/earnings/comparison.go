package earnings

// ChangePercentage is the relative change from previous to current. A rise
// from zero reads as 100%.
func ChangePercentage(current, previous float64) float64 {
	if previous != 0 {
		return finite((current - previous) / previous * 100)
	}
	if current > 0 {
		return 100
	}
	return 0
}

// Changes holds period-over-period change percentages.
type Changes struct {
	TotalRevenue float64 `json:"total_revenue"`
	GrossIncome  float64 `json:"gross_income"`
	Tips         float64 `json:"tips"`
	Hours        float64 `json:"hours"`
	Sales        float64 `json:"sales"`
	TipOut       float64 `json:"tip_out"`
	Other        float64 `json:"other"`
}

func Compare(current, previous Stats) Changes {
	return Changes{
		TotalRevenue: ChangePercentage(current.TotalRevenue, previous.TotalRevenue),
		GrossIncome:  ChangePercentage(current.GrossIncome, previous.GrossIncome),
		Tips:         ChangePercentage(current.Tips, previous.Tips),
		Hours:        ChangePercentage(current.Hours, previous.Hours),
		Sales:        ChangePercentage(current.Sales, previous.Sales),
		TipOut:       ChangePercentage(current.TipOut, previous.TipOut),
		Other:        ChangePercentage(current.Other, previous.Other),
	}
}
