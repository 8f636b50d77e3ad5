package estimator

import (
	"github.com/bornholm/effortcalc/internal/model"
	"github.com/shopspring/decimal"
)

// AddWorkdays returns the date n workdays after start, skipping Saturdays and Sundays.
// The start date itself is never counted: the walk advances at least one day
// before checking. Holidays are not accounted for.
func AddWorkdays(start model.Date, n int) model.Date {
	d := start
	for remaining := n; remaining > 0; {
		d = d.AddDays(1)
		if !d.IsWeekend() {
			remaining--
		}
	}
	return d
}

// CeilPrecision rounds v up, towards positive infinity, to the given number
// of decimal places.
func CeilPrecision(v decimal.Decimal, places int32) decimal.Decimal {
	return v.RoundCeil(places)
}
