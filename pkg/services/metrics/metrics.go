package metrics

import "github.com/de-tools/sales-pulse/pkg/models/domain"

// SafeDiv returns a/b, or 0 when the denominator is zero. Zero denominators
// are a data condition here (no orders, no spend), not an arithmetic error,
// so they never produce NaN or Inf.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Growth returns the signed percentage change from previous to current.
// A zero or missing previous value yields 0.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// EnrichPeriods returns a new slice with the derived per-month fields
// populated. The input is ordered most-recent-first, so the month at i+1 is
// the chronologically preceding one; the oldest month has no predecessor
// and keeps zero growth. The input slice is not modified.
func EnrichPeriods(periods []domain.PeriodSales) []domain.PeriodSales {
	enriched := make([]domain.PeriodSales, len(periods))
	for i, p := range periods {
		p.AvgOrderValue = SafeDiv(p.TotalSales, p.OrdersCount)
		p.DiscountsReturns = p.GrossProductSales - p.TotalSales
		if i+1 < len(periods) {
			prev := periods[i+1]
			p.SalesGrowth = Growth(p.TotalSales, prev.TotalSales)
			p.OrdersGrowth = Growth(p.OrdersCount, prev.OrdersCount)
		}
		enriched[i] = p
	}
	return enriched
}

// EnrichChannels returns a new slice with per-channel ROAS populated.
// Revenue shares are a cross-record aggregate and are assigned separately.
func EnrichChannels(channels []domain.ChannelPerformance) []domain.ChannelPerformance {
	enriched := make([]domain.ChannelPerformance, len(channels))
	for i, c := range channels {
		c.ROAS = SafeDiv(c.TotalRevenue, c.TotalSpend)
		enriched[i] = c
	}
	return enriched
}
