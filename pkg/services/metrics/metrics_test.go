package metrics

import (
	"testing"

	"github.com/de-tools/sales-pulse/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 2.5, SafeDiv(5, 2))
	assert.Equal(t, 0.0, SafeDiv(5, 0), "zero denominator resolves to 0, never NaN or Inf")
	assert.Equal(t, 0.0, SafeDiv(0, 0))
}

func TestGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{name: "increase", current: 1200, previous: 1000, want: 20},
		{name: "decrease", current: 960, previous: 1000, want: -4},
		{name: "zero previous", current: 500, previous: 0, want: 0},
		{name: "flat", current: 1000, previous: 1000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Growth(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestEnrichPeriods(t *testing.T) {
	periods := []domain.PeriodSales{
		{Month: "2024-06", TotalSales: 1200, GrossProductSales: 1300, OrdersCount: 40},
		{Month: "2024-05", TotalSales: 1000, GrossProductSales: 1100, OrdersCount: 50},
		{Month: "2024-04", TotalSales: 800, GrossProductSales: 800, OrdersCount: 0},
	}

	enriched := EnrichPeriods(periods)
	require.Len(t, enriched, 3)

	june := enriched[0]
	assert.InDelta(t, 30.0, june.AvgOrderValue, 1e-9)
	assert.InDelta(t, 100.0, june.DiscountsReturns, 1e-9)
	assert.InDelta(t, 20.0, june.SalesGrowth, 1e-9, "1000 -> 1200 is +20%")
	assert.InDelta(t, -20.0, june.OrdersGrowth, 1e-9, "50 -> 40 is -20%")

	may := enriched[1]
	assert.InDelta(t, 25.0, may.SalesGrowth, 1e-9)
	assert.InDelta(t, 0.0, may.OrdersGrowth, 1e-9, "previous orders_count of 0 yields 0 growth")

	april := enriched[2]
	assert.Zero(t, april.SalesGrowth, "oldest period has no predecessor")
	assert.Zero(t, april.OrdersGrowth)
	assert.Zero(t, april.AvgOrderValue, "orders_count of 0 yields AOV of 0")
}

func TestEnrichPeriods_DoesNotMutateInput(t *testing.T) {
	periods := []domain.PeriodSales{
		{Month: "2024-06", TotalSales: 1200, OrdersCount: 40},
		{Month: "2024-05", TotalSales: 1000, OrdersCount: 50},
	}

	_ = EnrichPeriods(periods)

	assert.Zero(t, periods[0].AvgOrderValue)
	assert.Zero(t, periods[0].SalesGrowth)
}

func TestEnrichPeriods_Empty(t *testing.T) {
	assert.Empty(t, EnrichPeriods(nil))
	assert.Empty(t, EnrichPeriods([]domain.PeriodSales{}))
}

func TestEnrichChannels(t *testing.T) {
	channels := []domain.ChannelPerformance{
		{Channel: "search", TotalSpend: 200, TotalRevenue: 900},
		{Channel: "organic", TotalSpend: 0, TotalRevenue: 400},
	}

	enriched := EnrichChannels(channels)
	require.Len(t, enriched, 2)

	assert.InDelta(t, 4.5, enriched[0].ROAS, 1e-9)
	assert.Zero(t, enriched[1].ROAS, "zero spend yields ROAS of 0")
	assert.Zero(t, channels[0].ROAS, "input stays untouched")
}
