package rank

import (
	"testing"

	"github.com/de-tools/sales-pulse/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func channelRevenue(c domain.ChannelPerformance) float64 { return c.TotalRevenue }

func TestSortByDesc_StableTies(t *testing.T) {
	channels := []domain.ChannelPerformance{
		{Channel: "a", TotalRevenue: 100},
		{Channel: "b", TotalRevenue: 100},
		{Channel: "c", TotalRevenue: 50},
	}

	sorted := SortByDesc(channels, channelRevenue)
	top := TopN(sorted, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "a", top[0].Channel, "equal revenues keep original relative order")
	assert.Equal(t, "b", top[1].Channel)

	// The canonical sequence is untouched and totals still cover everything.
	assert.Equal(t, "a", channels[0].Channel)
	assert.InDelta(t, 250.0, SumBy(channels, channelRevenue), 1e-9)
}

func TestSortByDesc_DoesNotMutateInput(t *testing.T) {
	channels := []domain.ChannelPerformance{
		{Channel: "low", TotalRevenue: 1},
		{Channel: "high", TotalRevenue: 9},
	}

	_ = SortByDesc(channels, channelRevenue)

	assert.Equal(t, "low", channels[0].Channel)
}

func TestTopN(t *testing.T) {
	channels := []domain.ChannelPerformance{
		{Channel: "a"}, {Channel: "b"}, {Channel: "c"},
	}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "fewer than n returns all", n: 10, want: 3},
		{name: "exact", n: 3, want: 3},
		{name: "truncates", n: 2, want: 2},
		{name: "zero", n: 0, want: 0},
		{name: "negative treated as zero", n: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, TopN(channels, tt.n), tt.want)
		})
	}
}

func TestShares_SumTo100(t *testing.T) {
	channels := []domain.ChannelPerformance{
		{Channel: "search", TotalRevenue: 333.33},
		{Channel: "social", TotalRevenue: 120.5},
		{Channel: "email", TotalRevenue: 77.77},
		{Channel: "organic", TotalRevenue: 1042.4},
	}

	shares := Shares(channels, channelRevenue)
	require.Len(t, shares, len(channels))

	var sum float64
	for _, s := range shares {
		sum += s
	}
	assert.InDelta(t, 100.0, sum, 1e-6)
}

func TestShares_ZeroTotal(t *testing.T) {
	channels := []domain.ChannelPerformance{
		{Channel: "a", TotalRevenue: 0},
		{Channel: "b", TotalRevenue: 0},
	}

	shares := Shares(channels, channelRevenue)
	require.Len(t, shares, 2)
	assert.Zero(t, shares[0], "zero total yields all-zero shares, not NaN")
	assert.Zero(t, shares[1])
}

func TestSumBy_Empty(t *testing.T) {
	assert.Zero(t, SumBy(nil, channelRevenue))
}
