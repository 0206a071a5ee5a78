package domain

import "time"

type DateRange struct {
	Start time.Time
	End   time.Time
}

// Dashboard is one fetch cycle's snapshot. Periods, Products and Channels
// are the canonical enriched sequences in source row order; the Top views
// are derived from them and never carry extra derivation of their own.
type Dashboard struct {
	Range DateRange

	Periods     []PeriodSales
	Products    []ProductSales
	TopProducts []ProductSales
	Channels    []ChannelPerformance
	TopChannels []ChannelPerformance
	Summary     ChannelSummary

	// Queries holds the literal query texts, for display only.
	Queries []string

	Generation uint64
}
