package domain

type ProductSales struct {
	ProductID      string
	ProductName    string
	TotalItemsSold float64
}

// PeriodSales is one calendar month of sales. Sequences are ordered
// most-recent-first; growth fields compare a month against the one after it
// in the slice (the chronologically preceding month).
type PeriodSales struct {
	Month             string
	TotalSales        float64
	GrossProductSales float64
	OrdersCount       float64

	// Derived
	AvgOrderValue    float64
	DiscountsReturns float64
	SalesGrowth      float64 // signed percentage
	OrdersGrowth     float64 // signed percentage
}

type ChannelPerformance struct {
	Channel      string
	TotalSpend   float64
	TotalRevenue float64

	// Derived
	ROAS         float64
	RevenueShare float64 // percentage of total revenue across all channels
}

// ChannelSummary aggregates the full channel sequence, including channels
// excluded from a chart's top-N.
type ChannelSummary struct {
	TotalSpend   float64
	TotalRevenue float64
	OverallROAS  float64
}
