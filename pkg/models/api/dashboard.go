package api

import "time"

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ProductSales struct {
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	TotalItemsSold float64 `json:"total_items_sold"`
}

type PeriodSales struct {
	Month             string  `json:"month"`
	TotalSales        float64 `json:"total_sales"`
	GrossProductSales float64 `json:"gross_product_sales"`
	OrdersCount       float64 `json:"orders_count"`
	AvgOrderValue     float64 `json:"avg_order_value"`
	DiscountsReturns  float64 `json:"discounts_returns"`
	SalesGrowth       float64 `json:"sales_growth"`
	OrdersGrowth      float64 `json:"orders_growth"`
}

type ChannelPerformance struct {
	Channel      string  `json:"channel"`
	TotalSpend   float64 `json:"total_spend"`
	TotalRevenue float64 `json:"total_revenue"`
	ROAS         float64 `json:"roas"`
	RevenueShare float64 `json:"revenue_share"`
}

type ChannelSummary struct {
	TotalSpend   float64 `json:"total_spend"`
	TotalRevenue float64 `json:"total_revenue"`
	OverallROAS  float64 `json:"overall_roas"`
}

type Dashboard struct {
	Range       DateRange            `json:"range"`
	Periods     []PeriodSales        `json:"periods"`
	Products    []ProductSales       `json:"products"`
	TopProducts []ProductSales       `json:"top_products"`
	Channels    []ChannelPerformance `json:"channels"`
	TopChannels []ChannelPerformance `json:"top_channels"`
	Summary     ChannelSummary       `json:"channel_summary"`
	Queries     []string             `json:"queries,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}
