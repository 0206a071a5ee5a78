package adapters

import (
	"github.com/de-tools/sales-pulse/pkg/models/api"
	"github.com/de-tools/sales-pulse/pkg/models/domain"
)

func MapDashboardDomainToApi(d *domain.Dashboard) api.Dashboard {
	res := api.Dashboard{
		Range:       api.DateRange{Start: d.Range.Start, End: d.Range.End},
		Periods:     make([]api.PeriodSales, 0, len(d.Periods)),
		Products:    make([]api.ProductSales, 0, len(d.Products)),
		TopProducts: make([]api.ProductSales, 0, len(d.TopProducts)),
		Channels:    make([]api.ChannelPerformance, 0, len(d.Channels)),
		TopChannels: make([]api.ChannelPerformance, 0, len(d.TopChannels)),
		Summary: api.ChannelSummary{
			TotalSpend:   d.Summary.TotalSpend,
			TotalRevenue: d.Summary.TotalRevenue,
			OverallROAS:  d.Summary.OverallROAS,
		},
		Queries: d.Queries,
	}

	for _, p := range d.Periods {
		res.Periods = append(res.Periods, MapPeriodSalesDomainToApi(p))
	}
	for _, p := range d.Products {
		res.Products = append(res.Products, MapProductSalesDomainToApi(p))
	}
	for _, p := range d.TopProducts {
		res.TopProducts = append(res.TopProducts, MapProductSalesDomainToApi(p))
	}
	for _, c := range d.Channels {
		res.Channels = append(res.Channels, MapChannelPerformanceDomainToApi(c))
	}
	for _, c := range d.TopChannels {
		res.TopChannels = append(res.TopChannels, MapChannelPerformanceDomainToApi(c))
	}
	return res
}

func MapPeriodSalesDomainToApi(p domain.PeriodSales) api.PeriodSales {
	return api.PeriodSales{
		Month:             p.Month,
		TotalSales:        p.TotalSales,
		GrossProductSales: p.GrossProductSales,
		OrdersCount:       p.OrdersCount,
		AvgOrderValue:     p.AvgOrderValue,
		DiscountsReturns:  p.DiscountsReturns,
		SalesGrowth:       p.SalesGrowth,
		OrdersGrowth:      p.OrdersGrowth,
	}
}

func MapProductSalesDomainToApi(p domain.ProductSales) api.ProductSales {
	return api.ProductSales{
		ProductID:      p.ProductID,
		ProductName:    p.ProductName,
		TotalItemsSold: p.TotalItemsSold,
	}
}

func MapChannelPerformanceDomainToApi(c domain.ChannelPerformance) api.ChannelPerformance {
	return api.ChannelPerformance{
		Channel:      c.Channel,
		TotalSpend:   c.TotalSpend,
		TotalRevenue: c.TotalRevenue,
		ROAS:         c.ROAS,
		RevenueShare: c.RevenueShare,
	}
}
