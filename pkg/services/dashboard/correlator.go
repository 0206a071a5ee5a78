package dashboard

import (
	"errors"
	"fmt"

	"github.com/de-tools/sales-pulse/pkg/models/domain"
	"github.com/de-tools/sales-pulse/pkg/models/store"
	"github.com/de-tools/sales-pulse/pkg/services/metrics"
	"github.com/de-tools/sales-pulse/pkg/services/rank"
	"github.com/de-tools/sales-pulse/pkg/services/tabular"
)

var (
	// ErrNoData is reported when the endpoint returns no tables, fewer
	// tables than queries, or a table with zero rows. It blocks the whole
	// cycle: no partially built dashboard is ever exposed.
	ErrNoData = errors.New("no data available")

	// ErrSchemaMismatch is reported when a table does not carry the column
	// set its query binds to, before any row is reconstructed.
	ErrSchemaMismatch = errors.New("dataset does not match expected schema")
)

// binding ties one submitted query to the schema its result must satisfy
// and the step that folds the reconstructed rows into the dashboard.
// Bindings are positional: result k answers query k.
type binding struct {
	query  string
	schema tabular.Schema
	apply  func(d *domain.Dashboard, t store.Table)
}

var bindings = []binding{
	{
		query: "SELECT month, total_sales, gross_product_sales, orders_count " +
			"FROM monthly_sales ORDER BY month DESC",
		schema: tabular.Schema{
			Name:    "monthly_sales",
			Columns: []string{"month", "total_sales", "gross_product_sales", "orders_count"},
		},
		apply: func(d *domain.Dashboard, t store.Table) {
			rows := tabular.Rows(t, func(r tabular.Row) domain.PeriodSales {
				return domain.PeriodSales{
					Month:             r.String("month"),
					TotalSales:        r.Float("total_sales"),
					GrossProductSales: r.Float("gross_product_sales"),
					OrdersCount:       r.Float("orders_count"),
				}
			})
			d.Periods = metrics.EnrichPeriods(rows)
		},
	},
	{
		query: "SELECT product_id, product_name, total_items_sold " +
			"FROM product_sales ORDER BY total_items_sold DESC",
		schema: tabular.Schema{
			Name:    "product_sales",
			Columns: []string{"product_id", "product_name", "total_items_sold"},
		},
		apply: func(d *domain.Dashboard, t store.Table) {
			d.Products = tabular.Rows(t, func(r tabular.Row) domain.ProductSales {
				return domain.ProductSales{
					ProductID:      r.String("product_id"),
					ProductName:    r.String("product_name"),
					TotalItemsSold: r.Float("total_items_sold"),
				}
			})
		},
	},
	{
		query: "SELECT channel, total_spend, total_revenue " +
			"FROM channel_performance",
		schema: tabular.Schema{
			Name:    "channel_performance",
			Columns: []string{"channel", "total_spend", "total_revenue"},
		},
		apply: func(d *domain.Dashboard, t store.Table) {
			rows := tabular.Rows(t, func(r tabular.Row) domain.ChannelPerformance {
				return domain.ChannelPerformance{
					Channel:      r.String("channel"),
					TotalSpend:   r.Float("total_spend"),
					TotalRevenue: r.Float("total_revenue"),
				}
			})
			d.Channels = metrics.EnrichChannels(rows)
		},
	},
}

// Queries returns the query texts in submission order, matching the order
// tables are expected back in.
func Queries() []string {
	queries := make([]string, 0, len(bindings))
	for _, b := range bindings {
		queries = append(queries, b.query)
	}
	return queries
}

// correlate checks each table against the query it answers and folds the
// rows into d. Any absent or empty dataset aborts the cycle before rows
// are bound, so downstream stages never see missing fields.
func correlate(d *domain.Dashboard, tables []store.Table) error {
	if len(tables) == 0 {
		return ErrNoData
	}

	for k, b := range bindings {
		if k >= len(tables) {
			return fmt.Errorf("dataset %q (query %d of %d) absent: %w",
				b.schema.Name, k+1, len(bindings), ErrNoData)
		}
		t := tables[k]
		if tabular.RowCount(t) == 0 {
			return fmt.Errorf("dataset %q is empty: %w", b.schema.Name, ErrNoData)
		}
		if err := b.schema.Validate(t); err != nil {
			return fmt.Errorf("%v: %w", err, ErrSchemaMismatch)
		}
		b.apply(d, t)
	}
	return nil
}

// summarize derives the ranked views and cross-channel aggregates from the
// canonical sequences. Totals and shares cover every channel, not just the
// ones a chart keeps.
func summarize(d *domain.Dashboard, topProducts, topChannels int) {
	shares := rank.Shares(d.Channels, channelRevenue)
	for i := range d.Channels {
		d.Channels[i].RevenueShare = shares[i]
	}

	totalSpend := rank.SumBy(d.Channels, func(c domain.ChannelPerformance) float64 { return c.TotalSpend })
	totalRevenue := rank.SumBy(d.Channels, channelRevenue)
	d.Summary = domain.ChannelSummary{
		TotalSpend:   totalSpend,
		TotalRevenue: totalRevenue,
		OverallROAS:  metrics.SafeDiv(totalRevenue, totalSpend),
	}

	d.TopProducts = rank.TopN(rank.SortByDesc(d.Products, productItemsSold), topProducts)
	d.TopChannels = rank.TopN(rank.SortByDesc(d.Channels, channelRevenue), topChannels)
}

func channelRevenue(c domain.ChannelPerformance) float64 { return c.TotalRevenue }

func productItemsSold(p domain.ProductSales) float64 { return p.TotalItemsSold }
