package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/sales-pulse/pkg/models/domain"
)

type TableConfig struct {
	LabelWidth int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 28,
		ValueWidth: 14,
	}
}

// Reporter renders a dashboard snapshot as plain-text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(d *domain.Dashboard) error {
	funcMap := template.FuncMap{
		"row": func(label string, values ...any) string {
			cells := make([]string, 0, len(values)+1)
			cells = append(cells, fmt.Sprintf("| %-*s ", c.config.LabelWidth, label))
			for _, v := range values {
				cells = append(cells, fmt.Sprintf("| %*v ", c.config.ValueWidth, v))
			}
			return strings.Join(cells, "") + "|"
		},
		"separator": func(columns int) string {
			parts := make([]string, 0, columns+1)
			parts = append(parts, "+"+strings.Repeat("-", c.config.LabelWidth+2))
			for i := 0; i < columns; i++ {
				parts = append(parts, "+"+strings.Repeat("-", c.config.ValueWidth+2))
			}
			return strings.Join(parts, "") + "+"
		},
		"money":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"percent": func(v float64) string { return fmt.Sprintf("%+.1f%%", v) },
		"ratio":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}

	tmpl := `
Sales Pulse: {{.Range.Start.Format "2006-01-02"}} to {{.Range.End.Format "2006-01-02"}}

=== Monthly Sales ===
{{separator 4}}
{{row "Month" "Sales" "AOV" "Sales Gr." "Orders Gr."}}
{{separator 4}}
{{range .Periods}}{{row .Month (money .TotalSales) (money .AvgOrderValue) (percent .SalesGrowth) (percent .OrdersGrowth)}}
{{end}}{{separator 4}}

=== Top Products ===
{{separator 1}}
{{row "Product" "Items Sold"}}
{{separator 1}}
{{range .TopProducts}}{{row .ProductName (printf "%.0f" .TotalItemsSold)}}
{{end}}{{separator 1}}

=== Channels ===
{{separator 4}}
{{row "Channel" "Spend" "Revenue" "ROAS" "Share"}}
{{separator 4}}
{{range .TopChannels}}{{row .Channel (money .TotalSpend) (money .TotalRevenue) (ratio .ROAS) (printf "%.1f%%" .RevenueShare)}}
{{end}}{{separator 4}}

Total Spend: {{money .Summary.TotalSpend}}
Total Revenue: {{money .Summary.TotalRevenue}}
Overall ROAS: {{ratio .Summary.OverallROAS}}
`

	t, err := template.New("dashboard").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, d)
}
