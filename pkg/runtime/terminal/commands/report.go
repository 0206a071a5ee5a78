package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/sales-pulse/pkg/models/domain"
	"github.com/de-tools/sales-pulse/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-pulse/pkg/services/dashboard"
	"github.com/de-tools/sales-pulse/pkg/store/analytics"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type ReportCmd struct {
	profilePath string
	startDate   string
	endDate     string
	topN        int
	reporter    *export.Reporter
}

func NewReportCmd(reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Fetch analytics and print the dashboard report",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.profilePath, "profile", "", "Path to the endpoint configuration profile")
	cmd.Flags().StringVar(&rc.startDate, "start", "", "Range start date (YYYY-MM-DD, default 180 days ago)")
	cmd.Flags().StringVar(&rc.endDate, "end", "", "Range end date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&rc.topN, "top", 10, "Number of products/channels to show")

	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	cfg, err := analytics.LoadConfig(rc.profilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile %q: %w", rc.profilePath, err)
	}

	dateRange, err := rc.parseRange()
	if err != nil {
		return err
	}

	svc := dashboard.NewService(
		analytics.NewClient(cfg),
		dashboard.WithTopProducts(rc.topN),
		dashboard.WithTopChannels(rc.topN),
	)

	d, err := svc.Refresh(ctx, dateRange)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	return rc.reporter.Handle(d)
}

func (rc *ReportCmd) parseRange() (domain.DateRange, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -180)

	if rc.startDate != "" {
		parsed, err := time.Parse(dateLayout, rc.startDate)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid start date %q: %w", rc.startDate, err)
		}
		start = parsed
	}
	if rc.endDate != "" {
		parsed, err := time.Parse(dateLayout, rc.endDate)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid end date %q: %w", rc.endDate, err)
		}
		end = parsed
	}
	if end.Before(start) {
		return domain.DateRange{}, fmt.Errorf("end date %s is before start date %s", rc.endDate, rc.startDate)
	}

	return domain.DateRange{Start: start, End: end}, nil
}
