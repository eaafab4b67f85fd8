package main

import (
	"strings"
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/campaigning"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newCampaignsCmd() *cobra.Command {
	campaignsCmd := &cobra.Command{
		Use:   "campaigns",
		Short: "Filter, sort and summarize campaigns from a JSON file",
	}

	campaignsCmd.AddCommand(newDashboardCmd())
	return campaignsCmd
}

func newDashboardCmd() *cobra.Command {
	var (
		file      string
		statuses  []string
		types     []string
		filters   domain.CampaignFilters
		sortField string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the filtered campaign list and portfolio metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			var campaigns []domain.Campaign
			if err := readJSONFile(file, &campaigns); err != nil {
				return err
			}

			for _, status := range statuses {
				filters.Statuses = append(filters.Statuses, domain.CampaignStatus(status))
			}
			for _, campaignType := range types {
				filters.Types = append(filters.Types, domain.CampaignType(campaignType))
			}

			dashboard := campaigning.BuildDashboard(campaigns, filters, domain.CampaignSort{
				Field:     sortField,
				Direction: domain.SortDirection(strings.ToLower(direction)),
			}, time.Now())

			logrus.WithFields(logrus.Fields{
				"total":    dashboard.Total,
				"filtered": dashboard.Filtered,
			}).Debug("campaignctl: dashboard built")

			return printJSON(cmd.OutOrStdout(), dashboard)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "", "JSON file with a campaign array")
	flags.StringSliceVar(&statuses, "status", nil, "statuses to keep (comma separated)")
	flags.StringSliceVar(&types, "type", nil, "campaign types to keep (comma separated)")
	flags.StringVar(&filters.Search, "search", "", "case-insensitive search on name, description or id")
	flags.StringVar(&filters.DateRange, "date-range", "", "all, today, last_7_days, last_30_days, custom")
	flags.StringVar(&filters.StartDate, "start-date", "", "custom range start (YYYY-MM-DD)")
	flags.StringVar(&filters.EndDate, "end-date", "", "custom range end (YYYY-MM-DD)")
	flags.StringVar(&filters.BudgetRange, "budget-range", "", "budget bucket, e.g. 1000-5000 or 50000+")
	flags.StringVar(&filters.Performance, "performance", "", "all, high_performing, low_performing, needs_attention")
	flags.StringVar(&sortField, "sort", "", "sort field: "+strings.Join(campaigning.SortableFields(), ", "))
	flags.StringVar(&direction, "direction", string(domain.SortAscending), "asc or desc")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
