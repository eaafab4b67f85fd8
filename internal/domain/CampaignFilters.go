package domain

const (
	DateRangeAll        = "all"
	DateRangeToday      = "today"
	DateRangeLast7Days  = "last_7_days"
	DateRangeLast30Days = "last_30_days"
	DateRangeCustom     = "custom"
)

const (
	PerformanceAll            = "all"
	PerformanceHighPerforming = "high_performing"
	PerformanceLowPerforming  = "low_performing"
	PerformanceNeedsAttention = "needs_attention"
)

const BudgetRangeAll = "all"

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// CampaignFilters representa os filtros do dashboard de campanhas.
// Valores vazios (ou "all") desabilitam o filtro correspondente.
type CampaignFilters struct {
	Statuses    []CampaignStatus `json:"statuses"`
	Types       []CampaignType   `json:"types"`
	Search      string           `json:"search"`
	DateRange   string           `json:"date_range"`
	StartDate   string           `json:"start_date"` // YYYY-MM-DD, apenas para date_range=custom
	EndDate     string           `json:"end_date"`   // YYYY-MM-DD, apenas para date_range=custom
	BudgetRange string           `json:"budget_range"`
	Performance string           `json:"performance"`
}

type CampaignSort struct {
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
}

type DashboardMetrics struct {
	TotalCampaigns        int                    `json:"total_campaigns"`
	ActiveCampaigns       int                    `json:"active_campaigns"`
	CountsByStatus        map[CampaignStatus]int `json:"counts_by_status"`
	TotalBudget           float64                `json:"total_budget"`
	TotalSpent            float64                `json:"total_spent"`
	BudgetUtilization     float64                `json:"budget_utilization"`
	TotalRevenue          float64                `json:"total_revenue"`
	TotalImpressions      int64                  `json:"total_impressions"`
	TotalClicks           int64                  `json:"total_clicks"`
	TotalConversions      int64                  `json:"total_conversions"`
	AverageCTR            float64                `json:"average_ctr"`
	AverageConversionRate float64                `json:"average_conversion_rate"`
	AverageROI            float64                `json:"average_roi"`
}

// CampaignDashboard é o resultado do pipeline: a visão filtrada e as métricas do portfólio inteiro
type CampaignDashboard struct {
	Campaigns []Campaign       `json:"campaigns"`
	Metrics   DashboardMetrics `json:"metrics"`
	Total     int              `json:"total"`
	Filtered  int              `json:"filtered"`
}
