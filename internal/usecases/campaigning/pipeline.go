package campaigning

import (
	"cmp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/pkg/utils"
	"github.com/sirupsen/logrus"
)

// BuildDashboard aplica filtros e ordenação sobre a lista completa e calcula as
// métricas do portfólio. As métricas usam sempre a lista sem filtro, para que os
// totais do dashboard não mudem enquanto a lista visível é reduzida.
func BuildDashboard(campaigns []domain.Campaign, filters domain.CampaignFilters, sortBy domain.CampaignSort, now time.Time) domain.CampaignDashboard {
	filtered := FilterCampaigns(campaigns, filters, now)
	sorted := SortCampaigns(filtered, sortBy)

	return domain.CampaignDashboard{
		Campaigns: sorted,
		Metrics:   ComputeMetrics(campaigns),
		Total:     len(campaigns),
		Filtered:  len(sorted),
	}
}

type campaignPredicate func(c *domain.Campaign) bool

// FilterCampaigns retorna a subsequência que satisfaz todos os filtros ativos.
// A lista de entrada não é alterada.
func FilterCampaigns(campaigns []domain.Campaign, filters domain.CampaignFilters, now time.Time) []domain.Campaign {
	predicates := buildPredicates(filters, now)

	result := make([]domain.Campaign, 0, len(campaigns))
	for i := range campaigns {
		if matchesAll(&campaigns[i], predicates) {
			result = append(result, campaigns[i])
		}
	}

	return result
}

func matchesAll(c *domain.Campaign, predicates []campaignPredicate) bool {
	for _, predicate := range predicates {
		if !predicate(c) {
			return false
		}
	}
	return true
}

func buildPredicates(filters domain.CampaignFilters, now time.Time) []campaignPredicate {
	candidates := []campaignPredicate{
		statusPredicate(filters.Statuses),
		typePredicate(filters.Types),
		searchPredicate(filters.Search),
		dateRangePredicate(filters, now),
		budgetRangePredicate(filters.BudgetRange),
		performancePredicate(filters.Performance),
	}

	predicates := make([]campaignPredicate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate != nil {
			predicates = append(predicates, candidate)
		}
	}

	return predicates
}

func statusPredicate(statuses []domain.CampaignStatus) campaignPredicate {
	if len(statuses) == 0 {
		return nil
	}

	allowed := make(map[domain.CampaignStatus]struct{}, len(statuses))
	for _, status := range statuses {
		allowed[status] = struct{}{}
	}

	return func(c *domain.Campaign) bool {
		_, ok := allowed[c.Status]
		return ok
	}
}

func typePredicate(types []domain.CampaignType) campaignPredicate {
	if len(types) == 0 {
		return nil
	}

	allowed := make(map[domain.CampaignType]struct{}, len(types))
	for _, campaignType := range types {
		allowed[campaignType] = struct{}{}
	}

	return func(c *domain.Campaign) bool {
		_, ok := allowed[c.Type]
		return ok
	}
}

func searchPredicate(search string) campaignPredicate {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return nil
	}

	return func(c *domain.Campaign) bool {
		return strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Description), query) ||
			strings.Contains(strings.ToLower(c.ID), query)
	}
}

func dateRangePredicate(filters domain.CampaignFilters, now time.Time) campaignPredicate {
	var from, to *time.Time

	switch strings.ToLower(strings.TrimSpace(filters.DateRange)) {
	case "", domain.DateRangeAll:
		return nil
	case domain.DateRangeToday:
		start := utils.StartOfDay(now)
		from, to = &start, &now
	case domain.DateRangeLast7Days:
		start := now.AddDate(0, 0, -7)
		from, to = &start, &now
	case domain.DateRangeLast30Days:
		start := now.AddDate(0, 0, -30)
		from, to = &start, &now
	case domain.DateRangeCustom:
		var ok bool
		from, to, ok = parseCustomRange(filters.StartDate, filters.EndDate, now.Location())
		if !ok {
			logrus.WithFields(logrus.Fields{
				"start_date": filters.StartDate,
				"end_date":   filters.EndDate,
			}).Debug("campaigns: ignoring malformed custom date range")
			return nil
		}
	default:
		logrus.WithField("date_range", filters.DateRange).Debug("campaigns: ignoring unknown date range")
		return nil
	}

	return func(c *domain.Campaign) bool {
		if from != nil && c.CreatedAt.Before(*from) {
			return false
		}
		if to != nil && c.CreatedAt.After(*to) {
			return false
		}
		return true
	}
}

// parseCustomRange interpreta limites YYYY-MM-DD inclusivos; o limite final cobre o dia todo.
func parseCustomRange(startDate, endDate string, loc *time.Location) (*time.Time, *time.Time, bool) {
	from, err := utils.ParseDate(startDate, loc)
	if err != nil {
		return nil, nil, false
	}

	to, err := utils.ParseDate(endDate, loc)
	if err != nil {
		return nil, nil, false
	}

	if from == nil && to == nil {
		return nil, nil, false
	}

	if to != nil {
		end := utils.EndOfDay(*to)
		to = &end
	}

	if from != nil && to != nil && from.After(*to) {
		return nil, nil, false
	}

	return from, to, true
}

// ParseBudgetRange interpreta "min-max" (inclusivo), "min+" ou "min-" (sem limite superior).
func ParseBudgetRange(bucket string) (float64, *float64, bool) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return 0, nil, false
	}

	if strings.HasSuffix(bucket, "+") {
		lower, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(bucket, "+")), 64)
		if err != nil || lower < 0 {
			return 0, nil, false
		}
		return lower, nil, true
	}

	lowerStr, upperStr, found := strings.Cut(bucket, "-")
	if !found {
		return 0, nil, false
	}

	lower, err := strconv.ParseFloat(strings.TrimSpace(lowerStr), 64)
	if err != nil || lower < 0 {
		return 0, nil, false
	}

	upperStr = strings.TrimSpace(upperStr)
	if upperStr == "" {
		return lower, nil, true
	}

	upper, err := strconv.ParseFloat(upperStr, 64)
	if err != nil || upper < lower {
		return 0, nil, false
	}

	return lower, &upper, true
}

func budgetRangePredicate(bucket string) campaignPredicate {
	if strings.TrimSpace(bucket) == "" || strings.EqualFold(strings.TrimSpace(bucket), domain.BudgetRangeAll) {
		return nil
	}

	lower, upper, ok := ParseBudgetRange(bucket)
	if !ok {
		logrus.WithField("budget_range", bucket).Debug("campaigns: ignoring malformed budget range")
		return nil
	}

	return func(c *domain.Campaign) bool {
		if c.Budget < lower {
			return false
		}
		return upper == nil || c.Budget <= *upper
	}
}

func performancePredicate(bucket string) campaignPredicate {
	switch strings.ToLower(strings.TrimSpace(bucket)) {
	case "", domain.PerformanceAll:
		return nil
	case domain.PerformanceHighPerforming:
		return func(c *domain.Campaign) bool {
			return greaterThan(c.Performance.ROI, 200) || greaterThan(c.Performance.ConversionRate, 5)
		}
	case domain.PerformanceLowPerforming:
		return func(c *domain.Campaign) bool {
			return lessThan(c.Performance.ROI, 100) || lessThan(c.Performance.ConversionRate, 2)
		}
	case domain.PerformanceNeedsAttention:
		return func(c *domain.Campaign) bool {
			return lessThan(c.Performance.HealthScore, 70)
		}
	default:
		logrus.WithField("performance", bucket).Debug("campaigns: ignoring unknown performance bucket")
		return nil
	}
}

func greaterThan(value *float64, threshold float64) bool {
	return value != nil && *value > threshold
}

func lessThan(value *float64, threshold float64) bool {
	return value != nil && *value < threshold
}

type sortKind int

const (
	sortKindText sortKind = iota
	sortKindNumber
	sortKindTime
)

// sortKey guarda o valor de ordenação de um campo; present=false equivale a null
type sortKey struct {
	present bool
	kind    sortKind
	text    string
	number  float64
	when    time.Time
}

func textKey(s string) sortKey {
	return sortKey{present: true, kind: sortKindText, text: strings.ToLower(s)}
}

func numberKey(f float64) sortKey {
	return sortKey{present: true, kind: sortKindNumber, number: f}
}

func optionalNumberKey(f *float64) sortKey {
	if f == nil {
		return sortKey{kind: sortKindNumber}
	}
	return numberKey(*f)
}

func optionalCountKey(n *int64) sortKey {
	if n == nil {
		return sortKey{kind: sortKindNumber}
	}
	return numberKey(float64(*n))
}

func timeKey(t *time.Time) sortKey {
	if t == nil {
		return sortKey{kind: sortKindTime}
	}
	return sortKey{present: true, kind: sortKindTime, when: *t}
}

var sortExtractors = map[string]func(c *domain.Campaign) sortKey{
	"id":             func(c *domain.Campaign) sortKey { return textKey(c.ID) },
	"name":           func(c *domain.Campaign) sortKey { return textKey(c.Name) },
	"description":    func(c *domain.Campaign) sortKey { return textKey(c.Description) },
	"type":           func(c *domain.Campaign) sortKey { return textKey(string(c.Type)) },
	"objective":      func(c *domain.Campaign) sortKey { return textKey(string(c.Objective)) },
	"status":         func(c *domain.Campaign) sortKey { return textKey(string(c.Status)) },
	"budget":         func(c *domain.Campaign) sortKey { return numberKey(c.Budget) },
	"spentbudget":    func(c *domain.Campaign) sortKey { return numberKey(c.SpentBudget) },
	"startdate":      func(c *domain.Campaign) sortKey { return timeKey(c.StartDate) },
	"enddate":        func(c *domain.Campaign) sortKey { return timeKey(c.EndDate) },
	"createdat":      func(c *domain.Campaign) sortKey { return timeKey(&c.CreatedAt) },
	"updatedat":      func(c *domain.Campaign) sortKey { return timeKey(&c.UpdatedAt) },
	"impressions":    func(c *domain.Campaign) sortKey { return optionalCountKey(c.Performance.Impressions) },
	"clicks":         func(c *domain.Campaign) sortKey { return optionalCountKey(c.Performance.Clicks) },
	"conversions":    func(c *domain.Campaign) sortKey { return optionalCountKey(c.Performance.Conversions) },
	"revenue":        func(c *domain.Campaign) sortKey { return optionalNumberKey(c.Performance.Revenue) },
	"ctr":            func(c *domain.Campaign) sortKey { return optionalNumberKey(c.Performance.CTR) },
	"conversionrate": func(c *domain.Campaign) sortKey { return optionalNumberKey(c.Performance.ConversionRate) },
	"roi":            func(c *domain.Campaign) sortKey { return optionalNumberKey(c.Performance.ROI) },
	"healthscore":    func(c *domain.Campaign) sortKey { return optionalNumberKey(c.Performance.HealthScore) },
}

// normalizeSortField aceita snake_case e camelCase ("spent_budget", "spentBudget")
func normalizeSortField(field string) string {
	field = strings.TrimPrefix(strings.TrimSpace(field), "performance.")
	return strings.ToLower(strings.ReplaceAll(field, "_", ""))
}

// SortableFields lista os campos aceitos pela ordenação
func SortableFields() []string {
	fields := make([]string, 0, len(sortExtractors))
	for field := range sortExtractors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// SortCampaigns ordena de forma estável uma cópia da lista. Valores ausentes ficam
// no início em ordem ascendente e no fim em ordem descendente.
func SortCampaigns(campaigns []domain.Campaign, sortBy domain.CampaignSort) []domain.Campaign {
	sorted := make([]domain.Campaign, len(campaigns))
	copy(sorted, campaigns)

	if strings.TrimSpace(sortBy.Field) == "" {
		return sorted
	}

	extract, ok := sortExtractors[normalizeSortField(sortBy.Field)]
	if !ok {
		logrus.WithField("sort_field", sortBy.Field).Debug("campaigns: ignoring unknown sort field")
		return sorted
	}

	descending := strings.EqualFold(string(sortBy.Direction), string(domain.SortDescending))

	keys := make([]sortKey, len(sorted))
	for i := range sorted {
		keys[i] = extract(&sorted[i])
	}

	indexes := make([]int, len(sorted))
	for i := range indexes {
		indexes[i] = i
	}

	sort.SliceStable(indexes, func(i, j int) bool {
		result := compareSortKeys(keys[indexes[i]], keys[indexes[j]])
		if descending {
			result = -result
		}
		return result < 0
	})

	result := make([]domain.Campaign, len(sorted))
	for position, index := range indexes {
		result[position] = sorted[index]
	}

	return result
}

func compareSortKeys(a, b sortKey) int {
	switch {
	case !a.present && !b.present:
		return 0
	case !a.present:
		return -1
	case !b.present:
		return 1
	}

	switch a.kind {
	case sortKindText:
		return strings.Compare(a.text, b.text)
	case sortKindTime:
		return a.when.Compare(b.when)
	default:
		return cmp.Compare(a.number, b.number)
	}
}

// ComputeMetrics calcula os agregados do portfólio. As médias consideram apenas
// as campanhas que informam a métrica.
func ComputeMetrics(campaigns []domain.Campaign) domain.DashboardMetrics {
	metrics := domain.DashboardMetrics{
		TotalCampaigns: len(campaigns),
		CountsByStatus: make(map[domain.CampaignStatus]int, len(domain.CampaignStatuses)),
	}

	for _, status := range domain.CampaignStatuses {
		metrics.CountsByStatus[status] = 0
	}

	var (
		totalBudget, totalSpent, totalRevenue float64
		ctrSum, conversionRateSum, roiSum     float64
		ctrCount, conversionRateCount         int
		roiCount                              int
	)

	for i := range campaigns {
		c := &campaigns[i]

		metrics.CountsByStatus[c.Status]++
		if c.Status == domain.CampaignStatusActive {
			metrics.ActiveCampaigns++
		}

		totalBudget += c.Budget
		totalSpent += c.SpentBudget

		perf := c.Performance
		if perf.Revenue != nil {
			totalRevenue += *perf.Revenue
		}
		if perf.Impressions != nil {
			metrics.TotalImpressions += *perf.Impressions
		}
		if perf.Clicks != nil {
			metrics.TotalClicks += *perf.Clicks
		}
		if perf.Conversions != nil {
			metrics.TotalConversions += *perf.Conversions
		}
		if perf.CTR != nil {
			ctrSum += *perf.CTR
			ctrCount++
		}
		if perf.ConversionRate != nil {
			conversionRateSum += *perf.ConversionRate
			conversionRateCount++
		}
		if perf.ROI != nil {
			roiSum += *perf.ROI
			roiCount++
		}
	}

	metrics.TotalBudget = utils.RoundWithTwoDecimalPlace(totalBudget)
	metrics.TotalSpent = utils.RoundWithTwoDecimalPlace(totalSpent)
	metrics.TotalRevenue = utils.RoundWithTwoDecimalPlace(totalRevenue)
	metrics.BudgetUtilization = utils.Percentage(totalSpent, totalBudget)
	metrics.AverageCTR = utils.Average(ctrSum, ctrCount)
	metrics.AverageConversionRate = utils.Average(conversionRateSum, conversionRateCount)
	metrics.AverageROI = utils.Average(roiSum, roiCount)

	return metrics
}
