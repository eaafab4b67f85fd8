package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/campaigning"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// ListCampaigns devolve a visão filtrada/ordenada e as métricas do portfólio completo
func ListCampaigns(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, sortBy := parseDashboardQuery(r.URL.Query())

		dashboard, err := service.Dashboard(r.Context(), filters, sortBy)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}

func parseDashboardQuery(query url.Values) (domain.CampaignFilters, domain.CampaignSort) {
	filters := domain.CampaignFilters{
		Search:      query.Get("search"),
		DateRange:   query.Get("date_range"),
		StartDate:   query.Get("start_date"),
		EndDate:     query.Get("end_date"),
		BudgetRange: query.Get("budget_range"),
		Performance: query.Get("performance"),
	}

	for _, status := range splitList(query["status"]) {
		filters.Statuses = append(filters.Statuses, domain.CampaignStatus(status))
	}
	for _, campaignType := range splitList(query["type"]) {
		filters.Types = append(filters.Types, domain.CampaignType(campaignType))
	}

	sortBy := domain.CampaignSort{
		Field:     query.Get("sort"),
		Direction: domain.SortDirection(strings.ToLower(query.Get("direction"))),
	}

	return filters, sortBy
}

// splitList aceita tanto ?status=a,b quanto ?status=a&status=b
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" && item != "all" {
				out = append(out, item)
			}
		}
	}
	return out
}

func CreateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCampaignRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), req)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar campanha")
			return
		}

		logrus.WithField("campaign_id", campaign.ID).Info("campaigns: campaign created")
		writeJSON(w, http.StatusCreated, campaign)
	}
}

func GetCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.GetCampaign(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao consultar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func DeleteCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteCampaign(r.Context(), id); err != nil {
			writeServiceError(w, err, "Erro ao remover campanha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// CampaignAction aplica uma transição de status (activate, pause, resume, archive)
func CampaignAction(service campaigning.CampaignService, action campaigning.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.ApplyAction(r.Context(), id, action)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar status da campanha")
			return
		}

		logrus.WithFields(logrus.Fields{
			"campaign_id": id,
			"action":      action,
			"status":      campaign.Status,
		}).Info("campaigns: status changed")

		writeJSON(w, http.StatusOK, campaign)
	}
}

func DuplicateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.DuplicateCampaign(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao duplicar campanha")
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}
