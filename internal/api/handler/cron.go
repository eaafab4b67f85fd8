package handler

import (
	"net/http"

	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCampaignLifecycle = "campaign-lifecycle"
	CronJobTypeAll               = "all"
)

// ManualSyncer é um agendador que pode ser disparado fora do horário
type ManualSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CampaignLifecycleSyncService ManualSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCampaignLifecycle, CronJobTypeAll:
			if services.CampaignLifecycleSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de ciclo de vida das campanhas não disponível", nil)
				return
			}

			started := services.CampaignLifecycleSyncService.TriggerManualSync()
			logrus.WithFields(logrus.Fields{
				"type":    cronType,
				"started": started,
			}).Info("cron: manual run requested")

			message := "Cron job iniciada com sucesso"
			if !started {
				message = "Cron job já está em execução"
			}

			writeJSON(w, http.StatusAccepted, map[string]any{
				"message": message,
				"type":    cronType,
				"started": started,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: campaign-lifecycle, all", nil)
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.CampaignLifecycleSyncService != nil {
			status[CronJobTypeCampaignLifecycle] = services.CampaignLifecycleSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
