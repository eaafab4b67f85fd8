package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/config"
	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// LifecycleSyncer aplica as transições de status vencidas das campanhas
type LifecycleSyncer interface {
	SyncLifecycle(ctx context.Context) (*domain.LifecycleSyncResult, error)
}

// CampaignLifecycleSyncConfig representa a configuração do agendador do ciclo de vida das campanhas
type CampaignLifecycleSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CampaignLifecycleSyncService ativa campanhas agendadas e conclui as vencidas periodicamente
type CampaignLifecycleSyncService struct {
	scheduler           *gocron.Scheduler
	config              CampaignLifecycleSyncConfig
	campaignService     LifecycleSyncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.LifecycleSyncResult
	lastError           string
}

func NewCampaignLifecycleSyncService(campaignService LifecycleSyncer, appConfig *config.Config) *CampaignLifecycleSyncService {
	syncConfig := CampaignLifecycleSyncConfig{
		CronSchedule: appConfig.CampaignLifecycleSync.CronSchedule,
		SyncEnabled:  appConfig.CampaignLifecycleSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("scheduler: campaign lifecycle sync configured")

	return &CampaignLifecycleSyncService{
		scheduler:       gocron.NewScheduler(time.Local),
		config:          syncConfig,
		campaignService: campaignService,
	}
}

// Start inicia o agendador e o encerra quando o contexto for cancelado
func (s *CampaignLifecycleSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: campaign lifecycle sync disabled")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting campaign lifecycle sync")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCampaignLifecycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do ciclo de vida das campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping campaign lifecycle sync")
		s.scheduler.Stop()
	}()

	return nil
}

// syncCampaignLifecycle executa uma rodada; rodadas nunca se sobrepõem
func (s *CampaignLifecycleSyncService) syncCampaignLifecycle(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: campaign lifecycle sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	result, err := s.campaignService.SyncLifecycle(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("scheduler: campaign lifecycle sync failed")
		return
	}

	s.lastError = ""
	s.lastResult = result
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"checked":   result.Checked,
		"activated": result.Activated,
		"completed": result.Completed,
		"failed":    result.Failed,
	}).Info("scheduler: campaign lifecycle sync finished")
}

// TriggerManualSync inicia uma rodada fora do agendamento; retorna false se já houver uma em andamento
func (s *CampaignLifecycleSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: campaign lifecycle sync already running, ignoring manual trigger")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("scheduler: manual campaign lifecycle sync requested")
	go s.syncCampaignLifecycle(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *CampaignLifecycleSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
		"last_error":             s.lastError,
	}
}
