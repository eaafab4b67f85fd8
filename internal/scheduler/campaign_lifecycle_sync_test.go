package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/digisolai/digisol.ai-sub002/infrastructure/repository/mocks"
	"github.com/digisolai/digisol.ai-sub002/internal/config"
	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/campaigning"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type blockingSyncer struct {
	calls   atomic.Int32
	release chan struct{}
	result  *domain.LifecycleSyncResult
	err     error
}

func (b *blockingSyncer) SyncLifecycle(ctx context.Context) (*domain.LifecycleSyncResult, error) {
	b.calls.Add(1)
	if b.release != nil {
		<-b.release
	}
	return b.result, b.err
}

func newLifecycleConfig(enabled bool) *config.Config {
	return &config.Config{
		CampaignLifecycleSync: config.CampaignLifecycleSync{
			CronSchedule: "*/5 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestCampaignLifecycleSyncService_RecordsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	past := time.Now().Add(-time.Hour)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockCampaignRepo.EXPECT().
		ListCampaignsByStatus(gomock.Any(), gomock.Any()).
		Return([]domain.Campaign{
			{ID: "cmp-1", Status: domain.CampaignStatusScheduled, StartDate: &past},
			{ID: "cmp-2", Status: domain.CampaignStatusActive, EndDate: &past},
		}, nil)
	mockCampaignRepo.EXPECT().UpdateCampaign(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	service := NewCampaignLifecycleSyncService(campaigning.NewService(mockCampaignRepo), newLifecycleConfig(true))
	service.syncCampaignLifecycle(context.Background())

	status := service.GetStatus()
	result, ok := status["last_result"].(*domain.LifecycleSyncResult)
	require.True(t, ok)
	assert.Equal(t, 2, result.Checked)
	assert.Equal(t, 1, result.Activated)
	assert.Equal(t, 1, result.Completed)
	assert.Equal(t, "", status["last_error"])
	assert.False(t, status["sync_running"].(bool))
}

func TestCampaignLifecycleSyncService_RecordsError(t *testing.T) {
	syncer := &blockingSyncer{err: errors.New("db down")}
	service := NewCampaignLifecycleSyncService(syncer, newLifecycleConfig(true))

	service.syncCampaignLifecycle(context.Background())

	status := service.GetStatus()
	assert.Equal(t, "db down", status["last_error"])
	assert.Nil(t, status["last_result"])
}

func TestCampaignLifecycleSyncService_RunsNeverOverlap(t *testing.T) {
	syncer := &blockingSyncer{release: make(chan struct{}), result: &domain.LifecycleSyncResult{}}
	service := NewCampaignLifecycleSyncService(syncer, newLifecycleConfig(true))

	require.True(t, service.TriggerManualSync())
	require.Eventually(t, func() bool { return syncer.calls.Load() == 1 }, time.Second, 10*time.Millisecond)

	assert.False(t, service.TriggerManualSync())
	service.syncCampaignLifecycle(context.Background())
	assert.Equal(t, int32(1), syncer.calls.Load())

	close(syncer.release)
	require.Eventually(t, func() bool {
		return !service.GetStatus()["sync_running"].(bool)
	}, time.Second, 10*time.Millisecond)
}

func TestCampaignLifecycleSyncService_StartDisabled(t *testing.T) {
	syncer := &blockingSyncer{}
	service := NewCampaignLifecycleSyncService(syncer, newLifecycleConfig(false))

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, 0, len(service.scheduler.Jobs()))
}

func TestCampaignLifecycleSyncService_StartRejectsInvalidCron(t *testing.T) {
	cfg := newLifecycleConfig(true)
	cfg.CampaignLifecycleSync.CronSchedule = "not a cron"
	service := NewCampaignLifecycleSyncService(&blockingSyncer{}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
