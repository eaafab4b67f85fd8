package campaigning

import (
	"context"
	"time"

	"github.com/digisolai/digisol.ai-sub002/infrastructure/repository"
	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
	"github.com/digisolai/digisol.ai-sub002/pkg/utils"
	"github.com/sirupsen/logrus"
)

type CampaignService interface {
	Dashboard(ctx context.Context, filters domain.CampaignFilters, sortBy domain.CampaignSort) (*domain.CampaignDashboard, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, request domain.CreateCampaignRequest) (*domain.Campaign, error)
	ApplyAction(ctx context.Context, id string, action Action) (*domain.Campaign, error)
	DuplicateCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
	SyncLifecycle(ctx context.Context) (*domain.LifecycleSyncResult, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	now                func() time.Time
	generateID         func() (string, error)
}

func NewService(campaignRepository repository.CampaignRepository) CampaignService {
	return &Service{
		campaignRepository: campaignRepository,
		now:                time.Now,
		generateID:         utils.GenerateID,
	}
}

func (s *Service) Dashboard(ctx context.Context, filters domain.CampaignFilters, sortBy domain.CampaignSort) (*domain.CampaignDashboard, error) {
	campaigns, err := s.campaignRepository.ListCampaigns(ctx)
	if err != nil {
		logrus.WithError(err).Error("campaigns: failed to list campaigns")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas")
	}

	dashboard := BuildDashboard(campaigns, filters, sortBy, s.now())
	return &dashboard, nil
}

func (s *Service) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	if id == "" {
		return nil, NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	campaign, err := s.campaignRepository.GetCampaignByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", id).Error("campaigns: failed to load campaign")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao consultar campanha")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, id, "")
	}

	return campaign, nil
}

func (s *Service) CreateCampaign(ctx context.Context, request domain.CreateCampaignRequest) (*domain.Campaign, error) {
	id, err := s.generateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	campaign, err := NewCampaign(request, id, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.campaignRepository.CreateCampaign(ctx, &campaign); err != nil {
		logrus.WithError(err).Error("campaigns: failed to create campaign")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar campanha")
	}

	logrus.WithFields(logrus.Fields{"campaign_id": campaign.ID, "status": campaign.Status}).Info("campaigns: campaign created")

	return &campaign, nil
}

func (s *Service) ApplyAction(ctx context.Context, id string, action Action) (*domain.Campaign, error) {
	current, err := s.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := Transition(*current, action, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.campaignRepository.UpdateCampaign(ctx, &updated); err != nil {
		logrus.WithError(err).WithField("campaign_id", id).Error("campaigns: failed to update status")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar campanha")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": id,
		"action":      action,
		"from":        current.Status,
		"to":          updated.Status,
	}).Info("campaigns: status changed")

	return &updated, nil
}

func (s *Service) DuplicateCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	source, err := s.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	newID, err := s.generateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	duplicate := Duplicate(*source, newID, s.now())
	if err := s.campaignRepository.CreateCampaign(ctx, &duplicate); err != nil {
		logrus.WithError(err).WithField("campaign_id", id).Error("campaigns: failed to duplicate campaign")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao duplicar campanha")
	}

	return &duplicate, nil
}

func (s *Service) DeleteCampaign(ctx context.Context, id string) error {
	if id == "" {
		return NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	deleted, err := s.campaignRepository.DeleteCampaign(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", id).Error("campaigns: failed to delete campaign")
		return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao remover campanha")
	}

	if !deleted {
		return NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, id, "")
	}

	return nil
}

// SyncLifecycle ativa as campanhas agendadas cujo início chegou e conclui as ativas vencidas.
// Falhas individuais são registradas e não interrompem as demais.
func (s *Service) SyncLifecycle(ctx context.Context) (*domain.LifecycleSyncResult, error) {
	campaigns, err := s.campaignRepository.ListCampaignsByStatus(ctx, []domain.CampaignStatus{
		domain.CampaignStatusScheduled,
		domain.CampaignStatusActive,
	})
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas para sincronização")
	}

	now := s.now()
	result := &domain.LifecycleSyncResult{Checked: len(campaigns)}

	for _, campaign := range campaigns {
		action, due := DueTransition(campaign, now)
		if !due {
			continue
		}

		updated, err := Transition(campaign, action, now)
		if err != nil {
			result.Failed++
			continue
		}

		if err := s.campaignRepository.UpdateCampaign(ctx, &updated); err != nil {
			logrus.WithError(err).WithField("campaign_id", campaign.ID).Error("campaigns: lifecycle update failed")
			result.Failed++
			continue
		}

		switch action {
		case ActionActivate:
			result.Activated++
		case ActionComplete:
			result.Completed++
		}
	}

	return result, nil
}
