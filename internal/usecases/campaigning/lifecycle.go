package campaigning

import (
	"fmt"
	"strings"
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
)

type Action string

const (
	ActionActivate Action = "activate"
	ActionPause    Action = "pause"
	ActionResume   Action = "resume"
	ActionArchive  Action = "archive"
	ActionComplete Action = "complete"
)

var allowedTransitions = map[Action]struct {
	from []domain.CampaignStatus
	to   domain.CampaignStatus
}{
	ActionActivate: {
		from: []domain.CampaignStatus{domain.CampaignStatusDraft, domain.CampaignStatusPaused, domain.CampaignStatusScheduled},
		to:   domain.CampaignStatusActive,
	},
	ActionPause: {
		from: []domain.CampaignStatus{domain.CampaignStatusActive},
		to:   domain.CampaignStatusPaused,
	},
	ActionResume: {
		from: []domain.CampaignStatus{domain.CampaignStatusPaused},
		to:   domain.CampaignStatusActive,
	},
	ActionArchive: {
		from: []domain.CampaignStatus{
			domain.CampaignStatusDraft,
			domain.CampaignStatusActive,
			domain.CampaignStatusPaused,
			domain.CampaignStatusCompleted,
			domain.CampaignStatusScheduled,
		},
		to: domain.CampaignStatusArchived,
	},
	ActionComplete: {
		from: []domain.CampaignStatus{domain.CampaignStatusActive},
		to:   domain.CampaignStatusCompleted,
	},
}

// Transition aplica a ação sobre uma cópia da campanha. A original nunca é alterada.
func Transition(campaign domain.Campaign, action Action, now time.Time) (domain.Campaign, error) {
	rule, ok := allowedTransitions[action]
	if !ok {
		return campaign, NewCampaignErrorWithID(ErrInvalidTransition, apiErrors.ErrInvalidTransition, campaign.ID,
			fmt.Sprintf("unknown action %q", action))
	}

	for _, from := range rule.from {
		if campaign.Status == from {
			campaign.Status = rule.to
			campaign.UpdatedAt = now
			return campaign, nil
		}
	}

	return campaign, NewCampaignErrorWithID(ErrInvalidTransition, apiErrors.ErrInvalidTransition, campaign.ID,
		fmt.Sprintf("cannot %s a campaign with status %s", action, campaign.Status))
}

// Duplicate cria um rascunho a partir de uma campanha existente, sem gastos nem métricas
func Duplicate(source domain.Campaign, id string, now time.Time) domain.Campaign {
	duplicate := source
	duplicate.ID = id
	duplicate.Name = source.Name + " (Copy)"
	duplicate.Status = domain.CampaignStatusDraft
	duplicate.SpentBudget = 0
	duplicate.Performance = domain.CampaignPerformance{}
	duplicate.Tags = append([]string(nil), source.Tags...)
	duplicate.CreatedAt = now
	duplicate.UpdatedAt = now
	return duplicate
}

// NewCampaign valida o payload de criação e monta a campanha inicial
func NewCampaign(req domain.CreateCampaignRequest, id string, now time.Time) (domain.Campaign, error) {
	req.Name = strings.TrimSpace(req.Name)

	switch {
	case req.Name == "":
		return domain.Campaign{}, NewCampaignError(ErrInvalidCampaign, apiErrors.ErrInvalidCampaignDef, "name is required")
	case !req.Type.IsValid():
		return domain.Campaign{}, NewCampaignError(ErrInvalidCampaign, apiErrors.ErrInvalidCampaignDef,
			fmt.Sprintf("invalid type %q", req.Type))
	case !req.Objective.IsValid():
		return domain.Campaign{}, NewCampaignError(ErrInvalidCampaign, apiErrors.ErrInvalidCampaignDef,
			fmt.Sprintf("invalid objective %q", req.Objective))
	case req.Budget < 0:
		return domain.Campaign{}, NewCampaignError(ErrInvalidCampaign, apiErrors.ErrInvalidCampaignDef, "budget must not be negative")
	case req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate):
		return domain.Campaign{}, NewCampaignError(ErrInvalidCampaign, apiErrors.ErrInvalidCampaignDef, "end date is before start date")
	}

	status := domain.CampaignStatusDraft
	if req.StartDate != nil && req.StartDate.After(now) {
		status = domain.CampaignStatusScheduled
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.Campaign{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Objective:   req.Objective,
		Status:      status,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// DueTransition indica a ação automática devida para a campanha no instante now:
// agendadas com início atingido são ativadas e ativas com término vencido são concluídas.
func DueTransition(campaign domain.Campaign, now time.Time) (Action, bool) {
	switch campaign.Status {
	case domain.CampaignStatusScheduled:
		if campaign.StartDate != nil && !campaign.StartDate.After(now) {
			return ActionActivate, true
		}
	case domain.CampaignStatusActive:
		if campaign.EndDate != nil && campaign.EndDate.Before(now) {
			return ActionComplete, true
		}
	}
	return "", false
}
