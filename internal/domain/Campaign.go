package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "Draft"
	CampaignStatusActive    CampaignStatus = "Active"
	CampaignStatusPaused    CampaignStatus = "Paused"
	CampaignStatusCompleted CampaignStatus = "Completed"
	CampaignStatusArchived  CampaignStatus = "Archived"
	CampaignStatusScheduled CampaignStatus = "Scheduled"
)

// CampaignStatuses lista os status na ordem exibida no dashboard
var CampaignStatuses = []CampaignStatus{
	CampaignStatusDraft,
	CampaignStatusActive,
	CampaignStatusPaused,
	CampaignStatusCompleted,
	CampaignStatusArchived,
	CampaignStatusScheduled,
}

func (s CampaignStatus) IsValid() bool {
	for _, status := range CampaignStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type CampaignType string

const (
	CampaignTypeEmail        CampaignType = "email"
	CampaignTypeSMS          CampaignType = "sms"
	CampaignTypeSocialMedia  CampaignType = "social_media"
	CampaignTypePPC          CampaignType = "ppc"
	CampaignTypeContent      CampaignType = "content"
	CampaignTypeDisplay      CampaignType = "display"
	CampaignTypeMultiChannel CampaignType = "multi_channel"
)

var CampaignTypes = []CampaignType{
	CampaignTypeEmail,
	CampaignTypeSMS,
	CampaignTypeSocialMedia,
	CampaignTypePPC,
	CampaignTypeContent,
	CampaignTypeDisplay,
	CampaignTypeMultiChannel,
}

func (t CampaignType) IsValid() bool {
	for _, campaignType := range CampaignTypes {
		if t == campaignType {
			return true
		}
	}
	return false
}

type CampaignObjective string

const (
	CampaignObjectiveAwareness      CampaignObjective = "awareness"
	CampaignObjectiveEngagement     CampaignObjective = "engagement"
	CampaignObjectiveLeadGeneration CampaignObjective = "lead_generation"
	CampaignObjectiveConversions    CampaignObjective = "conversions"
	CampaignObjectiveRetention      CampaignObjective = "retention"
	CampaignObjectiveSales          CampaignObjective = "sales"
)

var CampaignObjectives = []CampaignObjective{
	CampaignObjectiveAwareness,
	CampaignObjectiveEngagement,
	CampaignObjectiveLeadGeneration,
	CampaignObjectiveConversions,
	CampaignObjectiveRetention,
	CampaignObjectiveSales,
}

func (o CampaignObjective) IsValid() bool {
	for _, objective := range CampaignObjectives {
		if o == objective {
			return true
		}
	}
	return false
}

// CampaignPerformance agrupa as métricas opcionais de uma campanha.
// Campos nil significam "não informado" e são tratados de forma diferente de zero.
type CampaignPerformance struct {
	Impressions    *int64   `json:"impressions,omitempty"`
	Clicks         *int64   `json:"clicks,omitempty"`
	Conversions    *int64   `json:"conversions,omitempty"`
	Revenue        *float64 `json:"revenue,omitempty"`
	CTR            *float64 `json:"ctr,omitempty"`
	ConversionRate *float64 `json:"conversion_rate,omitempty"`
	ROI            *float64 `json:"roi,omitempty"`
	HealthScore    *float64 `json:"health_score,omitempty"`
}

type Campaign struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Type        CampaignType        `json:"type"`
	Objective   CampaignObjective   `json:"objective"`
	Status      CampaignStatus      `json:"status"`
	Budget      float64             `json:"budget"`
	SpentBudget float64             `json:"spent_budget"`
	StartDate   *time.Time          `json:"start_date"`
	EndDate     *time.Time          `json:"end_date"`
	Performance CampaignPerformance `json:"performance"`
	Tags        []string            `json:"tags"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// CreateCampaignRequest é o payload final do formulário de criação em etapas
type CreateCampaignRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Type        CampaignType      `json:"type"`
	Objective   CampaignObjective `json:"objective"`
	Budget      float64           `json:"budget"`
	StartDate   *time.Time        `json:"start_date"`
	EndDate     *time.Time        `json:"end_date"`
	Tags        []string          `json:"tags"`
}

// LifecycleSyncResult resume uma execução da sincronização automática de status
type LifecycleSyncResult struct {
	Checked   int `json:"checked"`
	Activated int `json:"activated"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}
