package main

import (
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idLength   = 6
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func int64Ptr(v int64) *int64        { return &v }
func float64Ptr(v float64) *float64  { return &v }
func timePtr(v time.Time) *time.Time { return &v }

type placeholderCampaign struct {
	Name        string
	Description string
	Type        domain.CampaignType
	Objective   domain.CampaignObjective
	Status      domain.CampaignStatus
	Budget      float64
	Spent       float64
	StartOffset int // dias relativos a hoje
	Duration    int
	Impressions int64
	Clicks      int64
	Conversions int64
	Revenue     float64
	Tags        []string
}

var campaignList = []placeholderCampaign{
	{"Spring Product Launch", "Lançamento da nova linha", domain.CampaignTypeEmail, domain.CampaignObjectiveAwareness, domain.CampaignStatusActive, 12000, 4800, -10, 30, 180000, 5400, 320, 26000, []string{"launch", "q2"}},
	{"Retargeting Q2", "Visitantes sem conversão", domain.CampaignTypePPC, domain.CampaignObjectiveConversions, domain.CampaignStatusActive, 8000, 7900, -40, 35, 95000, 3800, 410, 31000, []string{"retargeting"}},
	{"Newsletter Maio", "", domain.CampaignTypeEmail, domain.CampaignObjectiveEngagement, domain.CampaignStatusCompleted, 1500, 1500, -60, 30, 42000, 2100, 95, 4200, []string{"newsletter"}},
	{"Black Friday Teaser", "Aquecimento para a Black Friday", domain.CampaignTypeSocialMedia, domain.CampaignObjectiveSales, domain.CampaignStatusScheduled, 25000, 0, 5, 20, 0, 0, 0, 0, []string{"bf", "q4"}},
	{"Lead Magnet Ebook", "Ebook de automação", domain.CampaignTypeContent, domain.CampaignObjectiveLeadGeneration, domain.CampaignStatusPaused, 4000, 1200, -20, 60, 30000, 900, 150, 0, []string{"ebook"}},
	{"SMS Reativação", "Clientes inativos há 90 dias", domain.CampaignTypeSMS, domain.CampaignObjectiveRetention, domain.CampaignStatusDraft, 600, 0, 0, 0, 0, 0, 0, 0, nil},
	{"Display Awareness", "", domain.CampaignTypeDisplay, domain.CampaignObjectiveAwareness, domain.CampaignStatusArchived, 3000, 2950, -120, 30, 510000, 1200, 12, 800, []string{"legacy"}},
	{"Omnichannel Holiday", "Campanha integrada de fim de ano", domain.CampaignTypeMultiChannel, domain.CampaignObjectiveSales, domain.CampaignStatusActive, 60000, 18000, -5, 45, 750000, 22000, 1800, 152000, []string{"holiday", "q4"}},
}

// placeholderCampaigns gera as campanhas de exemplo com datas relativas a now
func placeholderCampaigns(now time.Time) []domain.Campaign {
	today := now.Truncate(24 * time.Hour)
	campaigns := make([]domain.Campaign, 0, len(campaignList))

	for i, p := range campaignList {
		campaign := domain.Campaign{
			ID:          generateID(),
			Name:        p.Name,
			Description: p.Description,
			Type:        p.Type,
			Objective:   p.Objective,
			Status:      p.Status,
			Budget:      p.Budget,
			SpentBudget: p.Spent,
			Tags:        p.Tags,
			CreatedAt:   now.Add(-time.Duration(len(campaignList)-i) * time.Hour),
		}
		campaign.UpdatedAt = campaign.CreatedAt

		if p.Duration > 0 {
			start := today.AddDate(0, 0, p.StartOffset)
			campaign.StartDate = timePtr(start)
			campaign.EndDate = timePtr(start.AddDate(0, 0, p.Duration))
		}

		if p.Impressions > 0 {
			ctr := float64(p.Clicks) / float64(p.Impressions) * 100
			campaign.Performance = domain.CampaignPerformance{
				Impressions: int64Ptr(p.Impressions),
				Clicks:      int64Ptr(p.Clicks),
				Conversions: int64Ptr(p.Conversions),
				Revenue:     float64Ptr(p.Revenue),
				CTR:         float64Ptr(ctr),
			}
			if p.Clicks > 0 {
				campaign.Performance.ConversionRate = float64Ptr(float64(p.Conversions) / float64(p.Clicks) * 100)
			}
			if p.Spent > 0 {
				campaign.Performance.ROI = float64Ptr((p.Revenue - p.Spent) / p.Spent * 100)
			}
		}

		campaigns = append(campaigns, campaign)
	}

	return campaigns
}

// contactList inclui duplicados propositais por email, nome e domínio da empresa
var contactList = []domain.Contact{
	{FirstName: "Ana", LastName: "Silva", Email: "ana.silva@acme.com", Company: "Acme", JobTitle: "CMO", Source: "website", Status: "qualified", Priority: "high", Score: 82, Tags: []string{"vip"}},
	{FirstName: "Ana", LastName: "Silva", Email: "ANA.SILVA@acme.com", Phone: "+55 11 99999-0000", Source: "event", Status: "new", Priority: "medium", Score: 40, Tags: []string{"event-2024"}, Notes: "Conheceu a equipe no evento"},
	{FirstName: "Carlos", LastName: "Souza", Email: "carlos@globex.io", Company: "Globex", JobTitle: "Head of Growth", Source: "linkedin", Status: "contacted", Priority: "medium", Score: 55},
	{FirstName: "carlos", LastName: "souza", Email: "carlos.souza@gmail.com", Source: "import", Status: "new", Priority: "low", Score: 12},
	{FirstName: "Beatriz", LastName: "Lima", Email: "bia@initech.com", Company: "Initech", Source: "website", Status: "new", Priority: "low", Score: 20},
	{FirstName: "Diego", LastName: "Alves", Email: "diego@initech.com", Company: "Initech", JobTitle: "CTO", Source: "referral", Status: "qualified", Priority: "high", Score: 77, Tags: []string{"decision-maker"}},
	{FirstName: "Elisa", LastName: "Rocha", Email: "elisa.rocha@yahoo.com", Source: "website", Status: "new", Priority: "low", Score: 8},
	{FirstName: "Fábio", LastName: "Nunes", Email: "fabio@hotmail.com", Source: "ads", Status: "new", Priority: "low", Score: 15},
}

func placeholderContacts(now time.Time) []domain.Contact {
	contacts := make([]domain.Contact, 0, len(contactList))
	for i, c := range contactList {
		c.ID = uuid.NewString()
		c.CreatedAt = now.Add(-time.Duration(len(contactList)-i) * time.Hour)
		c.UpdatedAt = c.CreatedAt
		contacts = append(contacts, c)
	}
	return contacts
}
