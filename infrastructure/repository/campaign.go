package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/digisolai/digisol.ai-sub002/infrastructure/database/postgres"
	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	campaignsTable   = "campaigns c"
	campaignsColumns = "c.id, c.name, c.description, c.type, c.objective, c.status, c.budget, c.spent_budget, c.start_date, c.end_date, c.performance, c.tags, c.created_at, c.updated_at"
)

type CampaignRepository interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	ListCampaignsByStatus(ctx context.Context, statuses []domain.CampaignStatus) ([]domain.Campaign, error)
	GetCampaignByID(ctx context.Context, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, campaign *domain.Campaign) error
	UpdateCampaign(ctx context.Context, campaign *domain.Campaign) error
	DeleteCampaign(ctx context.Context, id string) (bool, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return r.listCampaigns(ctx, nil)
}

func (r *campaignRepository) ListCampaignsByStatus(ctx context.Context, statuses []domain.CampaignStatus) ([]domain.Campaign, error) {
	if len(statuses) == 0 {
		return []domain.Campaign{}, nil
	}

	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}

	return r.listCampaigns(ctx, squirrel.Eq{"c.status": values})
}

func (r *campaignRepository) listCampaigns(ctx context.Context, where squirrel.Sqlizer) ([]domain.Campaign, error) {
	queryBuilder := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	performance, err := json.Marshal(campaign.Performance)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas: %w", err)
	}

	query, args, err := squirrel.
		Insert("campaigns").
		Columns("id", "name", "description", "type", "objective", "status", "budget", "spent_budget",
			"start_date", "end_date", "performance", "tags", "created_at", "updated_at").
		Values(campaign.ID, campaign.Name, campaign.Description, campaign.Type, campaign.Objective,
			campaign.Status, campaign.Budget, campaign.SpentBudget, campaign.StartDate, campaign.EndDate,
			performance, pq.Array(campaign.Tags), campaign.CreatedAt, campaign.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir campanha: %w", err)
	}

	return nil
}

func (r *campaignRepository) UpdateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	performance, err := json.Marshal(campaign.Performance)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas: %w", err)
	}

	query, args, err := squirrel.
		Update("campaigns").
		SetMap(map[string]any{
			"name":         campaign.Name,
			"description":  campaign.Description,
			"type":         campaign.Type,
			"objective":    campaign.Objective,
			"status":       campaign.Status,
			"budget":       campaign.Budget,
			"spent_budget": campaign.SpentBudget,
			"start_date":   campaign.StartDate,
			"end_date":     campaign.EndDate,
			"performance":  performance,
			"tags":         pq.Array(campaign.Tags),
			"updated_at":   campaign.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": campaign.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar campanha %s: %w", campaign.ID, err)
	}

	return nil
}

func (r *campaignRepository) DeleteCampaign(ctx context.Context, id string) (bool, error) {
	query, args, err := squirrel.
		Delete("campaigns").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover campanha %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var (
		campaign    domain.Campaign
		startDate   sql.NullTime
		endDate     sql.NullTime
		performance []byte
		tags        pq.StringArray
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Description,
		&campaign.Type,
		&campaign.Objective,
		&campaign.Status,
		&campaign.Budget,
		&campaign.SpentBudget,
		&startDate,
		&endDate,
		&performance,
		&tags,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	if startDate.Valid {
		campaign.StartDate = &startDate.Time
	}
	if endDate.Valid {
		campaign.EndDate = &endDate.Time
	}

	if len(performance) > 0 {
		if err := json.Unmarshal(performance, &campaign.Performance); err != nil {
			return nil, fmt.Errorf("erro ao deserializar métricas: %w", err)
		}
	}

	campaign.Tags = []string(tags)
	campaign.CreatedAt = createdAt
	campaign.UpdatedAt = updatedAt

	return &campaign, nil
}
