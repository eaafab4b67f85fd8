package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/digisolai/digisol.ai-sub002/infrastructure/database/postgres"
	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const (
	contactsTable   = "contacts ct"
	contactsColumns = "ct.id, ct.first_name, ct.last_name, ct.email, ct.phone, ct.company, ct.job_title, " +
		"ct.source, ct.status, ct.priority, ct.score, ct.tags, ct.notes, " +
		"ct.ai_persona, ct.ai_activity_summary, ct.ai_next_action, ct.created_at, ct.updated_at"
)

type ContactRepository interface {
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	GetContactsByIDs(ctx context.Context, ids []string) ([]domain.Contact, error)
	// CommitMerge grava o registro mesclado e remove os duplicados em uma única transação
	CommitMerge(ctx context.Context, merged *domain.Contact, removedIDs []string) error
}

type contactRepository struct {
	conn *postgres.Connection
}

func NewContactRepository(conn *postgres.Connection) ContactRepository {
	return &contactRepository{
		conn: conn,
	}
}

func (r *contactRepository) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	return r.listContacts(ctx, nil)
}

func (r *contactRepository) GetContactsByIDs(ctx context.Context, ids []string) ([]domain.Contact, error) {
	if len(ids) == 0 {
		return []domain.Contact{}, nil
	}
	return r.listContacts(ctx, squirrel.Eq{"ct.id": ids})
}

func (r *contactRepository) listContacts(ctx context.Context, where squirrel.Sqlizer) ([]domain.Contact, error) {
	queryBuilder := squirrel.
		Select(contactsColumns).
		From(contactsTable).
		OrderBy("ct.created_at ASC").
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

	contacts := make([]domain.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear contato: %w", err)
		}
		contacts = append(contacts, *contact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return contacts, nil
}

func (r *contactRepository) CommitMerge(ctx context.Context, merged *domain.Contact, removedIDs []string) error {
	updateSQL, updateArgs, err := squirrel.
		Update("contacts").
		SetMap(map[string]any{
			"first_name": merged.FirstName,
			"last_name":  merged.LastName,
			"email":      merged.Email,
			"phone":      merged.Phone,
			"company":    merged.Company,
			"job_title":  merged.JobTitle,
			"source":     merged.Source,
			"status":     merged.Status,
			"priority":   merged.Priority,
			"score":      merged.Score,
			"tags":       pq.Array(merged.Tags),
			"notes":      merged.Notes,
			"updated_at": merged.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": merged.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	deleteSQL, deleteArgs, err := squirrel.
		Delete("contacts").
		Where(squirrel.Eq{"id": removedIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, updateSQL, updateArgs...)
		if err != nil {
			return fmt.Errorf("erro ao atualizar contato principal %s: %w", merged.ID, err)
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			return fmt.Errorf("contato principal %s não encontrado", merged.ID)
		}

		result, err = tx.ExecContext(ctx, deleteSQL, deleteArgs...)
		if err != nil {
			return fmt.Errorf("erro ao remover contatos duplicados: %w", err)
		}

		affected, _ := result.RowsAffected()
		logrus.WithFields(logrus.Fields{
			"master_id": merged.ID,
			"removed":   affected,
		}).Debug("contacts: merge committed")

		return nil
	})
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var (
		contact domain.Contact
		tags    pq.StringArray
	)

	if err := row.Scan(
		&contact.ID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.Phone,
		&contact.Company,
		&contact.JobTitle,
		&contact.Source,
		&contact.Status,
		&contact.Priority,
		&contact.Score,
		&tags,
		&contact.Notes,
		&contact.AIPersona,
		&contact.AIActivitySummary,
		&contact.AINextAction,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	); err != nil {
		return nil, err
	}

	contact.Tags = []string(tags)

	return &contact, nil
}
