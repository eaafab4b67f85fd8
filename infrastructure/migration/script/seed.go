package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/digisolai/digisol.ai-sub002/infrastructure/database/postgres"
	"github.com/digisolai/digisol.ai-sub002/internal/config"
	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/pkg/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		lastname VARCHAR(120) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		role_id INTEGER NOT NULL,
		avatar_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id VARCHAR(32) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		type VARCHAR(32) NOT NULL,
		objective VARCHAR(32) NOT NULL,
		status VARCHAR(16) NOT NULL,
		budget NUMERIC(14,2) NOT NULL DEFAULT 0,
		spent_budget NUMERIC(14,2) NOT NULL DEFAULT 0,
		start_date TIMESTAMPTZ,
		end_date TIMESTAMPTZ,
		performance JSONB NOT NULL DEFAULT '{}',
		tags TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS campaigns_status_idx ON campaigns (status)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id VARCHAR(36) PRIMARY KEY,
		first_name VARCHAR(120) NOT NULL DEFAULT '',
		last_name VARCHAR(120) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(40) NOT NULL DEFAULT '',
		company VARCHAR(255) NOT NULL DEFAULT '',
		job_title VARCHAR(255) NOT NULL DEFAULT '',
		source VARCHAR(40) NOT NULL DEFAULT '',
		status VARCHAR(40) NOT NULL DEFAULT '',
		priority VARCHAR(16) NOT NULL DEFAULT '',
		score INTEGER NOT NULL DEFAULT 0,
		tags TEXT[] NOT NULL DEFAULT '{}',
		notes TEXT NOT NULL DEFAULT '',
		ai_persona TEXT NOT NULL DEFAULT '',
		ai_activity_summary TEXT NOT NULL DEFAULT '',
		ai_next_action TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for _, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	logrus.Info("seed: schema ready")
	return nil
}

func insertAdmin(ctx context.Context, tx *sql.Tx, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Insert("users").
		Columns("name", "lastname", "email", "password_hash", "active", "role_id").
		Values("Admin", "DigiSol", email, string(hash), true, domain.RoleAdmin).
		Suffix("ON CONFLICT (email) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	logrus.WithFields(logrus.Fields{"email": email, "created": affected > 0}).Info("seed: admin user")
	return nil
}

func insertCampaigns(ctx context.Context, tx *sql.Tx, campaigns []domain.Campaign) error {
	builder := squirrel.
		Insert("campaigns").
		Columns("id", "name", "description", "type", "objective", "status", "budget", "spent_budget",
			"start_date", "end_date", "performance", "tags", "created_at", "updated_at").
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range campaigns {
		performance, err := json.Marshal(c.Performance)
		if err != nil {
			return err
		}
		builder = builder.Values(c.ID, c.Name, c.Description, c.Type, c.Objective, c.Status, c.Budget,
			c.SpentBudget, c.StartDate, c.EndDate, performance, pq.Array(c.Tags), c.CreatedAt, c.UpdatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	logrus.WithField("inserted", affected).Info("seed: campaigns")
	return nil
}

func insertContacts(ctx context.Context, tx *sql.Tx, contacts []domain.Contact) error {
	builder := squirrel.
		Insert("contacts").
		Columns("id", "first_name", "last_name", "email", "phone", "company", "job_title", "source",
			"status", "priority", "score", "tags", "notes", "created_at", "updated_at").
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range contacts {
		builder = builder.Values(c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Company, c.JobTitle,
			c.Source, c.Status, c.Priority, c.Score, pq.Array(c.Tags), c.Notes, c.CreatedAt, c.UpdatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	logrus.WithField("inserted", affected).Info("seed: contacts")
	return nil
}

func main() {
	log.Configure("info")

	viper.SetDefault("SEED_ADMIN_EMAIL", "admin@digisol.ai")
	viper.SetDefault("SEED_ADMIN_PASSWORD", "admin123")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("seed: failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("seed: failed to connect to postgres")
	}
	defer conn.Close()

	startTime := time.Now()
	now := startTime.UTC()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}
		if err := insertAdmin(ctx, tx, viper.GetString("SEED_ADMIN_EMAIL"), viper.GetString("SEED_ADMIN_PASSWORD")); err != nil {
			return err
		}
		if err := insertCampaigns(ctx, tx, placeholderCampaigns(now)); err != nil {
			return err
		}
		return insertContacts(ctx, tx, placeholderContacts(now))
	})
	if err != nil {
		logrus.WithError(err).Fatal("seed: transaction rolled back")
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("seed: done")
}
