package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/network-os/internal/domain/profile"
	"github.com/khoahotran/network-os/pkg/apperror"
	"github.com/khoahotran/network-os/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

// The service is single-user, so the profile lives in one fixed row.
const profileRowID = 1

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.UserProfile, error) {
	query := `
		SELECT first_name, last_name, headline, summary,
			current_company, current_role, industries, skills,
			work_history, updated_at
		FROM user_profile
		WHERE id = $1
	`
	p := &profile.UserProfile{}
	var workHistoryBytes []byte

	err := r.db.QueryRow(ctx, query, profileRowID).Scan(
		&p.FirstName,
		&p.LastName,
		&p.Headline,
		&p.Summary,
		&p.CurrentCompany,
		&p.CurrentRole,
		&p.Industries,
		&p.Skills,
		&workHistoryBytes,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, apperror.NewInternal("failed to query user profile", err)
	}

	if err := json.Unmarshal(workHistoryBytes, &p.WorkHistory); err != nil {
		r.logger.Warn("Failed to unmarshal work_history", zap.Error(err))
		p.WorkHistory = []profile.Position{}
	}
	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.UserProfile) error {
	workHistoryBytes, err := json.Marshal(p.WorkHistory)
	if err != nil {
		return apperror.NewInternal("failed to marshal work_history", err)
	}

	p.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO user_profile (
			id, first_name, last_name, headline, summary,
			current_company, current_role, industries, skills,
			work_history, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			headline = EXCLUDED.headline,
			summary = EXCLUDED.summary,
			current_company = EXCLUDED.current_company,
			current_role = EXCLUDED.current_role,
			industries = EXCLUDED.industries,
			skills = EXCLUDED.skills,
			work_history = EXCLUDED.work_history,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query,
		profileRowID, p.FirstName, p.LastName, p.Headline, p.Summary,
		p.CurrentCompany, p.CurrentRole, p.Industries, p.Skills,
		workHistoryBytes, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert user profile", err)
	}
	return nil
}
