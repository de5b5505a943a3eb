package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/network-os/internal/domain/nudge"
	"github.com/khoahotran/network-os/pkg/apperror"
	"github.com/khoahotran/network-os/pkg/logger"
)

type postgresNudgeRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresNudgeRepo(db *pgxpool.Pool, logger logger.Logger) nudge.Repository {
	return &postgresNudgeRepo{db: db, logger: logger}
}

func scanNudge(row pgx.Row) (*nudge.Nudge, error) {
	n := &nudge.Nudge{}
	err := row.Scan(&n.ID, &n.ContactID, &n.Type, &n.Message, &n.Priority, &n.Date, &n.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nudge.ErrNudgeNotFound
		}
		return nil, apperror.NewInternal("failed to scan nudge row", err)
	}
	return n, nil
}

func (r *postgresNudgeRepo) List(ctx context.Context) ([]*nudge.Nudge, error) {
	query := `
		SELECT id, contact_id, type, message, priority, date, status
		FROM nudges
		ORDER BY
			CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END,
			date DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to list nudges", err)
	}
	defer rows.Close()

	nudges := make([]*nudge.Nudge, 0)
	for rows.Next() {
		n, err := scanNudge(rows)
		if err != nil {
			return nil, err
		}
		nudges = append(nudges, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating nudges", err)
	}
	return nudges, nil
}

func (r *postgresNudgeRepo) Create(ctx context.Context, n *nudge.Nudge) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Date.IsZero() {
		n.Date = time.Now().UTC()
	}
	if n.Status == "" {
		n.Status = nudge.StatusPending
	}

	query := `
		INSERT INTO nudges (id, contact_id, type, message, priority, date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, n.ID, n.ContactID, n.Type, n.Message, n.Priority, n.Date, n.Status)
	if err != nil {
		return apperror.NewInternal("failed to insert nudge", err)
	}
	return nil
}

func (r *postgresNudgeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*nudge.Nudge, error) {
	query := `
		UPDATE nudges SET status = $2
		WHERE id = $1
		RETURNING id, contact_id, type, message, priority, date, status
	`
	return scanNudge(r.db.QueryRow(ctx, query, id, status))
}

func (r *postgresNudgeRepo) HasPending(ctx context.Context, contactID uuid.UUID, nudgeType string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM nudges
			WHERE contact_id = $1 AND type = $2 AND status = 'pending'
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, contactID, nudgeType).Scan(&exists); err != nil {
		return false, apperror.NewInternal("failed to check pending nudge", err)
	}
	return exists, nil
}
