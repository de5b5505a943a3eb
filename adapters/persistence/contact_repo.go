package persistence

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/network-os/internal/domain/contact"
	"github.com/khoahotran/network-os/pkg/apperror"
	"github.com/khoahotran/network-os/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const contactColumns = `
	id, name, role, company, location, email, avatar,
	warmth_score, priority_score, last_interaction, next_follow_up,
	tags, notes, category, industry, interests, expertise,
	mutual_connections, created_at, updated_at
`

func scanContact(row pgx.Row) (*contact.Contact, error) {
	c := &contact.Contact{}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Role,
		&c.Company,
		&c.Location,
		&c.Email,
		&c.Avatar,
		&c.WarmthScore,
		&c.PriorityScore,
		&c.LastInteraction,
		&c.NextFollowUp,
		&c.Tags,
		&c.Notes,
		&c.Category,
		&c.Industry,
		&c.Interests,
		&c.Expertise,
		&c.MutualConnections,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contact.ErrContactNotFound
		}
		return nil, apperror.NewInternal("failed to scan contact row", err)
	}
	return c, nil
}

func (r *postgresContactRepo) Create(ctx context.Context, c *contact.Contact) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
		INSERT INTO contacts (
			id, name, role, company, location, email, avatar,
			warmth_score, priority_score, last_interaction, next_follow_up,
			tags, notes, category, industry, interests, expertise,
			mutual_connections, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Role, c.Company, c.Location, c.Email, c.Avatar,
		c.WarmthScore, c.PriorityScore, c.LastInteraction, c.NextFollowUp,
		c.Tags, c.Notes, c.Category, c.Industry, c.Interests, c.Expertise,
		c.MutualConnections, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			email := ""
			if c.Email != nil {
				email = *c.Email
			}
			return apperror.NewConflict("contact", "email", email)
		}
		return apperror.NewInternal("failed to insert contact", err)
	}
	return nil
}

func (r *postgresContactRepo) GetByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	return scanContact(r.db.QueryRow(ctx, query, id))
}

func (r *postgresContactRepo) GetByEmail(ctx context.Context, email string) (*contact.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE lower(email) = lower($1)`
	return scanContact(r.db.QueryRow(ctx, query, email))
}

func (r *postgresContactRepo) List(ctx context.Context, filter contact.ListFilter) ([]*contact.Contact, error) {
	builder := psql.Select(
		"id", "name", "role", "company", "location", "email", "avatar",
		"warmth_score", "priority_score", "last_interaction", "next_follow_up",
		"tags", "notes", "category", "industry", "interests", "expertise",
		"mutual_connections", "created_at", "updated_at",
	).From("contacts").OrderBy("warmth_score DESC", "name ASC")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"role": pattern},
			sq.ILike{"company": pattern},
			sq.Expr("EXISTS (SELECT 1 FROM unnest(tags) t WHERE t ILIKE ?)", pattern),
		})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Industry != "" {
		builder = builder.Where(sq.Eq{"industry": filter.Industry})
	}
	if filter.Tag != "" {
		builder = builder.Where(sq.Expr("? = ANY(tags)", filter.Tag))
	}
	if filter.MinWarmth != nil {
		builder = builder.Where(sq.GtOrEq{"warmth_score": *filter.MinWarmth})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build contact list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to list contacts", err)
	}
	defer rows.Close()

	contacts := make([]*contact.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating contacts", err)
	}
	return contacts, nil
}

func (r *postgresContactRepo) Update(ctx context.Context, c *contact.Contact) error {
	c.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE contacts SET
			name = $2, role = $3, company = $4, location = $5, email = $6,
			avatar = $7, warmth_score = $8, priority_score = $9,
			last_interaction = $10, next_follow_up = $11, tags = $12,
			notes = $13, category = $14, industry = $15, interests = $16,
			expertise = $17, mutual_connections = $18, updated_at = $19
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Role, c.Company, c.Location, c.Email,
		c.Avatar, c.WarmthScore, c.PriorityScore,
		c.LastInteraction, c.NextFollowUp, c.Tags,
		c.Notes, c.Category, c.Industry, c.Interests,
		c.Expertise, c.MutualConnections, c.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update contact", err)
	}
	if tag.RowsAffected() == 0 {
		return contact.ErrContactNotFound
	}
	return nil
}

func (r *postgresContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete contact", err)
	}
	if tag.RowsAffected() == 0 {
		return contact.ErrContactNotFound
	}
	return nil
}
