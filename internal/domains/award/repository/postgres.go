package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"authorsite-backend/internal/domains/award"
)

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) award.Repository {
	return &postgresRepository{pool: pool}
}

const awardColumns = `id, title, issuing_body, year, description, image, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, a *award.Award) error {
	query := `
		INSERT INTO awards (id, title, issuing_body, year, description, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		a.ID, a.Title, a.IssuingBody, a.Year, a.Description, a.Image,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create award: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*award.Award, error) {
	query := fmt.Sprintf(`SELECT %s FROM awards WHERE id = $1`, awardColumns)

	var a award.Award
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.IssuingBody, &a.Year, &a.Description, &a.Image,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, award.ErrAwardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get award: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]award.Award, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM awards
		ORDER BY year DESC, created_at DESC
	`, awardColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	defer rows.Close()

	awards := make([]award.Award, 0)
	for rows.Next() {
		var a award.Award
		err := rows.Scan(
			&a.ID, &a.Title, &a.IssuingBody, &a.Year, &a.Description, &a.Image,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan award: %w", err)
		}
		awards = append(awards, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return awards, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *award.Award) error {
	query := `
		UPDATE awards
		SET title = $2, issuing_body = $3, year = $4, description = $5,
		    image = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		a.ID, a.Title, a.IssuingBody, a.Year, a.Description, a.Image,
	).Scan(&a.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return award.ErrAwardNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update award: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM awards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete award: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return award.ErrAwardNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM awards`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}
	return count, nil
}
