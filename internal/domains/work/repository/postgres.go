package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"authorsite-backend/internal/domains/work"
)

const uniqueViolation = "23505"

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) work.Repository {
	return &postgresRepository{pool: pool}
}

const workColumns = `id, title, slug, content, excerpt, category, tags, language, status,
		featured, featured_image, created_at, updated_at`

func scanWork(row pgx.Row) (*work.Work, error) {
	var w work.Work
	err := row.Scan(
		&w.ID, &w.Title, &w.Slug, &w.Content, &w.Excerpt, &w.Category, pq.Array(&w.Tags),
		&w.Language, &w.Status, &w.Featured, &w.FeaturedImage, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *postgresRepository) Create(ctx context.Context, w *work.Work) error {
	query := `
		INSERT INTO works (id, title, slug, content, excerpt, category, tags, language, status, featured, featured_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		w.ID, w.Title, w.Slug, w.Content, w.Excerpt, w.Category, pq.Array(w.Tags),
		w.Language, w.Status, w.Featured, w.FeaturedImage,
	).Scan(&w.CreatedAt, &w.UpdatedAt)

	if err != nil {
		// The unique index on slug is the authority; a collision must fail
		// distinctly from other validation errors.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return work.ErrSlugAlreadyExists
		}
		return fmt.Errorf("failed to create work: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*work.Work, error) {
	query := fmt.Sprintf(`SELECT %s FROM works WHERE id = $1`, workColumns)

	w, err := scanWork(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, work.ErrWorkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work: %w", err)
	}
	return w, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*work.Work, error) {
	query := fmt.Sprintf(`SELECT %s FROM works WHERE slug = $1`, workColumns)

	w, err := scanWork(r.pool.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, work.ErrWorkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work by slug: %w", err)
	}
	return w, nil
}

func (r *postgresRepository) List(ctx context.Context, filter work.Filter) ([]work.Work, error) {
	whereClause, args := buildWhereClause(filter)

	query := fmt.Sprintf(`
		SELECT %s
		FROM works w
		WHERE %s
		ORDER BY w.created_at DESC
	`, workColumns, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	defer rows.Close()

	return collectWorks(rows)
}

func (r *postgresRepository) ListFeatured(ctx context.Context, limit int) ([]work.Work, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM works w
		WHERE w.status = 'published' AND w.featured = true
		ORDER BY w.created_at DESC
		LIMIT $1
	`, workColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("featured query failed: %w", err)
	}
	defer rows.Close()

	return collectWorks(rows)
}

func (r *postgresRepository) ListSlugs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT slug FROM works WHERE status = 'published'`)
	if err != nil {
		return nil, fmt.Errorf("slug query failed: %w", err)
	}
	defer rows.Close()

	slugs := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan slug: %w", err)
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, w *work.Work) error {
	query := `
		UPDATE works
		SET title = $2, slug = $3, content = $4, excerpt = $5, category = $6,
		    tags = $7, language = $8, status = $9, featured = $10,
		    featured_image = $11, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		w.ID, w.Title, w.Slug, w.Content, w.Excerpt, w.Category, pq.Array(w.Tags),
		w.Language, w.Status, w.Featured, w.FeaturedImage,
	).Scan(&w.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return work.ErrWorkNotFound
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return work.ErrSlugAlreadyExists
		}
		return fmt.Errorf("failed to update work: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM works WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return work.ErrWorkNotFound
	}
	return nil
}

func (r *postgresRepository) CountPublished(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM works WHERE status = 'published'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}
	return count, nil
}

// buildWhereClause constructs the WHERE clause dynamically.
// The filter is expected to be normalized: empty field means no condition.
func buildWhereClause(filter work.Filter) (string, []interface{}) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("w.status = $%d", argIndex))
		args = append(args, filter.Status)
		argIndex++
	}

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("w.category = $%d", argIndex))
		args = append(args, filter.Category)
		argIndex++
	}

	if filter.Language != "" {
		conditions = append(conditions, fmt.Sprintf("w.language = $%d", argIndex))
		args = append(args, filter.Language)
		argIndex++
	}

	if filter.Tag != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(w.tags)", argIndex))
		args = append(args, filter.Tag)
		argIndex++
	}

	// Full-text search over title/content/tags. The tsvector column uses the
	// 'simple' config, so the engine never interprets the domain's own
	// language column as a stemming hint.
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("w.search_vector @@ websearch_to_tsquery('simple', $%d)", argIndex))
		args = append(args, filter.Search)
		argIndex++
	}

	return strings.Join(conditions, " AND "), args
}

func collectWorks(rows pgx.Rows) ([]work.Work, error) {
	works := make([]work.Work, 0)
	for rows.Next() {
		var w work.Work
		err := rows.Scan(
			&w.ID, &w.Title, &w.Slug, &w.Content, &w.Excerpt, &w.Category, pq.Array(&w.Tags),
			&w.Language, &w.Status, &w.Featured, &w.FeaturedImage, &w.CreatedAt, &w.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan work: %w", err)
		}
		works = append(works, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return works, nil
}
