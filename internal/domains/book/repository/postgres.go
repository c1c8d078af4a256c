package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"authorsite-backend/internal/domains/book"
)

const uniqueViolation = "23505"

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `id, title, slug, description, cover_image, purchase_link, genre,
		publication_year, language, featured, created_at, updated_at`

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Slug, &b.Description, &b.CoverImage, &b.PurchaseLink,
		&b.Genre, &b.PublicationYear, &b.Language, &b.Featured, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	query := `
		INSERT INTO books (id, title, slug, description, cover_image, purchase_link, genre, publication_year, language, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.Slug, b.Description, b.CoverImage, b.PurchaseLink,
		b.Genre, b.PublicationYear, b.Language, b.Featured,
	).Scan(&b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return book.ErrSlugAlreadyExists
		}
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE id = $1`, bookColumns)

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]book.Book, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM books
		ORDER BY publication_year DESC, created_at DESC
	`, bookColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresRepository) ListFeatured(ctx context.Context, limit int) ([]book.Book, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM books
		WHERE featured = true
		ORDER BY publication_year DESC, created_at DESC
		LIMIT $1
	`, bookColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("featured query failed: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	query := `
		UPDATE books
		SET title = $2, slug = $3, description = $4, cover_image = $5,
		    purchase_link = $6, genre = $7, publication_year = $8,
		    language = $9, featured = $10, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.Slug, b.Description, b.CoverImage, b.PurchaseLink,
		b.Genre, b.PublicationYear, b.Language, b.Featured,
	).Scan(&b.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return book.ErrBookNotFound
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return book.ErrSlugAlreadyExists
		}
		return fmt.Errorf("failed to update book: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}
	return count, nil
}

func collectBooks(rows pgx.Rows) ([]book.Book, error) {
	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		err := rows.Scan(
			&b.ID, &b.Title, &b.Slug, &b.Description, &b.CoverImage, &b.PurchaseLink,
			&b.Genre, &b.PublicationYear, &b.Language, &b.Featured, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return books, nil
}
