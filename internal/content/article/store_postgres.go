package article

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/knowledgehunting/api/internal/platform/database/schema"
	"github.com/knowledgehunting/api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns is the shared projection for article reads.
func selectColumns() string {
	t := schema.ContentArticle
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Title, t.Content, t.Category, t.Slug,
		t.AuthorEmail, t.AuthorName, t.AuthorPhoto, t.LikedBy, t.CreatedAt, t.UpdatedAt,
	)
}

func scanArticle(row interface{ Scan(...any) error }) (*Article, error) {
	a := &Article{}
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Category, &a.Slug,
		&a.AuthorEmail, &a.AuthorName, &a.AuthorPhoto, &a.LikedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns articles in insertion order, optionally filtered by category.
// The "All" sentinel is resolved in the service layer; an empty Category here
// means no filter.
func (repository *PostgresRepository) List(context context.Context, f Filter) ([]*Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, selectColumns(), schema.ContentArticle.Table)

	args := []any{}
	if f.Category != "" {
		query += fmt.Sprintf(` WHERE %s = $1`, schema.ContentArticle.Category)
		args = append(args, f.Category)
	}

	// Insertion order is the store-native order exposed to clients.
	query += fmt.Sprintf(` ORDER BY %s ASC`, schema.ContentArticle.ID)

	return repository.queryArticles(context, "list_articles", query, args...)
}

// ListByAuthor returns every article owned by the given identity, in insertion order.
func (repository *PostgresRepository) ListByAuthor(context context.Context, email string) ([]*Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		selectColumns(), schema.ContentArticle.Table, schema.ContentArticle.AuthorEmail, schema.ContentArticle.ID,
	)
	return repository.queryArticles(context, "list_articles_by_author", query, email)
}

// ListFeatured returns the full collection in reverse insertion order
// (most-recently-inserted first). No limit is applied.
func (repository *PostgresRepository) ListFeatured(context context.Context) ([]*Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC`,
		selectColumns(), schema.ContentArticle.Table, schema.ContentArticle.ID,
	)
	return repository.queryArticles(context, "list_featured_articles", query)
}

func (repository *PostgresRepository) GetByID(context context.Context, id int64) (*Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.ContentArticle.Table, schema.ContentArticle.ID,
	)

	a, err := scanArticle(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_article")
	}
	return a, nil
}

// CountAll returns an approximate article count using the planner statistics,
// matching the fast-count semantics of the original store. When statistics are
// not yet populated (reltuples < 0) it falls back to an exact count.
func (repository *PostgresRepository) CountAll(context context.Context) (int64, error) {
	var estimate int64
	err := repository.db.QueryRow(context,
		`SELECT reltuples::bigint FROM pg_class WHERE oid = $1::regclass`,
		schema.ContentArticle.Table,
	).Scan(&estimate)
	if err != nil {
		return 0, dberr.Wrap(err, "count_articles_estimate")
	}

	if estimate >= 0 {
		return estimate, nil
	}

	query := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.ContentArticle.Table)
	var total int64
	if err := repository.db.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_articles")
	}
	return total, nil
}

// CountByAuthor returns the exact number of articles owned by email.
func (repository *PostgresRepository) CountByAuthor(context context.Context, email string) (int64, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.ContentArticle.Table, schema.ContentArticle.AuthorEmail,
	)

	var total int64
	if err := repository.db.QueryRow(context, query, email).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_articles_by_author")
	}
	return total, nil
}

func (repository *PostgresRepository) Create(context context.Context, a *Article) error {
	t := schema.ContentArticle
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Title, t.Content, t.Category, t.Slug,
		t.AuthorEmail, t.AuthorName, t.AuthorPhoto, t.LikedBy, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	if a.LikedBy == nil {
		a.LikedBy = []string{}
	}

	err := repository.db.QueryRow(context, query,
		a.Title, a.Content, a.Category, a.Slug,
		a.AuthorEmail, a.AuthorName, a.AuthorPhoto, a.LikedBy,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_article")
}

// Update merges the patch into the existing row: only supplied fields change.
// Owner identity columns are never part of the statement.
func (repository *PostgresRepository) Update(context context.Context, id int64, p Patch) error {
	t := schema.ContentArticle
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s), %s = COALESCE($3, %s), %s = COALESCE($4, %s), %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table,
		t.Title, t.Title, t.Content, t.Content, t.Category, t.Category, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	var touched any
	err := repository.db.QueryRow(context, query, id, p.Title, p.Content, p.Category).Scan(&touched)
	return dberr.Wrap(err, "update_article")
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentArticle.Table, schema.ContentArticle.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_article")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// ToggleLike flips email's membership in likedby as one atomic statement:
// remove-if-present, add-if-absent. Because the membership test and the
// mutation happen inside a single UPDATE, concurrent toggles by the same
// identity cannot race, and the add path can never produce a duplicate entry.
// RETURNING evaluates against the new row, so the result is the new liked state.
func (repository *PostgresRepository) ToggleLike(context context.Context, id int64, email string) (bool, error) {
	t := schema.ContentArticle
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = CASE
			WHEN $2 = ANY(%s) THEN array_remove(%s, $2)
			ELSE array_append(%s, $2)
		END
		WHERE %s = $1
		RETURNING $2 = ANY(%s)
	`,
		t.Table, t.LikedBy, t.LikedBy, t.LikedBy, t.LikedBy, t.ID, t.LikedBy,
	)

	var liked bool
	if err := repository.db.QueryRow(context, query, id, email).Scan(&liked); err != nil {
		return false, dberr.Wrap(err, "toggle_like")
	}
	return liked, nil
}

func (repository *PostgresRepository) queryArticles(context context.Context, action, query string, args ...any) ([]*Article, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	articles := []*Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, a)
	}

	return articles, dberr.Wrap(rows.Err(), action)
}
