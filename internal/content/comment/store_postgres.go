package comment

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

// Create inserts the comment stamped with the server-observed creation time.
// There is no uniqueness constraint: duplicate comments are permitted.
func (repository *PostgresRepository) Create(context context.Context, c *Comment) error {
	t := schema.ContentComment
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ArticleID, t.UserID, t.UserName, t.UserPhoto, t.Body, t.CreatedAt,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ArticleID, c.UserID, c.UserName, c.UserPhoto, c.Body,
	).Scan(&c.ID, &c.CreatedAt)
	return dberr.Wrap(err, "create_comment")
}

// ListAll returns every comment in insertion order.
func (repository *PostgresRepository) ListAll(context context.Context) ([]*Comment, error) {
	t := schema.ContentComment
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		t.ID, t.ArticleID, t.UserID, t.UserName, t.UserPhoto, t.Body, t.CreatedAt,
		t.Table, t.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := []*Comment{}
	for rows.Next() {
		c := &Comment{}
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.UserID, &c.UserName, &c.UserPhoto, &c.Body, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, dberr.Wrap(rows.Err(), "list_comments")
}
