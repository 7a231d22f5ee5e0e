package stats

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

// TopContributors runs the aggregation in a single statement. The
// array_agg(... ORDER BY id) picks the first-seen name and photo per author,
// mirroring a $first in insertion order.
func (repository *PostgresRepository) TopContributors(context context.Context, limit int) ([]*Contributor, error) {
	t := schema.ContentArticle
	query := fmt.Sprintf(`
		SELECT
			%s,
			(array_agg(%s ORDER BY %s))[1],
			(array_agg(%s ORDER BY %s))[1],
			count(*)
		FROM %s
		GROUP BY %s
		ORDER BY count(*) DESC
		LIMIT $1
	`,
		t.AuthorEmail,
		t.AuthorName, t.ID,
		t.AuthorPhoto, t.ID,
		t.Table, t.AuthorEmail,
	)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "top_contributors")
	}
	defer rows.Close()

	contributors := []*Contributor{}
	for rows.Next() {
		c := &Contributor{}
		if err := rows.Scan(&c.AuthorEmail, &c.AuthorName, &c.AuthorPhoto, &c.Count); err != nil {
			return nil, dberr.Wrap(err, "scan_contributor")
		}
		contributors = append(contributors, c)
	}

	return contributors, dberr.Wrap(rows.Err(), "top_contributors")
}
