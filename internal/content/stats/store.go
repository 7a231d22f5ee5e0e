package stats

import "context"

type Repository interface {
	// TopContributors groups articles by author, counts each group, and
	// returns at most limit authors ordered by count descending.
	TopContributors(ctx context.Context, limit int) ([]*Contributor, error)
}
