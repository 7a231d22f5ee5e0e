package stats

import (
	"context"
	"log/slog"

	"github.com/knowledgehunting/api/internal/platform/constants"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// TopContributors returns the most prolific authors, at most limit entries,
// ordered by article count descending. A non-positive limit falls back to the
// default report size.
func (service *Service) TopContributors(context context.Context, limit int) ([]*Contributor, error) {
	if limit <= 0 {
		limit = constants.DefaultTopContributors
	}
	return service.repo.TopContributors(context, limit)
}
