package stats_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledgehunting/api/internal/content/stats"
	"github.com/knowledgehunting/api/internal/platform/constants"
)

// fakeRepository records the limit it was asked for.
type fakeRepository struct {
	lastLimit    int
	contributors []*stats.Contributor
}

func (r *fakeRepository) TopContributors(_ context.Context, limit int) ([]*stats.Contributor, error) {
	r.lastLimit = limit
	if limit < len(r.contributors) {
		return r.contributors[:limit], nil
	}
	return r.contributors, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestTopContributors_DefaultLimit verifies that a non-positive limit falls
back to the default report size.
*/
func TestTopContributors_DefaultLimit(t *testing.T) {
	repo := &fakeRepository{}
	service := stats.NewService(repo, discardLogger())

	_, err := service.TopContributors(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultTopContributors, repo.lastLimit)

	_, err = service.TopContributors(context.Background(), -3)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultTopContributors, repo.lastLimit)
}

/*
TestTopContributors_ExplicitLimit verifies that a positive limit is passed
through to the store and caps the report.
*/
func TestTopContributors_ExplicitLimit(t *testing.T) {
	repo := &fakeRepository{
		contributors: []*stats.Contributor{
			{AuthorEmail: "prolific@example.com", Count: 9},
			{AuthorEmail: "steady@example.com", Count: 4},
			{AuthorEmail: "occasional@example.com", Count: 1},
		},
	}
	service := stats.NewService(repo, discardLogger())

	contributors, err := service.TopContributors(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, repo.lastLimit)
	require.Len(t, contributors, 2)
	assert.Equal(t, "prolific@example.com", contributors[0].AuthorEmail)
}
