// Package engage implements the engagement engine: the idempotent like/unlike
// toggle over articles.
//
// The toggle is delegated to the article store as a single atomic operation,
// so two sequential toggles by the same identity always return the likedBy
// set to its original state.
package engage

import (
	"context"
	"log/slog"

	"github.com/knowledgehunting/api/internal/content/article"
	"github.com/knowledgehunting/api/internal/platform/validate"
)

// ToggleResult reports the outcome of a like toggle.
type ToggleResult struct {
	// Liked is the new membership state after the toggle.
	Liked bool `json:"liked"`
	// Message is a human-readable outcome description.
	Message string `json:"message"`
}

type Service struct {
	articles article.Repository
	logger   *slog.Logger
}

func NewService(articles article.Repository, logger *slog.Logger) *Service {
	return &Service{
		articles: articles,
		logger:   logger,
	}
}

// ToggleLike flips email's membership in the article's likedBy set.
//
// Any identity may toggle a like on any article; this is the one mutation
// that is not ownership-scoped. Returns NotFound when the article id does
// not resolve.
func (service *Service) ToggleLike(context context.Context, articleID int64, email string) (*ToggleResult, error) {
	if email == "" {
		return nil, validate.RequiredError("email", "This field is required")
	}

	liked, err := service.articles.ToggleLike(context, articleID, email)
	if err != nil {
		return nil, err
	}

	message := "Like successful"
	if !liked {
		message = "Dislike successful"
	}

	service.logger.Info("like_toggled",
		slog.Int64("article_id", articleID),
		slog.String("email", email),
		slog.Bool("liked", liked),
	)

	return &ToggleResult{Liked: liked, Message: message}, nil
}
