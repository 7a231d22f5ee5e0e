package comment

import (
	"context"
	"log/slog"

	"github.com/knowledgehunting/api/internal/platform/validate"
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

// Add creates a comment. article_id, user_id, and the comment body must be
// non-empty; user_name and user_photo are optional. The referenced article is
// deliberately not checked for existence.
func (service *Service) Add(context context.Context, comment *Comment) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldArticleID, comment.ArticleID).
		Required(FieldUserID, comment.UserID).
		Required(FieldBody, comment.Body).
		MaxLen(FieldBody, comment.Body, 2000)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Create(context, comment); err != nil {
		return err
	}

	service.logger.Info("comment_created",
		slog.Int64("comment_id", comment.ID),
		slog.String("article_id", comment.ArticleID),
	)
	return nil
}

// List returns all comments in insertion order.
func (service *Service) List(context context.Context) ([]*Comment, error) {
	return service.repo.ListAll(context)
}
