package article

import (
	"context"
	"log/slog"

	"github.com/knowledgehunting/api/internal/platform/sec"
	"github.com/knowledgehunting/api/internal/platform/validate"
	"github.com/knowledgehunting/api/pkg/slug"
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

// ListArticles returns articles filtered by category. An empty category or the
// "All" sentinel disables the filter, so ?category=All and no parameter return
// the same set.
func (service *Service) ListArticles(context context.Context, category string) ([]*Article, error) {
	if category == CategoryAll {
		category = ""
	}
	return service.repo.List(context, Filter{Category: category})
}

// ListMyArticles returns the caller's own articles. The ownership match
// between path identity and verified principal is enforced by the gate before
// this is reached.
func (service *Service) ListMyArticles(context context.Context, email string) ([]*Article, error) {
	return service.repo.ListByAuthor(context, email)
}

// ListFeatured returns the full collection, most-recently-inserted first.
func (service *Service) ListFeatured(context context.Context) ([]*Article, error) {
	return service.repo.ListFeatured(context)
}

func (service *Service) GetArticle(context context.Context, id int64) (*Article, error) {
	return service.repo.GetByID(context, id)
}

func (service *Service) CountAll(context context.Context) (int64, error) {
	return service.repo.CountAll(context)
}

func (service *Service) CountByAuthor(context context.Context, email string) (int64, error) {
	if email == "" {
		return 0, validate.RequiredError(FieldEmail, "This field is required")
	}
	return service.repo.CountByAuthor(context, email)
}

// CreateArticle publishes a new article on behalf of the verified principal.
//
// Author fields left blank by the caller are filled from the principal's
// verified claims; likedBy always starts empty.
func (service *Service) CreateArticle(context context.Context, article *Article, principal *sec.AuthClaims) error {
	if article.AuthorEmail == "" {
		article.AuthorEmail = principal.Email
	}
	if article.AuthorName == "" {
		article.AuthorName = principal.Name
	}
	if article.AuthorPhoto == "" {
		article.AuthorPhoto = principal.Picture
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, article.Title).MaxLen(FieldTitle, article.Title, 300)
	validator.Required(FieldAuthorEmail, article.AuthorEmail)
	if err := validator.Err(); err != nil {
		return err
	}

	article.Slug = slug.From(article.Title)
	article.LikedBy = []string{}

	if err := service.repo.Create(context, article); err != nil {
		return err
	}

	service.logger.Info("article_created",
		slog.Int64("article_id", article.ID),
		slog.String("author", article.AuthorEmail),
	)
	return nil
}

// UpdateArticle merges the patch into the stored article. Only the enumerated
// mutable fields can change; author identity is immutable.
func (service *Service) UpdateArticle(context context.Context, id int64, patch Patch) error {
	validator := &validate.Validator{}
	validator.Custom(FieldID, id <= 0, "Must be a positive article id")
	validator.Custom("patch", patch.IsEmpty(), "At least one field is required")
	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, 300)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, id, patch); err != nil {
		return err
	}

	service.logger.Info("article_updated", slog.Int64("article_id", id))
	return nil
}

func (service *Service) DeleteArticle(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("article_deleted", slog.Int64("article_id", id))
	return nil
}
