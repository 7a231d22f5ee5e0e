package article_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledgehunting/api/internal/content/article"
	"github.com/knowledgehunting/api/internal/platform/apperr"
	"github.com/knowledgehunting/api/internal/platform/dberr"
	"github.com/knowledgehunting/api/internal/platform/sec"
	"github.com/knowledgehunting/api/pkg/pointer"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	articles   map[int64]*article.Article
	nextID     int64
	lastFilter article.Filter
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{articles: map[int64]*article.Article{}, nextID: 1}
}

func (r *fakeRepository) List(_ context.Context, f article.Filter) ([]*article.Article, error) {
	r.lastFilter = f
	var out []*article.Article
	for _, a := range r.articles {
		if f.Category == "" || a.Category == f.Category {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepository) ListByAuthor(_ context.Context, email string) ([]*article.Article, error) {
	var out []*article.Article
	for _, a := range r.articles {
		if a.AuthorEmail == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepository) ListFeatured(_ context.Context) ([]*article.Article, error) {
	all, _ := r.List(context.Background(), article.Filter{})
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return all, nil
}

func (r *fakeRepository) GetByID(_ context.Context, id int64) (*article.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return a, nil
}

func (r *fakeRepository) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.articles)), nil
}

func (r *fakeRepository) CountByAuthor(_ context.Context, email string) (int64, error) {
	articles, _ := r.ListByAuthor(context.Background(), email)
	return int64(len(articles)), nil
}

func (r *fakeRepository) Create(_ context.Context, a *article.Article) error {
	a.ID = r.nextID
	r.nextID++
	r.articles[a.ID] = a
	return nil
}

func (r *fakeRepository) Update(_ context.Context, id int64, p article.Patch) error {
	a, ok := r.articles[id]
	if !ok {
		return dberr.ErrNotFound
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.articles[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.articles, id)
	return nil
}

func (r *fakeRepository) ToggleLike(_ context.Context, id int64, email string) (bool, error) {
	a, ok := r.articles[id]
	if !ok {
		return false, dberr.ErrNotFound
	}
	for i, member := range a.LikedBy {
		if member == email {
			a.LikedBy = append(a.LikedBy[:i], a.LikedBy[i+1:]...)
			return false, nil
		}
	}
	a.LikedBy = append(a.LikedBy, email)
	return true, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestListArticles_AllSentinel verifies that the "All" category sentinel and an
empty category disable filtering in exactly the same way.
*/
func TestListArticles_AllSentinel(t *testing.T) {
	repo := newFakeRepository()
	service := article.NewService(repo, discardLogger())

	_, err := service.ListArticles(context.Background(), article.CategoryAll)
	require.NoError(t, err)
	assert.Equal(t, "", repo.lastFilter.Category)

	_, err = service.ListArticles(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", repo.lastFilter.Category)

	_, err = service.ListArticles(context.Background(), "Technology")
	require.NoError(t, err)
	assert.Equal(t, "Technology", repo.lastFilter.Category)
}

/*
TestCreateArticle verifies that creation stamps author fields from the
verified principal, derives a slug, and starts likedBy empty.
*/
func TestCreateArticle(t *testing.T) {
	repo := newFakeRepository()
	service := article.NewService(repo, discardLogger())

	principal := &sec.AuthClaims{
		Email:   "writer@example.com",
		Name:    "Writer",
		Picture: "https://img.example.com/w.png",
	}

	newArticle := &article.Article{
		Title:    "Why Go Ships Fast",
		Content:  "Short compile times.",
		Category: "Technology",
	}

	err := service.CreateArticle(context.Background(), newArticle, principal)

	require.NoError(t, err)
	assert.NotZero(t, newArticle.ID)
	assert.Equal(t, "writer@example.com", newArticle.AuthorEmail)
	assert.Equal(t, "Writer", newArticle.AuthorName)
	assert.Equal(t, "https://img.example.com/w.png", newArticle.AuthorPhoto)
	assert.Equal(t, "why-go-ships-fast", newArticle.Slug)
	assert.NotNil(t, newArticle.LikedBy)
	assert.Empty(t, newArticle.LikedBy)
}

/*
TestCreateArticle_KeepsExplicitAuthor verifies that author fields already
supplied by the caller are not overwritten by the principal's claims.
*/
func TestCreateArticle_KeepsExplicitAuthor(t *testing.T) {
	repo := newFakeRepository()
	service := article.NewService(repo, discardLogger())

	principal := &sec.AuthClaims{Email: "writer@example.com", Name: "Writer"}

	newArticle := &article.Article{
		Title:       "Posting As Display Name",
		AuthorEmail: "writer@example.com",
		AuthorName:  "Pen Name",
	}

	err := service.CreateArticle(context.Background(), newArticle, principal)

	require.NoError(t, err)
	assert.Equal(t, "Pen Name", newArticle.AuthorName)
}

/*
TestCreateArticle_MissingTitle verifies that a blank title is rejected and
nothing is written to the store.
*/
func TestCreateArticle_MissingTitle(t *testing.T) {
	repo := newFakeRepository()
	service := article.NewService(repo, discardLogger())

	principal := &sec.AuthClaims{Email: "writer@example.com"}

	err := service.CreateArticle(context.Background(), &article.Article{Content: "body only"}, principal)

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Empty(t, repo.articles)
}

/*
TestUpdateArticle verifies partial updates: present fields change, absent
fields stay, and owner identity is untouchable by construction.
*/
func TestUpdateArticle(t *testing.T) {
	repo := newFakeRepository()
	service := article.NewService(repo, discardLogger())

	principal := &sec.AuthClaims{Email: "writer@example.com", Name: "Writer"}
	existing := &article.Article{Title: "Original Title", Content: "Original body", Category: "Science"}
	require.NoError(t, service.CreateArticle(context.Background(), existing, principal))

	err := service.UpdateArticle(context.Background(), existing.ID, article.Patch{Title: pointer.To("Revised Title")})

	require.NoError(t, err)
	updated := repo.articles[existing.ID]
	assert.Equal(t, "Revised Title", updated.Title)
	assert.Equal(t, "Original body", updated.Content)
	assert.Equal(t, "Science", updated.Category)
	assert.Equal(t, "writer@example.com", updated.AuthorEmail)
}

/*
TestUpdateArticle_Invalid verifies that empty patches and non-positive ids
are rejected before touching the store.
*/
func TestUpdateArticle_Invalid(t *testing.T) {
	repo := newFakeRepository()
	service := article.NewService(repo, discardLogger())

	// 1. Empty patch
	err := service.UpdateArticle(context.Background(), 1, article.Patch{})
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	// 2. Bad id
	err = service.UpdateArticle(context.Background(), 0, article.Patch{Title: pointer.To("New Title")})
	require.Error(t, err)

	// 3. Unknown id propagates NotFound from the store
	err = service.UpdateArticle(context.Background(), 42, article.Patch{Title: pointer.To("New Title")})
	require.Error(t, err)
	appErr = apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

/*
TestCountByAuthor_RequiresEmail verifies that the per-author count rejects a
blank identity.
*/
func TestCountByAuthor_RequiresEmail(t *testing.T) {
	service := article.NewService(newFakeRepository(), discardLogger())

	_, err := service.CountByAuthor(context.Background(), "")

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

/*
TestDeleteArticle verifies deletion of existing and unknown articles.
*/
func TestDeleteArticle(t *testing.T) {
	repo := newFakeRepository()
	service := article.NewService(repo, discardLogger())

	principal := &sec.AuthClaims{Email: "writer@example.com"}
	existing := &article.Article{Title: "Disposable"}
	require.NoError(t, service.CreateArticle(context.Background(), existing, principal))

	require.NoError(t, service.DeleteArticle(context.Background(), existing.ID))
	assert.Empty(t, repo.articles)

	err := service.DeleteArticle(context.Background(), existing.ID)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
