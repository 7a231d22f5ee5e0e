package article

import "context"

// Repository is the article store adapter.
//
// It does not re-verify ownership on writes: mutation and deletion protection
// is enforced entirely by the authorization gate upstream. Exposing this
// interface without the gate is unsafe.
type Repository interface {
	List(ctx context.Context, f Filter) ([]*Article, error)
	ListByAuthor(ctx context.Context, email string) ([]*Article, error)
	ListFeatured(ctx context.Context) ([]*Article, error)
	GetByID(ctx context.Context, id int64) (*Article, error)
	CountAll(ctx context.Context) (int64, error)
	CountByAuthor(ctx context.Context, email string) (int64, error)
	Create(ctx context.Context, a *Article) error
	Update(ctx context.Context, id int64, p Patch) error
	Delete(ctx context.Context, id int64) error

	// ToggleLike flips email's membership in the article's likedBy set as a
	// single atomic store operation and returns the new liked state.
	ToggleLike(ctx context.Context, id int64, email string) (bool, error)
}
