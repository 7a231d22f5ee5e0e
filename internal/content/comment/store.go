package comment

import "context"

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	ListAll(ctx context.Context) ([]*Comment, error)
}
