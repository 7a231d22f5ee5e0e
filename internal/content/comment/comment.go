package comment

import "time"

// Comment is a reader remark attached to an article.
//
// ArticleID is a plain reference with no foreign-key enforcement: a comment
// may point at an article that no longer exists (or never did). Comments are
// immutable after creation and are never deleted here.
type Comment struct {
	ID        int64     `json:"id"`
	ArticleID string    `json:"article_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserPhoto string    `json:"user_photo"`
	Body      string    `json:"comment"`
	CreatedAt time.Time `json:"date"`
}

// Global field names for validation
const (
	FieldArticleID = "article_id"
	FieldUserID    = "user_id"
	FieldBody      = "comment"
)
