package article

import "time"

// Article is a published piece of content.
//
// AuthorEmail is the owner identity: it is written once at creation and never
// changed by updates. LikedBy has set semantics: it never contains the same
// identity twice.
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Slug        string    `json:"slug"`
	AuthorEmail string    `json:"author_email"`
	AuthorName  string    `json:"author_name"`
	AuthorPhoto string    `json:"author_photo"`
	LikedBy     []string  `json:"likedBy"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter holds the parameters for an article listing.
type Filter struct {
	// Category filters by exact match. Empty or the sentinel "All" means
	// no category filter.
	Category string
}

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "All"

// Patch enumerates the mutable article fields for partial updates.
//
// A nil field is left untouched. Owner identity fields are deliberately
// absent: callers cannot reassign an article to another author.
type Patch struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Category == nil
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldContent     = "content"
	FieldCategory    = "category"
	FieldAuthorEmail = "author_email"
	FieldEmail       = "email"
	FieldID          = "id"
)
