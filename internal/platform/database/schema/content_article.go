package schema

// ContentArticleTable represents the 'content.article' table
type ContentArticleTable struct {
	Table       string
	ID          string
	Title       string
	Content     string
	Category    string
	Slug        string
	AuthorEmail string
	AuthorName  string
	AuthorPhoto string
	LikedBy     string
	CreatedAt   string
	UpdatedAt   string
}

// ContentArticle is the schema definition for content.article
var ContentArticle = ContentArticleTable{
	Table:       "content.article",
	ID:          "id",
	Title:       "title",
	Content:     "content",
	Category:    "category",
	Slug:        "slug",
	AuthorEmail: "authoremail",
	AuthorName:  "authorname",
	AuthorPhoto: "authorphoto",
	LikedBy:     "likedby",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t ContentArticleTable) Columns() []string {
	return []string{t.ID, t.Title, t.Content, t.Category, t.Slug, t.AuthorEmail, t.AuthorName, t.AuthorPhoto, t.LikedBy, t.CreatedAt, t.UpdatedAt}
}
