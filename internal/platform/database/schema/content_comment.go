package schema

// ContentCommentTable represents the 'content.comment' table
type ContentCommentTable struct {
	Table     string
	ID        string
	ArticleID string
	UserID    string
	UserName  string
	UserPhoto string
	Body      string
	CreatedAt string
}

// ContentComment is the schema definition for content.comment
var ContentComment = ContentCommentTable{
	Table:     "content.comment",
	ID:        "id",
	ArticleID: "articleid",
	UserID:    "userid",
	UserName:  "username",
	UserPhoto: "userphoto",
	Body:      "body",
	CreatedAt: "createdat",
}
