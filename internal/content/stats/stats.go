// Package stats implements the aggregation reporter: on-demand contributor
// statistics computed over the article collection. Nothing here is cached;
// every query reflects the store state at the moment it runs.
package stats

// Contributor is a per-author aggregate derived from the article collection.
//
// Name and photo are representative values: the first ones seen in insertion
// order, which is not necessarily the most recent.
type Contributor struct {
	AuthorEmail string `json:"author_email"`
	AuthorName  string `json:"author_name"`
	AuthorPhoto string `json:"author_photo"`
	Count       int64  `json:"count"`
}
