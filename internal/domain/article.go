package domain

import "time"

// ArticleSummary is one card from a listing page. URL is the natural key
// until a post id is resolved from it.
type ArticleSummary struct {
	URL         string
	Category    *string
	Title       string
	RawDateText *string
}

// ArticleDetail holds the fields scraped from a full article page. Every
// field is independently optional and defaults to its zero value.
type ArticleDetail struct {
	Author      string
	Body        string
	ImageURL    string
	Tags        []string // document order
	RawDateText string
}

// Article is the persisted record, merged from a summary and a detail page.
// PostID is unique and never changes for a given URL. PublishedAt stays nil
// when the raw date text could not be parsed; the record is persisted anyway.
type Article struct {
	ID          int64
	PostID      string
	URL         string
	Category    *string
	Title       string
	RawDateText *string
	PublishedAt *time.Time
	Author      string
	Body        string
	ImageURL    string
	Tags        []string
	CreatedAt   time.Time
}
