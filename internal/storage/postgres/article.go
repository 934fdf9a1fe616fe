package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"hespress_harvester/internal/domain"
)

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS hespress_articles (
		id SERIAL PRIMARY KEY,
		postid TEXT UNIQUE,
		article_url TEXT UNIQUE,
		category TEXT,
		title TEXT,
		date_text_ar TEXT,
		date TIMESTAMP,
		author TEXT,
		content TEXT,
		featured_image TEXT,
		tags TEXT[],
		created_at TIMESTAMP DEFAULT now()
	)`

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// EnsureSchema creates the articles table if it does not exist yet. Safe to
// call on every startup.
func (s *ArticleStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createTableQuery)
	return err
}

// Exists reports whether an article with the given post id is already
// persisted. An empty post id is never found.
func (s *ArticleStore) Exists(ctx context.Context, postID string) (bool, error) {
	if postID == "" {
		return false, nil
	}

	var one int
	err := s.db.GetContext(ctx, &one,
		"SELECT 1 FROM hespress_articles WHERE postid = $1 LIMIT 1", postID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert writes the article, ignoring conflicts on the postid unique key.
// It reports whether a row was actually written, so a stale existence check
// upstream degrades to a silent no-op here.
func (s *ArticleStore) Insert(ctx context.Context, article *domain.Article) (bool, error) {
	query := `
		INSERT INTO hespress_articles (
			postid, article_url, category, title, date_text_ar, date,
			author, content, featured_image, tags
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (postid) DO NOTHING`

	res, err := s.db.ExecContext(ctx, query,
		article.PostID,
		article.URL,
		article.Category,
		article.Title,
		article.RawDateText,
		article.PublishedAt,
		article.Author,
		article.Body,
		article.ImageURL,
		pq.Array(article.Tags),
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
