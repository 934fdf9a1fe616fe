package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"hespress_harvester/internal/domain"
)

type ArticleStore interface {
	Exists(ctx context.Context, postID string) (bool, error)
	Insert(ctx context.Context, article *domain.Article) (bool, error)
}

type Source interface {
	FetchListing(ctx context.Context, page int) domain.ListingPage
	FetchDetail(ctx context.Context, articleURL string) domain.DetailPage
}

type Publisher interface {
	Publish(ctx context.Context, article *domain.Article) error
	Close() error
}
