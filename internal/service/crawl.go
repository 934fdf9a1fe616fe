package service

import (
	"context"
	"log/slog"
	"time"

	"hespress_harvester/internal/config"
	"hespress_harvester/internal/dates"
	"hespress_harvester/internal/domain"
	"hespress_harvester/internal/source/hespress"
)

// CrawlService walks a closed page interval, extracts articles, and drives
// idempotent persistence. Pages and articles are processed strictly one at
// a time; no single bad page or article aborts the crawl.
type CrawlService struct {
	source    Source
	articles  ArticleStore
	publisher Publisher
	logger    *slog.Logger
	config    config.CrawlConfig
}

func NewCrawlService(
	source Source,
	articles ArticleStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.CrawlConfig,
) *CrawlService {
	return &CrawlService{
		source:    source,
		articles:  articles,
		publisher: publisher,
		logger:    logger.With("source", hespress.SourceID),
		config:    cfg,
	}
}

// Run crawls the configured [start, end] range, descending when start is
// greater than end, and returns statistics for the run. Cancellation is
// checked before every fetch and every pacing delay; on cancellation the
// stats accumulated so far are returned along with the context error.
func (s *CrawlService) Run(ctx context.Context) (*domain.CrawlStats, error) {
	startTime := time.Now()
	stats := &domain.CrawlStats{}

	step := 1
	if s.config.StartPage > s.config.EndPage {
		step = -1
	}

	s.logger.Info("starting crawl",
		"start_page", s.config.StartPage,
		"end_page", s.config.EndPage,
	)

	for page := s.config.StartPage; ; page += step {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(startTime)
			return stats, err
		}

		if err := s.crawlPage(ctx, page, stats); err != nil {
			stats.Duration = time.Since(startTime)
			return stats, err
		}

		if page == s.config.EndPage {
			break
		}
		if err := s.pause(ctx, s.config.PageDelay); err != nil {
			stats.Duration = time.Since(startTime)
			return stats, err
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("crawl completed",
		"pages", stats.Pages,
		"summaries", stats.Summaries,
		"new", stats.New,
		"duplicates", stats.Duplicates,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

// crawlPage handles one listing page. It only returns an error on context
// cancellation; every other failure is logged and skipped.
func (s *CrawlService) crawlPage(ctx context.Context, page int, stats *domain.CrawlStats) error {
	listing := s.source.FetchListing(ctx, page)
	switch listing.Outcome {
	case domain.TransportFailed:
		s.logger.Error("listing fetch failed", "page", page, "error", listing.Err)
		stats.Errors++
		return nil
	case domain.BadStatus:
		s.logger.Warn("skipping page", "page", page, "status", listing.StatusCode)
		stats.Errors++
		return nil
	}

	stats.Pages++

	if len(listing.Summaries) == 0 {
		s.logger.Info("no articles found on page", "page", page)
		return nil
	}

	stats.Summaries += len(listing.Summaries)

	for i := range listing.Summaries {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.ingest(ctx, &listing.Summaries[i], stats)
		if err := s.pause(ctx, s.config.ArticleDelay); err != nil {
			return err
		}
	}

	return nil
}

func (s *CrawlService) ingest(ctx context.Context, summary *domain.ArticleSummary, stats *domain.CrawlStats) {
	postID := hespress.PostID(summary.URL)
	if postID == "" {
		s.logger.Warn("no stable post id, skipping article", "url", summary.URL)
		stats.Errors++
		return
	}

	exists, err := s.articles.Exists(ctx, postID)
	if err != nil {
		s.logger.Error("existence check failed", "postid", postID, "error", err)
		stats.Errors++
		return
	}
	if exists {
		s.logger.Debug("already ingested", "postid", postID, "url", summary.URL)
		stats.Duplicates++
		return
	}

	detail := s.source.FetchDetail(ctx, summary.URL)
	switch detail.Outcome {
	case domain.TransportFailed:
		s.logger.Error("article fetch failed", "url", summary.URL, "error", detail.Err)
		stats.Errors++
		return
	case domain.BadStatus:
		s.logger.Warn("skipping article", "url", summary.URL, "status", detail.StatusCode)
		stats.Errors++
		return
	}

	article := merge(postID, summary, &detail.Detail)

	inserted, err := s.articles.Insert(ctx, article)
	if err != nil {
		s.logger.Error("insert failed",
			"postid", postID,
			"date", article.PublishedAt,
			"error", err,
		)
		stats.Errors++
		return
	}
	if !inserted {
		// Another run got there between the existence check and the insert.
		s.logger.Debug("insert skipped on conflict", "postid", postID)
		stats.Duplicates++
		return
	}

	stats.New++
	s.logger.Info("ingested article", "postid", postID, "date", article.PublishedAt)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, article); err != nil {
			s.logger.Error("publish failed", "postid", postID, "error", err)
			stats.Errors++
		} else {
			stats.Published++
		}
	}
}

// merge builds the persisted record from a summary and its detail page.
// The detail page's raw date wins over the listing's when both are present.
func merge(postID string, summary *domain.ArticleSummary, detail *domain.ArticleDetail) *domain.Article {
	rawDate := detail.RawDateText
	if rawDate == "" && summary.RawDateText != nil {
		rawDate = *summary.RawDateText
	}

	article := &domain.Article{
		PostID:   postID,
		URL:      summary.URL,
		Category: summary.Category,
		Title:    summary.Title,
		Author:   detail.Author,
		Body:     detail.Body,
		ImageURL: detail.ImageURL,
		Tags:     detail.Tags,
	}

	if rawDate != "" {
		article.RawDateText = &rawDate
		article.PublishedAt = dates.Parse(rawDate)
	}

	return article
}

func (s *CrawlService) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
