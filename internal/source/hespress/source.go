package hespress

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"hespress_harvester/internal/domain"
)

const (
	SourceID   = "hespress"
	SourceName = "Hespress"
)

// Config holds Hespress source configuration.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Source fetches listing and detail pages from Hespress and turns them into
// domain values. Fetch outcomes are classified rather than returned as
// errors so callers can apply the skip-and-continue policy.
type Source struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// New creates a new Hespress source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger.With("source", SourceID),
	}
}

// FetchListing fetches one listing page. Non-existent pages come back with
// an empty summary set, not an error.
func (s *Source) FetchListing(ctx context.Context, page int) domain.ListingPage {
	url := fmt.Sprintf("%s/?action=ajax_listing&paged=%d", s.baseURL, page)
	s.logger.Debug("fetching listing page", "url", url)

	doc, code, err := s.fetchDocument(ctx, url)
	if err != nil {
		return domain.ListingPage{Outcome: domain.TransportFailed, StatusCode: code, Err: err}
	}
	if code != http.StatusOK {
		return domain.ListingPage{Outcome: domain.BadStatus, StatusCode: code}
	}

	return domain.ListingPage{
		Outcome:    domain.Fetched,
		StatusCode: code,
		Summaries:  ParseListing(doc),
	}
}

// FetchDetail fetches one article page, addressed verbatim by the summary
// link.
func (s *Source) FetchDetail(ctx context.Context, articleURL string) domain.DetailPage {
	s.logger.Debug("fetching article", "url", articleURL)

	doc, code, err := s.fetchDocument(ctx, articleURL)
	if err != nil {
		return domain.DetailPage{Outcome: domain.TransportFailed, StatusCode: code, Err: err}
	}
	if code != http.StatusOK {
		return domain.DetailPage{Outcome: domain.BadStatus, StatusCode: code}
	}

	return domain.DetailPage{
		Outcome:    domain.Fetched,
		StatusCode: code,
		Detail:     ParseDetail(doc),
	}
}

func (s *Source) fetchDocument(ctx context.Context, url string) (*goquery.Document, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("parse document: %w", err)
	}

	return doc, resp.StatusCode, nil
}
