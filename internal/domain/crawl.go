package domain

import "time"

// CrawlStats holds statistics about one crawl over a page range.
// Summaries counts every summary seen on every listing page, including
// ones that were skipped as duplicates.
type CrawlStats struct {
	Pages      int
	Summaries  int
	New        int
	Duplicates int
	Errors     int
	Published  int
	Duration   time.Duration
}
