package domain

// FetchOutcome classifies a network fetch so the crawl's skip-and-continue
// policy is carried by the type, not by a catch-all error path.
type FetchOutcome int

const (
	Fetched FetchOutcome = iota
	BadStatus
	TransportFailed
)

// ListingPage is the result of fetching one listing page. Summaries is
// populated only when Outcome is Fetched; Err only when TransportFailed.
type ListingPage struct {
	Outcome    FetchOutcome
	StatusCode int
	Summaries  []ArticleSummary
	Err        error
}

// DetailPage is the result of fetching one article page.
type DetailPage struct {
	Outcome    FetchOutcome
	StatusCode int
	Detail     ArticleDetail
	Err        error
}
