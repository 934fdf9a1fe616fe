package hespress

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"hespress_harvester/internal/domain"
)

// ParseListing extracts article summaries from a listing page, in document
// order. Cards without a link, or whose link has an empty href, are dropped.
func ParseListing(doc *goquery.Document) []domain.ArticleSummary {
	var summaries []domain.ArticleSummary

	doc.Find("div.card").Each(func(_ int, card *goquery.Selection) {
		link := card.Find("a.stretched-link").First()
		if link.Length() == 0 {
			return
		}

		articleURL := strings.TrimSpace(link.AttrOr("href", ""))
		if articleURL == "" {
			return
		}

		summary := domain.ArticleSummary{
			URL:   articleURL,
			Title: strings.TrimSpace(link.AttrOr("title", "")),
		}

		if cat := card.Find("span.cat").First(); cat.Length() > 0 {
			category := strings.TrimSpace(cat.Text())
			summary.Category = &category
		}

		if el := card.Find("small.text-muted.time").First(); el.Length() > 0 {
			rawDate := strings.TrimSpace(el.Text())
			summary.RawDateText = &rawDate
		}

		summaries = append(summaries, summary)
	})

	return summaries
}
