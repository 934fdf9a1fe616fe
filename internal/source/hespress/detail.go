package hespress

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"hespress_harvester/internal/domain"
)

// ParseDetail extracts the detail fields from an article page. Every field
// is optional; a missing node leaves its field empty.
func ParseDetail(doc *goquery.Document) domain.ArticleDetail {
	var detail domain.ArticleDetail

	if content := doc.Find("div.article-content").First(); content.Length() > 0 {
		content.Find("script, style").Remove()
		detail.Body = joinedText(content, "\n")
	}

	if author := doc.Find("span.author").First(); author.Length() > 0 {
		detail.Author = strings.TrimSpace(author.Find("a").First().Text())
	}

	detail.RawDateText = strings.TrimSpace(doc.Find("span.date-post").First().Text())

	if img := doc.Find("div.post-thumbnail.featured-img img").First(); img.Length() > 0 {
		detail.ImageURL = img.AttrOr("src", "")
	}

	doc.Find("section.box-tags a.tag_post_tag").Each(func(_ int, tag *goquery.Selection) {
		detail.Tags = append(detail.Tags, strings.TrimSpace(tag.Text()))
	})

	return detail
}

// joinedText collects every non-empty text node under sel, trimmed, joined
// with sep, in document order.
func joinedText(sel *goquery.Selection, sep string) string {
	var parts []string
	collectText(sel, &parts)
	return strings.Join(parts, sep)
}

func collectText(sel *goquery.Selection, parts *[]string) {
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		if goquery.NodeName(child) == "#text" {
			if text := strings.TrimSpace(child.Text()); text != "" {
				*parts = append(*parts, text)
			}
			return
		}
		collectText(child, parts)
	})
}
