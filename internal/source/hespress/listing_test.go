package hespress

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseListing(t *testing.T) {
	html := `
	<div class="listing">
		<div class="card">
			<span class="cat">سياسة</span>
			<a class="stretched-link" title="العنوان الأول " href=" https://www.hespress.com/first-1001.html "></a>
			<small class="text-muted time">الأحد 13 غشت 2023</small>
		</div>
		<div class="card">
			<span class="cat">رياضة</span>
			<small class="text-muted time">الأحد 13 غشت 2023</small>
		</div>
		<div class="card">
			<a class="stretched-link" title="العنوان الثاني" href="https://www.hespress.com/second-1002.html"></a>
		</div>
		<div class="card">
			<span class="cat">اقتصاد</span>
			<a class="stretched-link" title="العنوان الثالث" href="https://www.hespress.com/third-1003.html"></a>
			<small class="text-muted time">الاثنين 14 غشت 2023</small>
		</div>
	</div>`

	summaries := ParseListing(mustDocument(t, html))

	// The card without a link is dropped; order follows the document.
	require.Len(t, summaries, 3)

	assert.Equal(t, "https://www.hespress.com/first-1001.html", summaries[0].URL)
	assert.Equal(t, "العنوان الأول", summaries[0].Title)
	require.NotNil(t, summaries[0].Category)
	assert.Equal(t, "سياسة", *summaries[0].Category)
	require.NotNil(t, summaries[0].RawDateText)
	assert.Equal(t, "الأحد 13 غشت 2023", *summaries[0].RawDateText)

	assert.Equal(t, "https://www.hespress.com/second-1002.html", summaries[1].URL)
	assert.Nil(t, summaries[1].Category)
	assert.Nil(t, summaries[1].RawDateText)

	assert.Equal(t, "https://www.hespress.com/third-1003.html", summaries[2].URL)
}

func TestParseListing_EmptyHref(t *testing.T) {
	html := `
	<div class="card">
		<a class="stretched-link" title="بدون رابط" href="   "></a>
	</div>`

	summaries := ParseListing(mustDocument(t, html))

	assert.Empty(t, summaries)
}

func TestParseListing_NoCards(t *testing.T) {
	summaries := ParseListing(mustDocument(t, `<div class="content"></div>`))

	assert.Empty(t, summaries)
}
