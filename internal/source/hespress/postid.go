package hespress

import "regexp"

// Article URLs end with "-<digits>.html"; the digits are the post id.
var postIDPattern = regexp.MustCompile(`-(\d+)\.html$`)

// PostID extracts the numeric post id from an article URL, e.g.
// ".../some-headline-66055.html" yields "66055". It returns the empty
// string when the URL does not match, meaning no stable id is available.
func PostID(articleURL string) string {
	m := postIDPattern.FindStringSubmatch(articleURL)
	if m == nil {
		return ""
	}
	return m[1]
}
