package wikitext

import (
	"fmt"
	"regexp"
	"strings"
)

// Origin resolves site-relative hrefs found in cell markup.
const Origin = "https://wiki.guildwars.com"

var (
	hrefAnchorRe = regexp.MustCompile(`<a\s+[^>]*href="([^"]+)"[^>]*>(.+?)</a>`)
	anchorRe     = regexp.MustCompile(`<a\s+[^>]*>(.+?)</a>`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	portableRe   = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)
)

// ConvertLink rewrites the first anchor in cell markup as [text](url).
// Site-relative hrefs are resolved against Origin, and literal ")" in the
// url is encoded as %29 so the bracket syntax stays unambiguous. Text
// after the closing anchor tag (a multiplier suffix, usually) is
// tag-stripped and appended after a space. Markup with no anchor at all
// is returned tag-stripped.
func ConvertLink(html string) string {
	loc := hrefAnchorRe.FindStringSubmatchIndex(html)
	if loc == nil {
		return tagRe.ReplaceAllString(html, "")
	}

	url := strings.ReplaceAll(html[loc[2]:loc[3]], ")", "%29")
	if strings.HasPrefix(url, "/") {
		url = Origin + url
	}
	text := html[loc[4]:loc[5]]

	suffix := strings.TrimSpace(html[loc[1]:])
	if suffix == "" {
		return fmt.Sprintf("[%s](%s)", text, url)
	}
	return fmt.Sprintf("[%s](%s) %s", text, url, tagRe.ReplaceAllString(suffix, ""))
}

// StripLink keeps only the first anchor's inner text, discarding its
// target. Trailing-suffix and no-anchor handling match ConvertLink.
func StripLink(html string) string {
	loc := anchorRe.FindStringSubmatchIndex(html)
	if loc == nil {
		return tagRe.ReplaceAllString(html, "")
	}

	text := html[loc[2]:loc[3]]

	suffix := strings.TrimSpace(html[loc[1]:])
	if suffix == "" {
		return text
	}
	return fmt.Sprintf("%s %s", text, tagRe.ReplaceAllString(suffix, ""))
}

// StripLinks reduces every [text](url) in text to its anchor text and
// removes any remaining inline tags. Used by plain-text rendering.
func StripLinks(text string) string {
	stripped := portableRe.ReplaceAllString(text, "$1")
	return tagRe.ReplaceAllString(stripped, "")
}

// HTMLLinks converts every [text](url) in text to an inline HTML anchor.
func HTMLLinks(text string) string {
	return portableRe.ReplaceAllString(text, `<a href="$2">$1</a>`)
}
