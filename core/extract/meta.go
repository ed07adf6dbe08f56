// ABOUTME: Head parsing helpers pulling author/description/keywords from a document
// ABOUTME: Also decides which URL schemes are off limits for extraction

package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tabclip-api/core/interfaces"
)

// privilegedSchemes are URL schemes the browser forbids script injection
// into; tabs on these never reach the extractor.
var privilegedSchemes = []string{
	"about:",
	"chrome:",
	"chrome-extension:",
	"moz-extension:",
	"edge:",
	"view-source:",
	"resource:",
	"data:",
	"javascript:",
	"file:",
}

// IsPrivilegedURL reports whether a URL's scheme forbids content extraction.
func IsPrivilegedURL(rawURL string) bool {
	lower := strings.ToLower(strings.TrimSpace(rawURL))
	for _, scheme := range privilegedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// parseHead fills meta from a document's head selection. Plain meta tags
// win; Open Graph and article tags serve as fallbacks.
func parseHead(head *goquery.Selection, meta *interfaces.PageMetadata) {
	head.Find("meta").Each(func(_ int, s *goquery.Selection) {
		content := strings.TrimSpace(s.AttrOr("content", ""))
		if content == "" {
			return
		}

		name := strings.ToLower(s.AttrOr("name", ""))
		property := strings.ToLower(s.AttrOr("property", ""))

		switch name {
		case "author":
			if meta.Author == "" {
				meta.Author = content
			}
		case "description":
			if meta.Description == "" {
				meta.Description = content
			}
		case "keywords":
			if meta.Keywords == "" {
				meta.Keywords = content
			}
		}

		switch property {
		case "og:description":
			if meta.Description == "" {
				meta.Description = content
			}
		case "article:author", "og:article:author":
			if meta.Author == "" {
				meta.Author = content
			}
		}
	})
}

// complete reports whether every field a format could ask for is populated.
func complete(meta *interfaces.PageMetadata) bool {
	return meta.Author != "" && meta.Description != "" && meta.Keywords != ""
}
