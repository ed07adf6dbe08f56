// ABOUTME: Pure text-escaping functions for HTML and Markdown renderings
// ABOUTME: Callers must escape raw text exactly once; re-application double-escapes

package format

import (
	"strings"
	"unicode/utf8"
)

// markdownSpecials is the fixed character set escaped in Markdown body text.
const markdownSpecials = "-!\"#$%&'()*+,./:;<=>?@^_`{|}~[\\]"

// markdownLinkTitleSpecials is the subset unsafe inside a Markdown
// link-title attribute.
const markdownLinkTitleSpecials = `"'()&\`

// EscapeHTML replaces &, ", < and > with their entity forms. The ampersand
// is replaced first so the entities introduced here are not themselves
// re-escaped within one application. Applying EscapeHTML to already-escaped
// text double-escapes it.
func EscapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, `"`, "&quot;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// EscapeMarkdown prefixes every Markdown-special character with a backslash.
// Not idempotent: escaping twice double-escapes the backslashes.
func EscapeMarkdown(text string) string {
	return escapeSet(text, markdownSpecials)
}

// EscapeMarkdownLinkTitle escapes only the characters unsafe inside a
// Markdown link title.
func EscapeMarkdownLinkTitle(text string) string {
	return escapeSet(text, markdownLinkTitleSpecials)
}

// escapeSet backslash-prefixes every rune of text that appears in set.
func escapeSet(text, set string) string {
	var sb strings.Builder
	sb.Grow(len(text) * 2)
	for _, r := range text {
		if r < utf8.RuneSelf && strings.ContainsRune(set, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
