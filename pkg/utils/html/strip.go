// ABOUTME: HTML utilities deriving the plain-text rendering from a rich-text fragment
// ABOUTME: Strips tags, turns line-break elements into separators, decodes common entities

package html

import "strings"

// blockBreakers are elements whose boundary becomes a separator when the
// fragment is flattened to plain text.
var blockBreakers = []string{"br", "p", "div", "li", "tr"}

// ToPlainText flattens an HTML fragment into plain text: line-break-ish
// element boundaries become sep, remaining tags are dropped, and common
// entities are decoded. The input is a fragment the placeholder engine
// produced itself, so a full HTML parser is not needed.
func ToPlainText(fragment, sep string) string {
	text := fragment

	// Normalize break-introducing tags into the separator before tags are
	// stripped, so "<b>a</b><br />b" keeps its line structure.
	lower := strings.ToLower(text)
	var sb strings.Builder
	i := 0
	for i < len(text) {
		if text[i] != '<' {
			sb.WriteByte(text[i])
			i++
			continue
		}

		end := strings.IndexByte(text[i:], '>')
		if end < 0 {
			// Unterminated tag: keep the rest verbatim.
			sb.WriteString(text[i:])
			break
		}
		tag := lower[i+1 : i+end]
		if breaksLine(tag) {
			sb.WriteString(sep)
		}
		i += end + 1
	}

	return strings.TrimSpace(DecodeEntities(sb.String()))
}

// breaksLine reports whether a raw tag body (without angle brackets) opens
// or closes a block-level element.
func breaksLine(tag string) bool {
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "/")
	for _, name := range blockBreakers {
		if tag == name || strings.HasPrefix(tag, name+" ") || strings.HasPrefix(tag, name+"/") {
			return true
		}
	}
	return false
}

// DecodeEntities decodes the entities the placeholder engine and common
// pages emit.
func DecodeEntities(text string) string {
	replacer := strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&apos;", "'",
		"&nbsp;", " ",
		"&amp;", "&", // last so the others are not re-introduced
	)
	return replacer.Replace(text)
}
