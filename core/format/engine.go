// ABOUTME: Placeholder engine resolving format strings against a RenderContext
// ABOUTME: Recursive-descent evaluation with nested tokens before functional before fixed

package format

import (
	"strings"
	"time"

	coreerrors "tabclip-api/core/errors"
)

// placeholderFunc is a named functional placeholder. It receives the literal
// prefix and suffix argument strings and returns the replacement text, or an
// empty string when the underlying data is absent.
type placeholderFunc func(rc *RenderContext, prefix, suffix string) string

// renderState carries signals discovered while evaluating, currently only
// whether the rich-text marker was seen.
type renderState struct {
	rich bool
}

// Engine resolves format strings. It is stateless across Render calls and
// safe for concurrent use.
type Engine struct {
	funcs map[string]placeholderFunc
}

// NewEngine creates an engine with the built-in functional placeholders
// registered: the container name/title in plain and HTML-escaped renderings.
func NewEngine() *Engine {
	e := &Engine{funcs: make(map[string]placeholderFunc)}
	e.funcs["container_name"] = containerFunc(nil)
	e.funcs["container_title"] = containerFunc(nil)
	e.funcs["container_name_html"] = containerFunc(EscapeHTML)
	e.funcs["container_title_html"] = containerFunc(EscapeHTML)
	return e
}

// Render resolves format against rc. The second return value reports whether
// the format requested rich-text output via the %RT% marker; the marker
// itself never appears in the returned text. Errors are TemplateSyntaxError
// or UnknownFunctionError; recovery happens at the render-orchestrator
// boundary, not here.
func (e *Engine) Render(formatStr string, rc *RenderContext) (string, bool, error) {
	nodes, err := parseTemplate(formatStr)
	if err != nil {
		return "", false, err
	}

	st := &renderState{}
	out, err := e.eval(nodes, rc, st)
	if err != nil {
		return "", false, err
	}
	return out, st.rich, nil
}

// eval renders a node sequence. Argument groups of nested tokens are
// themselves evaluated against the same context before the token resolves.
func (e *Engine) eval(nodes []node, rc *RenderContext, st *renderState) (string, error) {
	var sb strings.Builder

	for _, n := range nodes {
		switch n.kind {
		case nodeLiteral:
			sb.WriteString(n.text)

		case nodeNested:
			args := make([]string, 0, len(n.args))
			for _, group := range n.args {
				rendered, err := e.eval(group, rc, st)
				if err != nil {
					return "", err
				}
				args = append(args, rendered)
			}
			sb.WriteString(indentText(rc.IndentLevel, args))

		case nodeFunctional:
			fn, ok := e.funcs[strings.ToLower(n.name)]
			if !ok {
				return "", &coreerrors.UnknownFunctionError{Name: n.name}
			}
			var prefix, suffix string
			if len(n.rawArgs) > 0 {
				prefix = n.rawArgs[0]
			}
			if len(n.rawArgs) > 1 {
				suffix = n.rawArgs[1]
			}
			sb.WriteString(fn(rc, prefix, suffix))

		case nodeFixed:
			if fn, ok := e.funcs[strings.ToLower(n.name)]; ok {
				// Group-less spelling of a functional placeholder:
				// no prefix or suffix around the value.
				sb.WriteString(fn(rc, "", ""))
			} else {
				sb.WriteString(fixedValue(n, rc, st))
			}
		}
	}

	return sb.String(), nil
}

// fixedValue resolves a %NAME% token, case-insensitively. Unknown names are
// emitted verbatim.
func fixedValue(n node, rc *RenderContext, st *renderState) string {
	switch strings.ToUpper(n.name) {
	case "URL":
		return rc.Tab.URL
	case "TITLE", "TEXT":
		return rc.Tab.Title
	case "TITLE_HTML":
		return EscapeHTML(rc.Tab.Title)
	case "TITLE_MD":
		return EscapeMarkdown(rc.Tab.Title)
	case "TITLE_MD_LINK_TITLE":
		return EscapeMarkdownLinkTitle(rc.Tab.Title)

	case "CONTAINER":
		return containerToken(rc, nil)
	case "CONTAINER_HTML":
		return containerToken(rc, EscapeHTML)
	case "CONTAINER_MD":
		return containerToken(rc, EscapeMarkdown)
	case "CONTAINER_MD_LINK_TITLE":
		return containerToken(rc, EscapeMarkdownLinkTitle)

	case "AUTHOR":
		return rc.Author
	case "AUTHOR_HTML":
		return EscapeHTML(rc.Author)
	case "AUTHOR_MD":
		return EscapeMarkdown(rc.Author)
	case "AUTHOR_MD_LINK_TITLE":
		return EscapeMarkdownLinkTitle(rc.Author)

	case "DESCRIPTION":
		return rc.Description
	case "DESCRIPTION_HTML":
		return EscapeHTML(rc.Description)
	case "DESCRIPTION_MD":
		return EscapeMarkdown(rc.Description)
	case "DESCRIPTION_MD_LINK_TITLE":
		return EscapeMarkdownLinkTitle(rc.Description)

	case "KEYWORDS":
		return rc.Keywords
	case "KEYWORDS_HTML":
		return EscapeHTML(rc.Keywords)
	case "KEYWORDS_MD":
		return EscapeMarkdown(rc.Keywords)
	case "KEYWORDS_MD_LINK_TITLE":
		return EscapeMarkdownLinkTitle(rc.Keywords)

	case "UTC_TIME":
		return rc.Now.UTC().Format(time.RFC3339)
	case "UTC_DATE":
		return rc.Now.UTC().Format("2006-01-02")
	case "UTC_TIME_HUMAN":
		return rc.Now.UTC().Format(time.RFC1123)
	case "LOCAL_TIME":
		return rc.Now.Format(time.RFC3339)
	case "LOCAL_DATE":
		return rc.Now.Format("2006-01-02")
	case "LOCAL_TIME_HUMAN":
		return rc.Now.Format(time.RFC1123)

	case "TAB":
		return "\t"
	case "EOL":
		return rc.LineFeed

	case "RT":
		// Marker only: signals rich output, contributes no text.
		st.rich = true
		return ""

	case "SELECTION", "BACKLINK", "BACKLINK_MD":
		// Reserved for future use.
		return ""

	default:
		if isNestedName(n.name) {
			// Zero-argument form of the indent token.
			return indentText(rc.IndentLevel, nil)
		}
		return n.text
	}
}

// containerToken renders the fixed container tokens: the (possibly escaped)
// label followed by the fixed separator, or nothing when the tab has no
// container.
func containerToken(rc *RenderContext, esc func(string) string) string {
	label := rc.Tab.ContainerName
	if label == "" {
		return ""
	}
	if esc != nil {
		label = esc(label)
	}
	return label + containerSeparator
}

// containerFunc builds a functional placeholder around the container label.
func containerFunc(esc func(string) string) placeholderFunc {
	return func(rc *RenderContext, prefix, suffix string) string {
		label := rc.Tab.ContainerName
		if label == "" {
			return ""
		}
		if esc != nil {
			label = esc(label)
		}
		return prefix + label + suffix
	}
}

// indentText renders the indentation token for the given level. With no
// argument groups the indent unit is two spaces; otherwise level i uses
// group i, with the last group repeated for deeper levels.
func indentText(level int, args []string) string {
	if level <= 0 {
		return ""
	}
	if len(args) == 0 {
		return strings.Repeat("  ", level)
	}

	var sb strings.Builder
	for i := 0; i < level; i++ {
		idx := i
		if idx >= len(args) {
			idx = len(args) - 1
		}
		sb.WriteString(args[idx])
	}
	return sb.String()
}

// RequiresPageMetadata reports whether the format references any
// author/description/keywords token, so the orchestrator can skip content
// extraction entirely when it is not needed.
func RequiresPageMetadata(formatStr string) bool {
	nodes, err := parseTemplate(formatStr)
	if err != nil {
		// Malformed formats still reach the engine per tab; err on the
		// side of extracting.
		upper := strings.ToUpper(formatStr)
		return strings.Contains(upper, "%AUTHOR") ||
			strings.Contains(upper, "%DESCRIPTION") ||
			strings.Contains(upper, "%KEYWORDS")
	}

	found := false
	walkNodes(nodes, func(n node) bool {
		if n.kind != nodeFixed {
			return true
		}
		name := strings.ToUpper(n.name)
		if strings.HasPrefix(name, "AUTHOR") ||
			strings.HasPrefix(name, "DESCRIPTION") ||
			strings.HasPrefix(name, "KEYWORDS") {
			found = true
			return false
		}
		return true
	})
	return found
}

// RequiresIndent reports whether the format contains an indent-sensitive
// token; when it does not, the indent calculator is skipped.
func RequiresIndent(formatStr string) bool {
	nodes, err := parseTemplate(formatStr)
	if err != nil {
		return false
	}

	found := false
	walkNodes(nodes, func(n node) bool {
		if n.kind == nodeNested || (n.kind == nodeFixed && isNestedName(n.name)) {
			found = true
			return false
		}
		return true
	})
	return found
}
