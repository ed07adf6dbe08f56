// ABOUTME: Tokenizer for format strings producing a small tagged AST
// ABOUTME: Nodes are literals, fixed tokens, functional tokens, or nested tokens with argument groups

package format

import (
	"fmt"
	"strings"

	coreerrors "tabclip-api/core/errors"
)

type nodeKind int

const (
	nodeLiteral nodeKind = iota
	nodeFixed
	nodeFunctional
	nodeNested
)

// node is one element of a parsed format string. Fixed tokens keep their
// original source text so unrecognized names can be emitted verbatim.
type node struct {
	kind nodeKind
	text string // literal text, or the %...% source of a fixed token
	name string // token name as written

	// args holds the parsed sub-templates of a nested token's argument
	// groups; rawArgs holds the same groups as literal text, which is what
	// functional placeholders consume.
	args    [][]node
	rawArgs []string
}

var bracketPairs = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}

// isNestedName reports whether a token name denotes the indentation token,
// the only nested parameterized token.
func isNestedName(name string) bool {
	switch strings.ToUpper(name) {
	case "INDENT", "TST_INDENT":
		return true
	}
	return false
}

// parseTemplate tokenizes a format string. Text that does not form a valid
// token stays literal; a token name followed by an unterminated argument
// group is a TemplateSyntaxError.
func parseTemplate(s string) ([]node, error) {
	var nodes []node
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			nodes = append(nodes, node{kind: nodeLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(s) {
		if s[i] != '%' {
			lit.WriteByte(s[i])
			i++
			continue
		}

		tok, next, ok, err := parseToken(s, i)
		if err != nil {
			return nil, err
		}
		if !ok {
			lit.WriteByte('%')
			i++
			continue
		}

		flush()
		nodes = append(nodes, tok)
		i = next
	}
	flush()

	return nodes, nil
}

// parseToken attempts to read one token starting at the '%' at s[start].
// ok is false when the text is not token-shaped and the '%' should be
// treated as a literal.
func parseToken(s string, start int) (node, int, bool, error) {
	i := start + 1
	j := i
	for j < len(s) && isNameChar(s[j]) {
		j++
	}
	if j == i {
		return node{}, 0, false, nil
	}
	name := s[i:j]

	// Plain %NAME% token.
	if j < len(s) && s[j] == '%' {
		return node{kind: nodeFixed, name: name, text: s[start : j+1]}, j + 1, true, nil
	}

	// Token with argument groups: %NAME(arg)(arg)% and bracket variants.
	if j < len(s) && bracketPairs[s[j]] != 0 {
		var args [][]node
		var raws []string

		k := j
		for k < len(s) && bracketPairs[s[k]] != 0 {
			closer := bracketPairs[s[k]]
			// Single-level matching: the group ends at the first
			// occurrence of the closing bracket.
			rel := strings.IndexByte(s[k+1:], closer)
			if rel < 0 {
				return node{}, 0, false, &coreerrors.TemplateSyntaxError{
					Message: fmt.Sprintf("unbalanced %q in arguments of %%%s", string(s[k]), name),
				}
			}
			raw := s[k+1 : k+1+rel]
			sub, err := parseTemplate(raw)
			if err != nil {
				return node{}, 0, false, err
			}
			args = append(args, sub)
			raws = append(raws, raw)
			k = k + 1 + rel + 1
		}

		if k >= len(s) || s[k] != '%' {
			return node{}, 0, false, &coreerrors.TemplateSyntaxError{
				Message: fmt.Sprintf("missing closing %% after arguments of %%%s", name),
			}
		}

		kind := nodeFunctional
		if isNestedName(name) {
			kind = nodeNested
		}
		return node{kind: kind, name: name, args: args, rawArgs: raws}, k + 1, true, nil
	}

	return node{}, 0, false, nil
}

// walkNodes visits every node including argument sub-templates, stopping
// early when visit returns false.
func walkNodes(nodes []node, visit func(n node) bool) bool {
	for _, n := range nodes {
		if !visit(n) {
			return false
		}
		for _, g := range n.args {
			if !walkNodes(g, visit) {
				return false
			}
		}
	}
	return true
}
