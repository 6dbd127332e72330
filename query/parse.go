package query

import (
	"fmt"
	"strings"
)

func xpathErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidXPath}, args...)...)
}

// Parse compiles expr against nsContext (prefix -> URI, used to resolve
// qualified name tests) into an Expression. expr must be a relative path
// with no leading single "/" (a leading "//" is read as a
// descendant-or-self step from the context element), no predicates, and
// no parenthesized functions other than the four node-kind tests.
func Parse(expr string, nsContext map[string]string) (Expression, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Expression{}, xpathErrorf("xpath cannot be empty")
	}
	if strings.HasPrefix(expr, "/") && !strings.HasPrefix(expr, "//") {
		return Expression{}, xpathErrorf("xpath must be a relative path: %s", expr)
	}
	if strings.ContainsAny(expr, "[]") {
		return Expression{}, xpathErrorf("xpath cannot use predicates: %s", expr)
	}

	parts := strings.Split(expr, "|")
	paths := make([]Path, 0, len(parts))
	for _, raw := range parts {
		part := strings.TrimSpace(raw)
		if part == "" {
			return Expression{}, xpathErrorf("xpath contains empty union branch: %s", expr)
		}
		path, err := parsePath(part, nsContext)
		if err != nil {
			return Expression{}, err
		}
		paths = append(paths, path)
	}
	return Expression{Paths: paths}, nil
}

func parsePath(expr string, nsContext map[string]string) (Path, error) {
	r := &tokenReader{input: expr}
	var path Path

	for {
		r.skipSpace()
		if r.atEnd() {
			if len(path.Steps) == 0 {
				return Path{}, xpathErrorf("xpath must contain at least one step: %s", expr)
			}
			return path, nil
		}

		if r.consumeDoubleSlash() {
			path.Steps = append(path.Steps, Step{Axis: AxisDescendantOrSelf, Test: NodeTest{Kind: KindAny}})
			continue
		}
		if r.consumeSlash() {
			if len(path.Steps) == 0 {
				return Path{}, xpathErrorf("xpath must be a relative path: %s", expr)
			}
			continue
		}

		step, err := parseStep(r.readToken(), nsContext)
		if err != nil {
			return Path{}, err
		}
		if len(path.Steps) > 0 {
			last := path.Steps[len(path.Steps)-1].Axis
			if last == AxisAttribute || last == AxisNamespace {
				return Path{}, xpathErrorf("xpath attribute or namespace step must be final: %s", expr)
			}
		}
		path.Steps = append(path.Steps, step)
	}
}

func parseStep(token string, nsContext map[string]string) (Step, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Step{}, xpathErrorf("xpath step is missing a node test")
	}
	if token == "." {
		return Step{Axis: AxisSelf, Test: NodeTest{Kind: KindAny}}, nil
	}
	if token == ".." {
		return Step{}, xpathErrorf("xpath cannot use the parent axis: %s", token)
	}

	if strings.HasPrefix(token, "@") {
		test, err := parseNodeTest(strings.TrimPrefix(token, "@"), nsContext)
		if err != nil {
			return Step{}, err
		}
		return Step{Axis: AxisAttribute, Test: test}, nil
	}

	if axisName, rest, ok := strings.Cut(token, "::"); ok {
		axis, err := axisFromName(axisName)
		if err != nil {
			return Step{}, err
		}
		test, err := parseNodeTest(rest, nsContext)
		if err != nil {
			return Step{}, err
		}
		return Step{Axis: axis, Test: test}, nil
	}

	test, err := parseNodeTest(token, nsContext)
	if err != nil {
		return Step{}, err
	}
	return Step{Axis: AxisChild, Test: test}, nil
}

func axisFromName(name string) (Axis, error) {
	switch strings.TrimSpace(name) {
	case "child":
		return AxisChild, nil
	case "descendant":
		return AxisDescendant, nil
	case "descendant-or-self":
		return AxisDescendantOrSelf, nil
	case "self":
		return AxisSelf, nil
	case "attribute":
		return AxisAttribute, nil
	case "namespace":
		return AxisNamespace, nil
	default:
		return 0, xpathErrorf("xpath uses disallowed axis '%s::'", name)
	}
}

func parseNodeTest(token string, nsContext map[string]string) (NodeTest, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return NodeTest{}, xpathErrorf("xpath step is missing a node test")
	}

	switch token {
	case "node()":
		return NodeTest{Kind: KindAny}, nil
	case "text()":
		return NodeTest{Kind: KindText}, nil
	case "comment()":
		return NodeTest{Kind: KindComment}, nil
	case "processing-instruction()":
		return NodeTest{Kind: KindPI}, nil
	}
	if strings.ContainsAny(token, "()") {
		return NodeTest{}, xpathErrorf("xpath uses an unsupported function: %s", token)
	}

	if token == "*" {
		return NodeTest{Any: true}, nil
	}

	if prefix, ok := strings.CutSuffix(token, ":*"); ok {
		uri, err := resolvePrefix(prefix, nsContext)
		if err != nil {
			return NodeTest{}, err
		}
		return NodeTest{Local: "*", URI: uri, NamespaceSpecified: true}, nil
	}

	if !isValidNameTestToken(token) {
		return NodeTest{}, xpathErrorf("xpath step has invalid name test %q", token)
	}

	if prefix, local, ok := strings.Cut(token, ":"); ok {
		uri, err := resolvePrefix(prefix, nsContext)
		if err != nil {
			return NodeTest{}, err
		}
		return NodeTest{Local: local, URI: uri, NamespaceSpecified: true}, nil
	}

	return NodeTest{Local: token}, nil
}

func resolvePrefix(prefix string, nsContext map[string]string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", xpathErrorf("xpath step has an empty prefix")
	}
	uri, ok := nsContext[prefix]
	if !ok {
		return "", xpathErrorf("xpath step uses undeclared prefix %q", prefix)
	}
	return uri, nil
}

func isValidNameTestToken(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9', r == '-', r == '.':
			if i == 0 {
				return false
			}
		case r == ':':
		default:
			return false
		}
	}
	return true
}

type tokenReader struct {
	input string
	pos   int
}

func (r *tokenReader) skipSpace() {
	for r.pos < len(r.input) && isXPathSpace(r.input[r.pos]) {
		r.pos++
	}
}

func (r *tokenReader) atEnd() bool {
	r.skipSpace()
	return r.pos >= len(r.input)
}

func (r *tokenReader) consumeDoubleSlash() bool {
	r.skipSpace()
	if r.pos+1 < len(r.input) && r.input[r.pos] == '/' && r.input[r.pos+1] == '/' {
		r.pos += 2
		return true
	}
	return false
}

func (r *tokenReader) consumeSlash() bool {
	r.skipSpace()
	if r.pos < len(r.input) && r.input[r.pos] == '/' {
		r.pos++
		return true
	}
	return false
}

func (r *tokenReader) readToken() string {
	r.skipSpace()
	start := r.pos
	for r.pos < len(r.input) {
		ch := r.input[r.pos]
		if isXPathSpace(ch) || ch == '/' {
			break
		}
		r.pos++
	}
	return strings.TrimSpace(r.input[start:r.pos])
}

func isXPathSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
