package query_test

import (
	"errors"
	"testing"

	"github.com/lestrrat-go/xmlc14n/query"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleChildStep(t *testing.T) {
	expr, err := query.Parse("foo", nil)
	require.NoError(t, err)
	require.Len(t, expr.Paths, 1)
	require.Len(t, expr.Paths[0].Steps, 1)
	require.Equal(t, query.AxisChild, expr.Paths[0].Steps[0].Axis)
	require.Equal(t, "foo", expr.Paths[0].Steps[0].Test.Local)
}

func TestParseMultiStepPath(t *testing.T) {
	expr, err := query.Parse("foo/bar", nil)
	require.NoError(t, err)
	require.Len(t, expr.Paths[0].Steps, 2)
	require.Equal(t, "foo", expr.Paths[0].Steps[0].Test.Local)
	require.Equal(t, "bar", expr.Paths[0].Steps[1].Test.Local)
}

func TestParseDescendantShorthand(t *testing.T) {
	expr, err := query.Parse("//foo", nil)
	require.NoError(t, err)
	steps := expr.Paths[0].Steps
	require.Len(t, steps, 2)
	require.Equal(t, query.AxisDescendantOrSelf, steps[0].Axis)
	require.True(t, steps[0].Test.Kind.IsSet(query.KindAny))
	require.Equal(t, query.AxisChild, steps[1].Axis)
	require.Equal(t, "foo", steps[1].Test.Local)
}

func TestParseExplicitAxis(t *testing.T) {
	expr, err := query.Parse("descendant::foo", nil)
	require.NoError(t, err)
	require.Equal(t, query.AxisDescendant, expr.Paths[0].Steps[0].Axis)
}

func TestParseAttributeShorthand(t *testing.T) {
	expr, err := query.Parse("@id", nil)
	require.NoError(t, err)
	step := expr.Paths[0].Steps[0]
	require.Equal(t, query.AxisAttribute, step.Axis)
	require.Equal(t, "id", step.Test.Local)
}

func TestParseNamespaceAxis(t *testing.T) {
	expr, err := query.Parse("namespace::*", nil)
	require.NoError(t, err)
	step := expr.Paths[0].Steps[0]
	require.Equal(t, query.AxisNamespace, step.Axis)
	require.True(t, step.Test.Any)
}

func TestParseSelfDot(t *testing.T) {
	expr, err := query.Parse(".", nil)
	require.NoError(t, err)
	require.Equal(t, query.AxisSelf, expr.Paths[0].Steps[0].Axis)
}

func TestParseWildcard(t *testing.T) {
	expr, err := query.Parse("*", nil)
	require.NoError(t, err)
	require.True(t, expr.Paths[0].Steps[0].Test.Any)
}

func TestParseQualifiedName(t *testing.T) {
	expr, err := query.Parse("ns:foo", map[string]string{"ns": "urn:example"})
	require.NoError(t, err)
	test := expr.Paths[0].Steps[0].Test
	require.Equal(t, "foo", test.Local)
	require.True(t, test.NamespaceSpecified)
	require.Equal(t, "urn:example", test.URI)
}

func TestParsePrefixWildcard(t *testing.T) {
	expr, err := query.Parse("ns:*", map[string]string{"ns": "urn:example"})
	require.NoError(t, err)
	test := expr.Paths[0].Steps[0].Test
	require.Equal(t, "*", test.Local)
	require.Equal(t, "urn:example", test.URI)
}

func TestParseUndeclaredPrefixFails(t *testing.T) {
	_, err := query.Parse("ns:foo", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, query.ErrInvalidXPath))
}

func TestParseNodeKindTests(t *testing.T) {
	for _, tc := range []struct {
		expr string
		kind query.NodeKind
	}{
		{"node()", query.KindAny},
		{"text()", query.KindText},
		{"comment()", query.KindComment},
		{"processing-instruction()", query.KindPI},
	} {
		expr, err := query.Parse(tc.expr, nil)
		require.NoError(t, err, tc.expr)
		require.True(t, expr.Paths[0].Steps[0].Test.Kind.IsSet(tc.kind), tc.expr)
	}
}

func TestParseUnionOfPaths(t *testing.T) {
	expr, err := query.Parse("foo|bar", nil)
	require.NoError(t, err)
	require.Len(t, expr.Paths, 2)
	require.Equal(t, "foo", expr.Paths[0].Steps[0].Test.Local)
	require.Equal(t, "bar", expr.Paths[1].Steps[0].Test.Local)
}

func TestParseRejectsLeadingSlash(t *testing.T) {
	_, err := query.Parse("/foo", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, query.ErrInvalidXPath))
}

func TestParseRejectsPredicates(t *testing.T) {
	_, err := query.Parse("foo[1]", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, query.ErrInvalidXPath))
}

func TestParseRejectsUnsupportedFunction(t *testing.T) {
	_, err := query.Parse("count(foo)", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, query.ErrInvalidXPath))
}

func TestParseRejectsDisallowedAxis(t *testing.T) {
	_, err := query.Parse("parent::foo", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, query.ErrInvalidXPath))
}

func TestParseRejectsAttributeStepNotFinal(t *testing.T) {
	_, err := query.Parse("@id/foo", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, query.ErrInvalidXPath))
}

func TestParseRejectsEmptyExpression(t *testing.T) {
	_, err := query.Parse("   ", nil)
	require.Error(t, err)
}

func TestParseRejectsParentAxisShorthand(t *testing.T) {
	_, err := query.Parse("..", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, query.ErrInvalidXPath))
}
