package c14n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlgorithmURI(t *testing.T) {
	require.Equal(t, CanonicalURI, Canonical.URI())
	require.Equal(t, CanonicalWithCommentsURI, CanonicalWithComments.URI())
	require.Equal(t, ExclusiveURI, Exclusive.URI())
	require.Equal(t, ExclusiveWithCommentsURI, ExclusiveWithComments.URI())
	require.Equal(t, "", Algorithm(99).URI())
}

func TestAlgorithmPredicates(t *testing.T) {
	require.False(t, Canonical.WithComments())
	require.False(t, Canonical.Exclusive())

	require.True(t, CanonicalWithComments.WithComments())
	require.False(t, CanonicalWithComments.Exclusive())

	require.False(t, Exclusive.WithComments())
	require.True(t, Exclusive.Exclusive())

	require.True(t, ExclusiveWithComments.WithComments())
	require.True(t, ExclusiveWithComments.Exclusive())
}

func TestAlgorithmFromURI(t *testing.T) {
	algo, ok := algorithmFromURI(ExclusiveURI)
	require.True(t, ok)
	require.Equal(t, Exclusive, algo)

	_, ok = algorithmFromURI("http://example.com/not-an-algorithm")
	require.False(t, ok)
}

func TestAlgorithmFor(t *testing.T) {
	require.Equal(t, Canonical, algorithmFor(false, false))
	require.Equal(t, CanonicalWithComments, algorithmFor(true, false))
	require.Equal(t, Exclusive, algorithmFor(false, true))
	require.Equal(t, ExclusiveWithComments, algorithmFor(true, true))
}
