package group

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrivialAndWhole(t *testing.T) {
	t.Parallel()

	g, err := Symmetric(3)
	require.NoError(t, err)

	triv := Trivial(g)
	require.Equal(t, 1, triv.Order())
	require.True(t, triv.IsTrivial())
	require.True(t, triv.Contains(g.Identity()))

	whole := Whole(g)
	require.Equal(t, g.Order(), whole.Order())
	require.True(t, triv.IsSubsetOf(whole))
	require.False(t, whole.IsSubsetOf(triv))
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	g, err := Symmetric(3)
	require.NoError(t, err)

	transposition := mustElement(t, g, "(1 2)")
	cycle := mustElement(t, g, "(1 2 3)")

	h, err := Generate(g, transposition)
	require.NoError(t, err)
	require.Equal(t, 2, h.Order())

	a3, err := Generate(g, cycle)
	require.NoError(t, err)
	require.Equal(t, 3, a3.Order())

	// A transposition and a 3-cycle generate all of S3.
	all, err := Generate(g, transposition, cycle)
	require.NoError(t, err)
	require.Equal(t, 6, all.Order())

	// No generators yields the trivial subgroup.
	triv, err := Generate(g)
	require.NoError(t, err)
	require.True(t, triv.IsTrivial())
}

func TestFromElementsVerifiesClosure(t *testing.T) {
	t.Parallel()

	g, err := Symmetric(3)
	require.NoError(t, err)

	transposition := mustElement(t, g, "(1 2)")
	cycle := mustElement(t, g, "(1 2 3)")

	// {e, (1 2)} is closed.
	h, err := FromElements(g, []Element{g.Identity(), transposition})
	require.NoError(t, err)
	require.Equal(t, 2, h.Order())

	// Missing identity.
	_, err = FromElements(g, []Element{transposition})
	require.Error(t, err)
	require.True(t, IsInvalidArgument(err))

	// Not closed: (1 2)(1 2 3) escapes the subset.
	_, err = FromElements(g, []Element{g.Identity(), transposition, cycle})
	require.Error(t, err)
	require.True(t, IsInvalidArgument(err))

	// Out of range.
	_, err = FromElements(g, []Element{Element(99)})
	require.Error(t, err)
	require.True(t, IsInvalidArgument(err))
}

func TestLagrange(t *testing.T) {
	t.Parallel()

	g, err := Dihedral(4)
	require.NoError(t, err)

	for _, e := range g.Elements() {
		h, err := Generate(g, e)
		require.NoError(t, err)
		require.Zero(t, g.Order()%h.Order(),
			"|<%s>| = %d must divide |D4| = %d", g.Label(e), h.Order(), g.Order())
	}
}

func TestNormalizer(t *testing.T) {
	t.Parallel()

	g, err := Symmetric(3)
	require.NoError(t, err)

	// <(1 2)> is self-normalizing in S3.
	h, err := Generate(g, mustElement(t, g, "(1 2)"))
	require.NoError(t, err)
	n, err := h.Normalizer()
	require.NoError(t, err)
	require.Equal(t, 2, n.Order())
	require.True(t, h.IsSubsetOf(n), "normalizer always contains the subgroup")

	// A3 is normal, so its normalizer is all of S3.
	a3, err := Generate(g, mustElement(t, g, "(1 2 3)"))
	require.NoError(t, err)
	n, err = a3.Normalizer()
	require.NoError(t, err)
	require.Equal(t, 6, n.Order())
	require.True(t, a3.IsNormalIn(Whole(g)))
	require.False(t, h.IsNormalIn(Whole(g)))
}

func TestNormalizerInS4(t *testing.T) {
	t.Parallel()

	g, err := Symmetric(4)
	require.NoError(t, err)

	// The normalizer of <(1 2)> in S4 is <(1 2)> x <(3 4)>, order 4.
	h, err := Generate(g, mustElement(t, g, "(1 2)"))
	require.NoError(t, err)
	n, err := h.Normalizer()
	require.NoError(t, err)
	require.Equal(t, 4, n.Order())
	require.True(t, n.Contains(mustElement(t, g, "(3 4)")))
}
