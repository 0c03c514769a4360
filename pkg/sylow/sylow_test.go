package sylow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groupforge/groupforge/pkg/group"
)

// requireSubgroupOf asserts that h is a subgroup of g of the given
// order: closed under the operation and inverse, containing the
// identity.
func requireSubgroupOf(t *testing.T, g *group.Group, h *group.Subgroup, order int) {
	t.Helper()
	require.Equal(t, order, h.Order())
	require.True(t, h.Contains(g.Identity()))
	for _, a := range h.Elements() {
		require.True(t, h.Contains(g.Inv(a)))
		for _, b := range h.Elements() {
			require.True(t, h.Contains(g.Op(a, b)))
		}
	}
}

func TestSubgroupOfOrderBase(t *testing.T) {
	t.Parallel()

	// n = 0 returns the trivial subgroup for any group and prime.
	for _, build := range []func() (*group.Group, error){
		func() (*group.Group, error) { return group.Cyclic(6) },
		func() (*group.Group, error) { return group.Symmetric(4) },
		func() (*group.Group, error) { return group.Dihedral(5) },
	} {
		g, err := build()
		require.NoError(t, err)
		for _, p := range []int{2, 3, 5, 7} {
			h, err := SubgroupOfOrder(context.Background(), g, p, 0)
			require.NoError(t, err)
			require.True(t, h.IsTrivial())
		}
	}
}

func TestSylowSubgroupsOfS4(t *testing.T) {
	t.Parallel()

	g, err := group.Symmetric(4)
	require.NoError(t, err)

	// |S4| = 24 = 2^3 * 3.
	for n := 0; n <= 3; n++ {
		h, err := SubgroupOfOrder(context.Background(), g, 2, n)
		require.NoError(t, err)
		requireSubgroupOf(t, g, h, 1<<n)
	}

	h, err := SubgroupOfOrder(context.Background(), g, 3, 1)
	require.NoError(t, err)
	requireSubgroupOf(t, g, h, 3)
	for _, a := range h.Elements() {
		if a != g.Identity() {
			require.Equal(t, 3, g.ElementOrder(a), "an order-3 subgroup is generated by a 3-cycle")
		}
	}
}

func TestSylowSubgroupTower(t *testing.T) {
	t.Parallel()

	// Orders along the induction: each step multiplies by p, and by
	// Lagrange every produced order divides |G|.
	g, err := group.Dihedral(6) // order 12 = 2^2 * 3
	require.NoError(t, err)

	for n := 0; n <= 2; n++ {
		h, err := SubgroupOfOrder(context.Background(), g, 2, n)
		require.NoError(t, err)
		requireSubgroupOf(t, g, h, 1<<n)
		require.Zero(t, g.Order()%h.Order())
	}

	h, err := SubgroupOfOrder(context.Background(), g, 3, 1)
	require.NoError(t, err)
	requireSubgroupOf(t, g, h, 3)
}

func TestSubgroupOfOrderFullGroup(t *testing.T) {
	t.Parallel()

	// When p^n = |G| the result has the cardinality of G itself.
	g, err := group.Cyclic(8)
	require.NoError(t, err)
	h, err := SubgroupOfOrder(context.Background(), g, 2, 3)
	require.NoError(t, err)
	requireSubgroupOf(t, g, h, 8)

	d4, err := group.Dihedral(4)
	require.NoError(t, err)
	h, err = SubgroupOfOrder(context.Background(), d4, 2, 3)
	require.NoError(t, err)
	requireSubgroupOf(t, d4, h, 8)
}

func TestSubgroupOfOrderAbelian(t *testing.T) {
	t.Parallel()

	z2, err := group.Cyclic(2)
	require.NoError(t, err)
	z4, err := group.Cyclic(4)
	require.NoError(t, err)
	g, err := group.Product(z2, z4) // order 8
	require.NoError(t, err)

	for n := 0; n <= 3; n++ {
		h, err := SubgroupOfOrder(context.Background(), g, 2, n)
		require.NoError(t, err)
		requireSubgroupOf(t, g, h, 1<<n)
	}
}

func TestSubgroupOfOrderRejectsComposite(t *testing.T) {
	t.Parallel()

	g, err := group.Symmetric(4)
	require.NoError(t, err)

	_, err = SubgroupOfOrder(context.Background(), g, 4, 1)
	require.Error(t, err)
	require.True(t, group.IsInvalidArgument(err))
}

func TestSubgroupOfOrderRejectsNonDivisor(t *testing.T) {
	t.Parallel()

	g, err := group.Dihedral(4) // order 8
	require.NoError(t, err)

	_, err = SubgroupOfOrder(context.Background(), g, 5, 1)
	require.Error(t, err)
	require.True(t, group.IsUnsatisfiable(err))

	// p divides |G| but p^n does not.
	_, err = SubgroupOfOrder(context.Background(), g, 2, 4)
	require.Error(t, err)
	require.True(t, group.IsUnsatisfiable(err))
}

func TestSubgroupOfOrderRejectsNegativeExponent(t *testing.T) {
	t.Parallel()

	g, err := group.Cyclic(6)
	require.NoError(t, err)

	_, err = SubgroupOfOrder(context.Background(), g, 2, -1)
	require.Error(t, err)
	require.True(t, group.IsInvalidArgument(err))
}

func TestSubgroupOfOrderHonorsCancellation(t *testing.T) {
	t.Parallel()

	g, err := group.Symmetric(4)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = SubgroupOfOrder(ctx, g, 2, 3)
	require.ErrorIs(t, err, context.Canceled)
}

func TestIsPrime(t *testing.T) {
	t.Parallel()

	primes := []int{2, 3, 5, 7, 11, 13, 97}
	composites := []int{-3, 0, 1, 4, 6, 8, 9, 91}
	for _, p := range primes {
		require.True(t, isPrime(p), "%d is prime", p)
	}
	for _, c := range composites {
		require.False(t, isPrime(c), "%d is not prime", c)
	}
}

func TestIntPow(t *testing.T) {
	t.Parallel()

	v, ok := intPow(2, 10, 1<<20)
	require.True(t, ok)
	require.Equal(t, 1024, v)

	v, ok = intPow(7, 0, 10)
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = intPow(720, 4, maxTupleSpace)
	require.False(t, ok)
}
