package sylow

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/groupforge/groupforge/pkg/group"
)

func TestElementOfOrderCyclic6(t *testing.T) {
	t.Parallel()

	g, err := group.Cyclic(6)
	require.NoError(t, err)

	// p = 2: the only element of order 2 in Z6 is 3.
	x, err := ElementOfOrder(context.Background(), g, 2)
	require.NoError(t, err)
	require.Equal(t, group.Element(3), x)
	require.Equal(t, 2, g.ElementOrder(x))

	// p = 3: the order-3 elements are 2 and 4.
	x, err = ElementOfOrder(context.Background(), g, 3)
	require.NoError(t, err)
	require.Contains(t, []group.Element{2, 4}, x)
	require.Equal(t, 3, g.ElementOrder(x))
}

func TestElementOfOrderExactness(t *testing.T) {
	t.Parallel()

	// The returned element must have order exactly p: not the identity,
	// x^p = e, and no smaller positive power reaching e.
	builds := []struct {
		name  string
		build func() (*group.Group, error)
		p     int
	}{
		{"S3 p=2", func() (*group.Group, error) { return group.Symmetric(3) }, 2},
		{"S3 p=3", func() (*group.Group, error) { return group.Symmetric(3) }, 3},
		{"S4 p=2", func() (*group.Group, error) { return group.Symmetric(4) }, 2},
		{"S4 p=3", func() (*group.Group, error) { return group.Symmetric(4) }, 3},
		{"D4 p=2", func() (*group.Group, error) { return group.Dihedral(4) }, 2},
		{"D5 p=5", func() (*group.Group, error) { return group.Dihedral(5) }, 5},
		{"Z12 p=2", func() (*group.Group, error) { return group.Cyclic(12) }, 2},
		{"Z12 p=3", func() (*group.Group, error) { return group.Cyclic(12) }, 3},
	}

	for _, tc := range builds {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := tc.build()
			require.NoError(t, err)

			x, err := ElementOfOrder(context.Background(), g, tc.p)
			require.NoError(t, err)
			require.NotEqual(t, g.Identity(), x)
			require.Equal(t, g.Identity(), g.Power(x, tc.p))
			for k := 1; k < tc.p; k++ {
				require.NotEqual(t, g.Identity(), g.Power(x, k),
					"x^%d must not reach the identity before p", k)
			}
		})
	}
}

func TestElementOfOrderKleinFour(t *testing.T) {
	t.Parallel()

	z2, err := group.Cyclic(2)
	require.NoError(t, err)
	v4, err := group.Product(z2, z2)
	require.NoError(t, err)

	x, err := ElementOfOrder(context.Background(), v4, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v4.ElementOrder(x))
}

func TestElementOfOrderRejectsComposite(t *testing.T) {
	t.Parallel()

	g, err := group.Cyclic(8)
	require.NoError(t, err)

	_, err = ElementOfOrder(context.Background(), g, 4)
	require.Error(t, err)
	require.True(t, group.IsInvalidArgument(err))

	_, err = ElementOfOrder(context.Background(), g, 1)
	require.Error(t, err)
	require.True(t, group.IsInvalidArgument(err))
}

func TestElementOfOrderRejectsNonDivisor(t *testing.T) {
	t.Parallel()

	g, err := group.Cyclic(8)
	require.NoError(t, err)

	_, err = ElementOfOrder(context.Background(), g, 5)
	require.Error(t, err)
	require.True(t, group.IsUnsatisfiable(err))
}

func TestElementOfOrderHonorsCancellation(t *testing.T) {
	t.Parallel()

	g, err := group.Symmetric(4)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = ElementOfOrder(ctx, g, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestConstructorWithLogger(t *testing.T) {
	t.Parallel()

	g, err := group.Cyclic(6)
	require.NoError(t, err)

	c := New(WithLogger(zerolog.Nop()))
	x, err := c.ElementOfOrder(context.Background(), g, 2)
	require.NoError(t, err)
	require.Equal(t, group.Element(3), x)
}

func TestTupleSpace(t *testing.T) {
	t.Parallel()

	g, err := group.Symmetric(3)
	require.NoError(t, err)
	space, err := newTupleSpace(g, 3)
	require.NoError(t, err)
	require.Equal(t, 36, space.size, "|V| = |G|^(p-1)")

	for rank := 0; rank < space.size; rank++ {
		tuple := space.decode(rank)
		require.Len(t, tuple, 3)
		require.True(t, space.productIsIdentity(tuple), "membership invariant at rank %d", rank)
		require.Equal(t, rank, space.encode(tuple), "decode/encode is a bijection")

		// Rotation preserves membership in V.
		for k := 1; k < 3; k++ {
			require.True(t, space.productIsIdentity(space.rotate(tuple, k)),
				"rotation by %d leaves V at rank %d", k, rank)
		}
	}
}

func TestTupleSpaceBudget(t *testing.T) {
	t.Parallel()

	g, err := group.Symmetric(6) // order 720
	require.NoError(t, err)

	_, err = newTupleSpace(g, 5) // 720^4 overflows the budget
	require.Error(t, err)
	require.True(t, group.IsInvalidArgument(err))
}
