package group

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustElement resolves an element by label, failing the test otherwise.
func mustElement(t *testing.T, g *Group, label string) Element {
	t.Helper()
	e, ok := g.ElementByLabel(label)
	require.True(t, ok, "no element labeled %q in %s", label, g.Name())
	return e
}

func TestCyclic(t *testing.T) {
	t.Parallel()

	g, err := Cyclic(6)
	require.NoError(t, err)
	require.Equal(t, 6, g.Order())
	require.Equal(t, Element(0), g.Identity())

	require.Equal(t, Element(5), g.Op(2, 3))
	require.Equal(t, Element(1), g.Op(4, 3))
	require.Equal(t, Element(4), g.Inv(2))
	require.Equal(t, Element(0), g.Inv(0))

	require.Equal(t, 1, g.ElementOrder(0))
	require.Equal(t, 6, g.ElementOrder(1))
	require.Equal(t, 3, g.ElementOrder(2))
	require.Equal(t, 2, g.ElementOrder(3))

	require.NoError(t, g.Validate())
}

func TestCyclicRejectsNonPositiveOrder(t *testing.T) {
	t.Parallel()

	_, err := Cyclic(0)
	require.Error(t, err)
	require.True(t, IsInvalidArgument(err))
}

func TestSymmetric(t *testing.T) {
	t.Parallel()

	g, err := Symmetric(3)
	require.NoError(t, err)
	require.Equal(t, 6, g.Order())
	require.Equal(t, "e", g.Label(g.Identity()))

	// S3 has one identity, three transpositions, two 3-cycles.
	var orders []int
	for _, e := range g.Elements() {
		orders = append(orders, g.ElementOrder(e))
	}
	sort.Ints(orders)
	require.Equal(t, []int{1, 2, 2, 2, 3, 3}, orders)

	require.NoError(t, g.Validate())
}

func TestSymmetricComposition(t *testing.T) {
	t.Parallel()

	g, err := Symmetric(3)
	require.NoError(t, err)

	a := mustElement(t, g, "(1 2)")
	b := mustElement(t, g, "(2 3)")
	// (1 2) after (2 3) sends 1->2, 2->... composition must be a 3-cycle.
	require.Equal(t, 3, g.ElementOrder(g.Op(a, b)))
	// Transpositions are involutions.
	require.Equal(t, g.Identity(), g.Op(a, a))
	require.Equal(t, a, g.Inv(a))
}

func TestSymmetricRejectsLargeDegree(t *testing.T) {
	t.Parallel()

	_, err := Symmetric(9)
	require.Error(t, err)
	require.True(t, IsInvalidArgument(err))
}

func TestDihedral(t *testing.T) {
	t.Parallel()

	g, err := Dihedral(4)
	require.NoError(t, err)
	require.Equal(t, 8, g.Order())

	r := mustElement(t, g, "r")
	s := mustElement(t, g, "s")
	require.Equal(t, 4, g.ElementOrder(r))
	require.Equal(t, 2, g.ElementOrder(s))

	// The defining relation: s*r*s = r^-1.
	require.Equal(t, g.Inv(r), g.Op(g.Op(s, r), s))

	require.NoError(t, g.Validate())
}

func TestProduct(t *testing.T) {
	t.Parallel()

	z2, err := Cyclic(2)
	require.NoError(t, err)
	z3, err := Cyclic(3)
	require.NoError(t, err)

	g, err := Product(z2, z3)
	require.NoError(t, err)
	require.Equal(t, 6, g.Order())
	require.NoError(t, g.Validate())

	// (1,1) has order lcm(2,3) = 6, so Z2 x Z3 is cyclic of order 6.
	e := mustElement(t, g, "(1,1)")
	require.Equal(t, 6, g.ElementOrder(e))
}

func TestFromTableKleinFour(t *testing.T) {
	t.Parallel()

	labels := []string{"e", "a", "b", "c"}
	rows := [][]string{
		{"e", "a", "b", "c"},
		{"a", "e", "c", "b"},
		{"b", "c", "e", "a"},
		{"c", "b", "a", "e"},
	}

	g, err := FromTable("V4", labels, rows)
	require.NoError(t, err)
	require.Equal(t, 4, g.Order())
	require.Equal(t, "e", g.Label(g.Identity()))
	for _, e := range g.Elements() {
		require.Equal(t, e, g.Inv(e), "every Klein four element is self-inverse")
	}
	require.NoError(t, g.Validate())
}

func TestFromTableRejectsBadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		labels []string
		rows   [][]string
	}{
		{
			name:   "empty",
			labels: nil,
			rows:   nil,
		},
		{
			name:   "row count mismatch",
			labels: []string{"e", "a"},
			rows:   [][]string{{"e", "a"}},
		},
		{
			name:   "unknown label",
			labels: []string{"e", "a"},
			rows:   [][]string{{"e", "a"}, {"a", "x"}},
		},
		{
			name:   "duplicate label",
			labels: []string{"e", "e"},
			rows:   [][]string{{"e", "e"}, {"e", "e"}},
		},
		{
			name:   "no identity",
			labels: []string{"a", "b"},
			rows:   [][]string{{"b", "a"}, {"a", "b"}},
		},
		{
			// Left-identity only at e, but b*a breaks associativity
			// with no inverse structure.
			name:   "not associative",
			labels: []string{"e", "a", "b"},
			rows: [][]string{
				{"e", "a", "b"},
				{"a", "e", "e"},
				{"b", "e", "e"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := FromTable(tc.name, tc.labels, tc.rows)
			require.Error(t, err)
			require.True(t, IsInvalidArgument(err), "got %v", err)
		})
	}
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	inv := NewInvalidArgument("p must be prime").WithCode(ErrCodeNotPrime).WithOperation("element-of-order")
	require.True(t, IsInvalidArgument(inv))
	require.False(t, IsUnsatisfiable(inv))
	require.Contains(t, inv.Error(), "invalid_argument")
	require.Contains(t, inv.Error(), "element-of-order")

	unsat := NewUnsatisfiable("5 does not divide 8").WithCode(ErrCodeNotDivisible).WithGroup("D4")
	require.True(t, IsUnsatisfiable(unsat))
	require.Contains(t, unsat.Error(), "D4")

	internal := NewInternal("congruence fails").WithCode(ErrCodeInvariant)
	require.True(t, IsInternal(internal))
}
