package sylow

import (
	"fmt"

	"github.com/groupforge/groupforge/pkg/group"
)

// maxTupleSpace bounds |G|^(p-1), the size of the product-one tuple
// space, to keep a single Cauchy invocation in memory-safe territory.
const maxTupleSpace = 1 << 26

// tupleSpace is the set V of length-p tuples of elements of g whose
// in-order product is the identity. A tuple is identified by the rank of
// its trailing p-1 entries in base |G|; the leading entry is forced to
// the inverse of their product, which makes the ranking a bijection and
// gives |V| = |G|^(p-1).
type tupleSpace struct {
	g    *group.Group
	p    int
	size int
}

// newTupleSpace builds the tuple space for g and p, rejecting spaces
// whose size would not fit the budget.
func newTupleSpace(g *group.Group, p int) (*tupleSpace, error) {
	size, ok := intPow(g.Order(), p-1, maxTupleSpace)
	if !ok {
		return nil, group.NewInvalidArgument(fmt.Sprintf(
			"product-one tuple space %d^%d exceeds the size budget", g.Order(), p-1)).
			WithCode(group.ErrCodeTooLarge).WithGroup(g.Name())
	}
	return &tupleSpace{g: g, p: p, size: size}, nil
}

// decode expands a rank into the full length-p tuple. The trailing p-1
// entries are the base-|G| digits of the rank, most significant first;
// the leading entry is the inverse of their product.
func (ts *tupleSpace) decode(rank int) []group.Element {
	n := ts.g.Order()
	tuple := make([]group.Element, ts.p)
	for i := ts.p - 1; i >= 1; i-- {
		tuple[i] = group.Element(rank % n)
		rank /= n
	}

	prod := ts.g.Identity()
	for _, e := range tuple[1:] {
		prod = ts.g.Op(prod, e)
	}
	tuple[0] = ts.g.Inv(prod)
	return tuple
}

// encode ranks a full tuple by its trailing p-1 entries. The leading
// entry is determined by them, so it does not participate.
func (ts *tupleSpace) encode(tuple []group.Element) int {
	n := ts.g.Order()
	rank := 0
	for _, e := range tuple[1:] {
		rank = rank*n + int(e)
	}
	return rank
}

// rotate returns the tuple shifted left by k positions. A cyclic
// rotation of a product-one tuple has product conjugate to the identity,
// hence again the identity, so rotation maps V to V.
func (ts *tupleSpace) rotate(tuple []group.Element, k int) []group.Element {
	p := len(tuple)
	out := make([]group.Element, p)
	for i := range out {
		out[i] = tuple[(i+k)%p]
	}
	return out
}

// productIsIdentity re-validates the membership invariant of V.
func (ts *tupleSpace) productIsIdentity(tuple []group.Element) bool {
	prod := ts.g.Identity()
	for _, e := range tuple {
		prod = ts.g.Op(prod, e)
	}
	return prod == ts.g.Identity()
}

// identityRank is the rank of the all-identity tuple, the fixed point of
// the rotation action that is always present.
func (ts *tupleSpace) identityRank() int {
	tuple := make([]group.Element, ts.p)
	for i := range tuple {
		tuple[i] = ts.g.Identity()
	}
	return ts.encode(tuple)
}

// isConstant reports whether every entry of the tuple is equal.
func isConstant(tuple []group.Element) bool {
	for _, e := range tuple[1:] {
		if e != tuple[0] {
			return false
		}
	}
	return true
}
