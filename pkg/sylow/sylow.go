package sylow

import (
	"context"
	"fmt"

	"github.com/groupforge/groupforge/pkg/action"
	"github.com/groupforge/groupforge/pkg/group"
)

// SubgroupOfOrder returns a subgroup of g with cardinality exactly p^n.
// It requires p prime and p^n dividing |G|; both are checked here,
// fail-fast.
//
// The construction is an explicit induction on the exponent. The base
// case is the trivial subgroup. Each step grows a subgroup H of order
// p^k to one of order p^(k+1): form the normalizer N of H and the
// quotient Q = N/H, establish p | |Q| through the counting argument on
// the left-multiplication action of H on the coset space G/H (whose
// fixed points are exactly the cosets of normalizing elements, i.e. Q),
// obtain an element of order p in Q from the Cauchy construction, and
// pull the subgroup it generates back through the projection.
func (c *Constructor) SubgroupOfOrder(ctx context.Context, g *group.Group, p, n int) (*group.Subgroup, error) {
	if !isPrime(p) {
		return nil, group.NewInvalidArgument(fmt.Sprintf("%d is not prime", p)).
			WithCode(group.ErrCodeNotPrime).WithOperation("subgroup-of-order")
	}
	if n < 0 {
		return nil, group.NewInvalidArgument(fmt.Sprintf("exponent must be non-negative, got %d", n)).
			WithOperation("subgroup-of-order")
	}
	target, ok := intPow(p, n, g.Order())
	if !ok || g.Order()%target != 0 {
		return nil, group.NewUnsatisfiable(fmt.Sprintf(
			"%d^%d does not divide the group order %d", p, n, g.Order())).
			WithCode(group.ErrCodeNotDivisible).WithGroup(g.Name()).
			WithOperation("subgroup-of-order")
	}

	h := group.Trivial(g)
	for k := 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		grown, err := c.growSubgroup(ctx, g, h, p)
		if err != nil {
			return nil, err
		}
		h = grown
		if c.recorder != nil {
			c.recorder.SylowStep()
		}

		c.logger.Debug().
			Str("group", g.Name()).
			Int("prime", p).
			Int("exponent", k+1).
			Int("order", h.Order()).
			Msg("extended p-subgroup")
	}

	if h.Order() != target {
		return nil, group.NewInternal(fmt.Sprintf(
			"constructed subgroup has order %d, want %d", h.Order(), target)).
			WithCode(group.ErrCodeInvariant).WithGroup(g.Name())
	}
	return h, nil
}

// growSubgroup performs one induction step, taking a p-subgroup h of g
// to a p-subgroup of p times its order.
func (c *Constructor) growSubgroup(ctx context.Context, g *group.Group, h *group.Subgroup, p int) (*group.Subgroup, error) {
	norm, err := h.Normalizer()
	if err != nil {
		return nil, err
	}
	quot, err := group.NewQuotient(norm, h)
	if err != nil {
		return nil, err
	}

	// Counting argument on H acting on G/H by left multiplication. A
	// coset xH is fixed exactly when x normalizes H, so the fixed-point
	// count must equal |N/H|; p then divides |Q| because p^(k+1) | |G|
	// and |G/H| ≡ |Q| (mod p).
	cosets, err := group.LeftCosets(group.Whole(g), h)
	if err != nil {
		return nil, err
	}
	leftMul := action.New(h.Elements(), g.Identity(), cosets.Size(), func(a group.Element, x int) int {
		return cosets.Index(g.Op(a, cosets.Rep(x)))
	})
	congruence, err := action.PGroupCongruence(ctx, leftMul, p)
	if err != nil {
		return nil, err
	}
	if congruence.FixedPoints != quot.Group().Order() {
		return nil, group.NewInternal(fmt.Sprintf(
			"coset action has %d fixed points, want |N/H| = %d",
			congruence.FixedPoints, quot.Group().Order())).
			WithCode(group.ErrCodeInvariant).WithGroup(g.Name())
	}
	if quot.Group().Order()%p != 0 {
		return nil, group.NewInternal(fmt.Sprintf(
			"%d does not divide the quotient order %d despite %s",
			p, quot.Group().Order(), congruence)).
			WithCode(group.ErrCodeInvariant).WithGroup(g.Name())
	}

	q, err := c.ElementOfOrder(ctx, quot.Group(), p)
	if err != nil {
		return nil, err
	}
	cyclic, err := group.Generate(quot.Group(), q)
	if err != nil {
		return nil, err
	}
	if cyclic.Order() != p {
		return nil, group.NewInternal(fmt.Sprintf(
			"order-%d element generates a subgroup of order %d", p, cyclic.Order())).
			WithCode(group.ErrCodeInvariant).WithGroup(g.Name())
	}

	return quot.Preimage(cyclic)
}

// ElementOfOrder is a convenience wrapper around a default Constructor.
func ElementOfOrder(ctx context.Context, g *group.Group, p int) (group.Element, error) {
	return New().ElementOfOrder(ctx, g, p)
}

// SubgroupOfOrder is a convenience wrapper around a default Constructor.
func SubgroupOfOrder(ctx context.Context, g *group.Group, p, n int) (*group.Subgroup, error) {
	return New().SubgroupOfOrder(ctx, g, p, n)
}
