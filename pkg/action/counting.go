package action

import (
	"context"
	"fmt"

	"github.com/groupforge/groupforge/pkg/group"
)

// Congruence is the result of the p-group counting argument: for a group
// of order p^k acting on a finite set, |Set| ≡ |FixedPoints| (mod p).
type Congruence struct {
	// Prime is the prime p of the acting p-group.
	Prime int

	// SetSize is the number of acted-on points.
	SetSize int

	// FixedPoints is the number of singleton orbits.
	FixedPoints int

	// Orbits is the total number of orbits in the partition.
	Orbits int
}

// Holds reports whether the congruence SetSize ≡ FixedPoints (mod p) is
// satisfied.
func (c Congruence) Holds() bool {
	return (c.SetSize-c.FixedPoints)%c.Prime == 0
}

// String renders the congruence for logs.
func (c Congruence) String() string {
	return fmt.Sprintf("%d ≡ %d (mod %d)", c.SetSize, c.FixedPoints, c.Prime)
}

// PGroupCongruence runs the counting argument for an action of a p-group.
// The point set is partitioned into orbits once; by orbit-stabilizer each
// orbit size divides the acting order p^k, so it is itself a power of p.
// Singleton orbits are exactly the fixed points and every larger orbit
// contributes 0 mod p, so summing orbit sizes mod p counts the singleton
// orbits. An orbit size that is not a power of p means the action or the
// acting group is defective and is reported as an internal error.
func PGroupCongruence(ctx context.Context, a *Action, p int) (Congruence, error) {
	if p < 2 {
		return Congruence{}, group.NewInvalidArgument(
			fmt.Sprintf("counting argument requires a prime, got %d", p)).
			WithCode(group.ErrCodeNotPrime)
	}
	if !isPowerOf(a.ActingOrder(), p) {
		return Congruence{}, group.NewInvalidArgument(fmt.Sprintf(
			"acting group order %d is not a power of %d", a.ActingOrder(), p)).
			WithCode(group.ErrCodeNotDivisible)
	}

	orbits, err := a.Orbits(ctx)
	if err != nil {
		return Congruence{}, err
	}

	fixed := 0
	for _, orbit := range orbits {
		if !isPowerOf(len(orbit), p) {
			return Congruence{}, group.NewInternal(fmt.Sprintf(
				"orbit size %d is not a power of %d", len(orbit), p)).
				WithCode(group.ErrCodeInvariant)
		}
		if len(orbit) == 1 {
			fixed++
		}
	}

	c := Congruence{Prime: p, SetSize: a.Points(), FixedPoints: fixed, Orbits: len(orbits)}
	if !c.Holds() {
		// Cannot happen once every orbit size is a power of p.
		return Congruence{}, group.NewInternal("counting congruence fails: " + c.String()).
			WithCode(group.ErrCodeInvariant)
	}
	return c, nil
}

// SomeFixedPoint applies the first corollary of the counting argument:
// when p does not divide the set size, the fixed-point set is non-empty.
// It returns the smallest fixed point.
func SomeFixedPoint(ctx context.Context, a *Action, p int) (int, error) {
	c, err := PGroupCongruence(ctx, a, p)
	if err != nil {
		return 0, err
	}
	if a.Points()%p == 0 {
		return 0, group.NewInvalidArgument(fmt.Sprintf(
			"corollary requires %d not to divide the set size %d", p, a.Points())).
			WithCode(group.ErrCodeNotDivisible)
	}
	if c.FixedPoints == 0 {
		return 0, group.NewInternal("no fixed point despite " + c.String()).
			WithCode(group.ErrCodeInvariant)
	}

	fixed, err := a.FixedPoints(ctx)
	if err != nil {
		return 0, err
	}
	return fixed[0], nil
}

// SecondFixedPoint applies the second corollary: when p divides the set
// size and one fixed point is already known, a second, distinct fixed
// point exists. It returns the smallest fixed point other than known.
func SecondFixedPoint(ctx context.Context, a *Action, p int, known int) (int, error) {
	c, err := PGroupCongruence(ctx, a, p)
	if err != nil {
		return 0, err
	}
	if a.Points()%p != 0 {
		return 0, group.NewInvalidArgument(fmt.Sprintf(
			"corollary requires %d to divide the set size %d", p, a.Points())).
			WithCode(group.ErrCodeNotDivisible)
	}

	for _, g := range a.acting {
		if a.apply(g, known) != known {
			return 0, group.NewInternal(fmt.Sprintf("claimed fixed point %d is not fixed", known)).
				WithCode(group.ErrCodeInvariant)
		}
	}

	fixed, err := a.FixedPoints(ctx)
	if err != nil {
		return 0, err
	}
	for _, x := range fixed {
		if x != known {
			return x, nil
		}
	}
	// |FixedPoints| = 1 contradicts p | SetSize with the congruence.
	return 0, group.NewInternal("no second fixed point despite " + c.String()).
		WithCode(group.ErrCodeInvariant)
}

// isPowerOf reports whether n is p^k for some k >= 0.
func isPowerOf(n, p int) bool {
	if n < 1 {
		return false
	}
	for n%p == 0 {
		n /= p
	}
	return n == 1
}
