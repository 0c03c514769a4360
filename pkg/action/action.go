package action

import (
	"context"
	"fmt"
	"sort"

	"github.com/groupforge/groupforge/pkg/group"
)

// Action is a finite group acting on the point set {0..points-1}.
// Identity preservation and compatibility with composition are
// preconditions verified by property tests, not checked per call.
// Actions are transient values owned by the computation that defines
// them.
type Action struct {
	// acting holds the elements of the acting group. It may be a full
	// group's element list or a subgroup's.
	acting []group.Element

	// identity is the identity of the acting group.
	identity group.Element

	// points is the size of the acted-on set.
	points int

	// apply maps (group element, point) to the image point.
	apply func(g group.Element, x int) int
}

// New creates an action of the given elements on {0..points-1}.
func New(acting []group.Element, identity group.Element, points int, apply func(group.Element, int) int) *Action {
	return &Action{
		acting:   append([]group.Element(nil), acting...),
		identity: identity,
		points:   points,
		apply:    apply,
	}
}

// Points returns the size of the acted-on set.
func (a *Action) Points() int {
	return a.points
}

// ActingOrder returns the order of the acting group.
func (a *Action) ActingOrder() int {
	return len(a.acting)
}

// Apply returns the image of point x under group element g.
func (a *Action) Apply(g group.Element, x int) int {
	return a.apply(g, x)
}

// Orbit returns the set of images of x under every acting element, in
// ascending point order. The result is never empty: it contains x.
func (a *Action) Orbit(x int) []int {
	seen := make(map[int]bool, len(a.acting))
	var orbit []int
	for _, g := range a.acting {
		y := a.apply(g, x)
		if !seen[y] {
			seen[y] = true
			orbit = append(orbit, y)
		}
	}
	sort.Ints(orbit)
	return orbit
}

// Stabilizer returns the acting elements that fix x.
func (a *Action) Stabilizer(x int) []group.Element {
	var stab []group.Element
	for _, g := range a.acting {
		if a.apply(g, x) == x {
			stab = append(stab, g)
		}
	}
	return stab
}

// Orbits partitions the point set into orbits. Each orbit is listed once,
// keyed by its smallest point; orbits appear in ascending key order.
func (a *Action) Orbits(ctx context.Context) ([][]int, error) {
	assigned := make([]bool, a.points)
	var orbits [][]int
	for x := 0; x < a.points; x++ {
		if assigned[x] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		orbit := a.Orbit(x)
		for _, y := range orbit {
			assigned[y] = true
		}
		orbits = append(orbits, orbit)
	}
	return orbits, nil
}

// FixedPoints returns the points whose orbit is a singleton, in ascending
// order.
func (a *Action) FixedPoints(ctx context.Context) ([]int, error) {
	var fixed []int
	for x := 0; x < a.points; x++ {
		if x%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		isFixed := true
		for _, g := range a.acting {
			if a.apply(g, x) != x {
				isFixed = false
				break
			}
		}
		if isFixed {
			fixed = append(fixed, x)
		}
	}
	return fixed, nil
}

// CheckOrbitStabilizer verifies the orbit-stabilizer law at x:
// |orbit(x)| * |stabilizer(x)| = |acting group|. A failure means the
// action axioms do not hold and is reported as an internal error.
func (a *Action) CheckOrbitStabilizer(x int) error {
	orbit := len(a.Orbit(x))
	stab := len(a.Stabilizer(x))
	if orbit*stab != len(a.acting) {
		return group.NewInternal(fmt.Sprintf(
			"orbit-stabilizer law fails at point %d: %d * %d != %d",
			x, orbit, stab, len(a.acting))).
			WithCode(group.ErrCodeInvariant)
	}
	return nil
}
