package sylow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/groupforge/groupforge/pkg/action"
	"github.com/groupforge/groupforge/pkg/group"
)

// Constructor runs the Cauchy and Sylow constructions. The zero value is
// usable; options attach a logger and a metrics recorder.
type Constructor struct {
	logger   zerolog.Logger
	recorder Recorder
}

// Recorder receives construction events. *telemetry.Metrics satisfies
// it; a nil recorder drops everything.
type Recorder interface {
	CauchyInvoked(prime string, tupleSpace int)
	SylowStep()
}

// Option configures a Constructor.
type Option func(*Constructor)

// WithLogger attaches a structured logger. Without it the constructor
// logs nowhere.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Constructor) {
		c.logger = logger
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Constructor) {
		c.recorder = r
	}
}

// New creates a Constructor.
func New(opts ...Option) *Constructor {
	c := &Constructor{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ElementOfOrder returns an element of g with multiplicative order
// exactly p. It requires p prime and p dividing |G|; both are checked
// here, fail-fast, and nowhere else.
//
// The construction builds the space V of length-p tuples multiplying to
// the identity, lets the cyclic group of order p act on V by rotation,
// and applies the counting corollary: p divides |V| = |G|^(p-1) and the
// all-identity tuple is a known fixed point, so a second fixed point
// exists. Rotation-invariant tuples are exactly the constant ones, so
// the second fixed point is (a, ..., a) for some a ≠ e with a^p = e.
func (c *Constructor) ElementOfOrder(ctx context.Context, g *group.Group, p int) (group.Element, error) {
	if !isPrime(p) {
		return 0, group.NewInvalidArgument(fmt.Sprintf("%d is not prime", p)).
			WithCode(group.ErrCodeNotPrime).WithOperation("element-of-order")
	}
	if g.Order()%p != 0 {
		return 0, group.NewUnsatisfiable(fmt.Sprintf(
			"%d does not divide the group order %d", p, g.Order())).
			WithCode(group.ErrCodeNotDivisible).WithGroup(g.Name()).
			WithOperation("element-of-order")
	}

	space, err := newTupleSpace(g, p)
	if err != nil {
		return 0, err
	}

	c.logger.Debug().
		Str("group", g.Name()).
		Int("prime", p).
		Int("tuple_space", space.size).
		Msg("built product-one tuple space")
	if c.recorder != nil {
		c.recorder.CauchyInvoked(strconv.Itoa(p), space.size)
	}

	rotation, err := c.rotationAction(space)
	if err != nil {
		return 0, err
	}

	known := space.identityRank()
	second, err := action.SecondFixedPoint(ctx, rotation, p, known)
	if err != nil {
		return 0, err
	}

	tuple := space.decode(second)
	if !isConstant(tuple) {
		return 0, group.NewInternal("rotation fixed point is not a constant tuple").
			WithCode(group.ErrCodeInvariant).WithGroup(g.Name())
	}
	a := tuple[0]
	if a == g.Identity() || g.Power(a, p) != g.Identity() {
		return 0, group.NewInternal(fmt.Sprintf(
			"constant tuple entry %s does not have order %d", g.Label(a), p)).
			WithCode(group.ErrCodeInvariant).WithGroup(g.Name())
	}

	c.logger.Debug().
		Str("group", g.Name()).
		Int("prime", p).
		Str("element", g.Label(a)).
		Msg("extracted element of prime order")
	return a, nil
}

// rotationAction equips the tuple space with the rotation action of the
// cyclic group of order p. Rotating preserves the product-one invariant;
// that is re-validated on every application, since a violation would
// silently break the counting argument downstream.
func (c *Constructor) rotationAction(space *tupleSpace) (*action.Action, error) {
	zp, err := group.Cyclic(space.p)
	if err != nil {
		return nil, err
	}

	apply := func(k group.Element, x int) int {
		rotated := space.rotate(space.decode(x), int(k))
		if !space.productIsIdentity(rotated) {
			// Conjugates of the identity are the identity; reaching this
			// line means the group model is defective.
			panic(group.NewInternal("rotation left the product-one tuple space").
				WithCode(group.ErrCodeInvariant).WithGroup(space.g.Name()))
		}
		return space.encode(rotated)
	}

	return action.New(zp.Elements(), zp.Identity(), space.size, apply), nil
}
