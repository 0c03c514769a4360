// Package action implements a generic finite group action engine and the
// p-group counting argument built on it.
//
// An Action pairs an acting element list with an apply function over a
// point set {0..n-1}. Orbit, Stabilizer, Orbits, and FixedPoints are the
// primitive queries; CheckOrbitStabilizer surfaces the orbit-stabilizer
// law |orbit| * |stabilizer| = |acting group| as a runtime check.
//
// PGroupCongruence derives |Set| ≡ |FixedPoints| (mod p) for any action
// of a p-group by partitioning the set into orbits and classifying each
// orbit size as a power of p. SomeFixedPoint and SecondFixedPoint are the
// two corollaries consumed by the Cauchy and Sylow constructors.
//
// Action validity (identity preservation, compatibility with
// composition) is a precondition. Violating it is undefined behavior
// caught by property tests, not handled at runtime.
package action
