// Package sylow constructs, rather than merely asserts, two classical
// existence results for finite groups.
//
// ElementOfOrder is Cauchy's theorem made executable: for a prime p
// dividing |G| it produces an element of order exactly p, by letting the
// cyclic group of order p rotate the space of length-p tuples whose
// product is the identity and extracting a second fixed point of that
// action.
//
// SubgroupOfOrder is the first Sylow theorem: for p^n dividing |G| it
// produces a subgroup of order exactly p^n, growing one power of p per
// induction step through normalizers, quotients, and the Cauchy
// construction applied inside them.
//
// Preconditions (p prime, divisibility) are checked at these two entry
// points only and yield invalid-argument or unsatisfiable errors.
// Violated algebraic invariants elsewhere surface as internal errors and
// indicate defects in the group model or the action engine.
//
// Existence only: the conjugacy and counting parts of the Sylow theorems
// are a materially different algorithm and are out of scope.
package sylow
