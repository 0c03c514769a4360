// Package group models finite groups as immutable Cayley-table values.
//
// # Overview
//
// A Group owns its element list, multiplication table, inverses, and
// identity. Elements are plain indices; all structure lives in the group
// value and every function receives the group it needs as an ordinary
// argument. Subgroups, normalizers, coset spaces, and quotient groups are
// explicit values built on top of a Group:
//
//   - Subgroup: a verified closed subset of an ambient group
//   - CosetSpace: the left-coset partition with canonical representatives
//   - Quotient: the coset group N/H with its projection and preimage
//
// # Catalog
//
// Cyclic, Symmetric, Dihedral, and Product construct standard groups
// correct by construction. FromTable accepts explicit user-supplied
// Cayley tables and verifies the full group axioms, since those arrive
// from configuration files rather than from code.
//
// # Errors
//
// Error values carry a class (invalid-argument, unsatisfiable, internal)
// and a code. Internal errors mark violated algebraic invariants and are
// implementation defects, never conditions a caller should recover from.
package group
