// Package resultstore persists a history of element and subgroup
// computations in SQLite, with schema migrations embedded in the
// binary. The CLI uses it for the history command; the library never
// depends on it.
package resultstore
