// Package groupcfg loads finite group definitions from YAML files.
//
// A definition names a kind (cyclic, symmetric, dihedral, product,
// table) and the parameters that kind needs. Structural validation uses
// struct tags; explicit Cayley tables are additionally run through the
// full group-axiom check before a group is returned, since tables are
// the one kind whose correctness the catalog cannot guarantee.
//
//	name: sym4
//	kind: symmetric
//	degree: 4
//
//	name: z2xz2
//	kind: product
//	factors:
//	  - {kind: cyclic, order: 2}
//	  - {kind: cyclic, order: 2}
package groupcfg
