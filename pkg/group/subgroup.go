package group

import (
	"fmt"
	"sort"
)

// Subgroup is an immutable subset of a group, closed under the operation
// and inverse and containing the identity.
type Subgroup struct {
	ambient  *Group
	elements []Element // sorted ascending
	member   []bool    // indexed by ambient element
}

// Ambient returns the group this subgroup lives in.
func (h *Subgroup) Ambient() *Group {
	return h.ambient
}

// Order returns the number of elements in the subgroup.
func (h *Subgroup) Order() int {
	return len(h.elements)
}

// Elements returns the subgroup's elements in ascending index order. The
// returned slice is freshly allocated on every call.
func (h *Subgroup) Elements() []Element {
	return append([]Element(nil), h.elements...)
}

// Contains reports whether a belongs to the subgroup.
func (h *Subgroup) Contains(a Element) bool {
	return h.member[a]
}

// IsTrivial reports whether the subgroup is {identity}.
func (h *Subgroup) IsTrivial() bool {
	return len(h.elements) == 1
}

// String returns a short description of the subgroup.
func (h *Subgroup) String() string {
	return fmt.Sprintf("subgroup of %s, order %d, %s",
		h.ambient.name, h.Order(), formatElements(h.ambient.Labels(h.elements)))
}

// Trivial returns the subgroup {identity} of g.
func Trivial(g *Group) *Subgroup {
	member := make([]bool, g.Order())
	member[g.identity] = true
	return &Subgroup{
		ambient:  g,
		elements: []Element{g.identity},
		member:   member,
	}
}

// Whole returns g as a subgroup of itself.
func Whole(g *Group) *Subgroup {
	member := make([]bool, g.Order())
	for i := range member {
		member[i] = true
	}
	return &Subgroup{
		ambient:  g,
		elements: g.Elements(),
		member:   member,
	}
}

// FromElements builds a subgroup from an explicit element set, verifying
// closure under the operation and inverse and the presence of the
// identity. Callers that already hold a closed set still pay the check;
// it is quadratic in the subset size and guards every construction site.
func FromElements(g *Group, elems []Element) (*Subgroup, error) {
	member := make([]bool, g.Order())
	unique := make([]Element, 0, len(elems))
	for _, e := range elems {
		if int(e) < 0 || int(e) >= g.Order() {
			return nil, NewInvalidArgument(fmt.Sprintf("element index %d out of range", e)).
				WithCode(ErrCodeNotSubgroup).WithGroup(g.name)
		}
		if !member[e] {
			member[e] = true
			unique = append(unique, e)
		}
	}

	if !member[g.identity] {
		return nil, NewInvalidArgument("subset does not contain the identity").
			WithCode(ErrCodeNotSubgroup).WithGroup(g.name)
	}
	for _, a := range unique {
		if !member[g.Inv(a)] {
			return nil, NewInvalidArgument(
				fmt.Sprintf("subset is not closed under inverse at %s", g.Label(a))).
				WithCode(ErrCodeNotSubgroup).WithGroup(g.name)
		}
		for _, b := range unique {
			if !member[g.Op(a, b)] {
				return nil, NewInvalidArgument(
					fmt.Sprintf("subset is not closed under the operation at (%s, %s)",
						g.Label(a), g.Label(b))).
					WithCode(ErrCodeNotSubgroup).WithGroup(g.name)
			}
		}
	}

	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })
	return &Subgroup{ambient: g, elements: unique, member: member}, nil
}

// Generate returns the subgroup generated by the given elements, computed
// as the closure of the generators under the operation.
func Generate(g *Group, gens ...Element) (*Subgroup, error) {
	for _, e := range gens {
		if int(e) < 0 || int(e) >= g.Order() {
			return nil, NewInvalidArgument(fmt.Sprintf("generator index %d out of range", e)).
				WithGroup(g.name)
		}
	}

	member := make([]bool, g.Order())
	member[g.identity] = true
	frontier := []Element{g.identity}
	elements := []Element{g.identity}
	for _, e := range gens {
		if !member[e] {
			member[e] = true
			frontier = append(frontier, e)
			elements = append(elements, e)
		}
	}

	// Closure under products with generators. Finiteness makes inverse
	// closure automatic: a^-1 = a^(order-1).
	for len(frontier) > 0 {
		next := make([]Element, 0)
		for _, a := range frontier {
			for _, s := range gens {
				p := g.Op(a, s)
				if !member[p] {
					member[p] = true
					next = append(next, p)
					elements = append(elements, p)
				}
				q := g.Op(s, a)
				if !member[q] {
					member[q] = true
					next = append(next, q)
					elements = append(elements, q)
				}
			}
		}
		frontier = next
	}

	sort.Slice(elements, func(i, j int) bool { return elements[i] < elements[j] })
	return &Subgroup{ambient: g, elements: elements, member: member}, nil
}

// Normalizer returns the normalizer of h in its ambient group: the set
// of x with x*h*x^-1 = h, the largest subgroup in which h is normal.
func (h *Subgroup) Normalizer() (*Subgroup, error) {
	g := h.ambient
	var norm []Element
	for _, x := range g.Elements() {
		normalizes := true
		for _, a := range h.elements {
			if !h.member[g.Conjugate(x, a)] {
				normalizes = false
				break
			}
		}
		if normalizes {
			norm = append(norm, x)
		}
	}

	sub, err := FromElements(g, norm)
	if err != nil {
		// The normalizer is a subgroup whenever h is one.
		return nil, NewInternal("normalizer is not a subgroup").
			WithCode(ErrCodeInvariant).WithGroup(g.name).WithErr(err)
	}
	return sub, nil
}

// IsNormalIn reports whether h is invariant under conjugation by every
// element of n. Both must share an ambient group.
func (h *Subgroup) IsNormalIn(n *Subgroup) bool {
	g := h.ambient
	for _, x := range n.elements {
		for _, a := range h.elements {
			if !h.member[g.Conjugate(x, a)] {
				return false
			}
		}
	}
	return true
}

// IsSubsetOf reports whether every element of h belongs to n.
func (h *Subgroup) IsSubsetOf(n *Subgroup) bool {
	for _, a := range h.elements {
		if !n.member[a] {
			return false
		}
	}
	return true
}
