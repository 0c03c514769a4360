package group

import "fmt"

// CosetSpace is the partition of a subgroup's ambient group (or of a
// larger subgroup) into left cosets, with an explicit index for every
// element and a canonical representative for every coset.
type CosetSpace struct {
	g     *Group
	h     *Subgroup
	index []int     // ambient element -> coset index, -1 outside the carrier
	reps  []Element // coset index -> canonical (smallest) representative
}

// LeftCosets partitions carrier into left cosets of h. The carrier must
// contain h; passing Whole(g) yields the full coset space G/H.
func LeftCosets(carrier, h *Subgroup) (*CosetSpace, error) {
	g := h.ambient
	if carrier.ambient != g {
		return nil, NewInvalidArgument("coset carrier belongs to a different group").
			WithGroup(g.name)
	}
	if !h.IsSubsetOf(carrier) {
		return nil, NewInvalidArgument("subgroup is not contained in the coset carrier").
			WithCode(ErrCodeNotSubgroup).WithGroup(g.name)
	}

	index := make([]int, g.Order())
	for i := range index {
		index[i] = -1
	}

	var reps []Element
	// Elements iterate in ascending order, so the first unassigned element
	// of each coset is its smallest member.
	for _, x := range carrier.elements {
		if index[x] >= 0 {
			continue
		}
		c := len(reps)
		reps = append(reps, x)
		for _, a := range h.elements {
			index[g.Op(x, a)] = c
		}
	}

	return &CosetSpace{g: g, h: h, index: index, reps: reps}, nil
}

// Size returns the number of cosets.
func (cs *CosetSpace) Size() int {
	return len(cs.reps)
}

// Index returns the coset index of x, or -1 if x lies outside the
// carrier.
func (cs *CosetSpace) Index(x Element) int {
	return cs.index[x]
}

// Rep returns the canonical representative of coset c.
func (cs *CosetSpace) Rep(c int) Element {
	return cs.reps[c]
}

// Quotient is the group of cosets N/H for H normal in N, together with
// the canonical projection N -> N/H and its inverse image.
type Quotient struct {
	num    *Subgroup
	den    *Subgroup
	cosets *CosetSpace
	group  *Group
}

// NewQuotient forms the quotient group num/den. den must be a subgroup
// of num and normal in it; in particular the quotient of a normalizer by
// the subgroup it normalizes always exists.
func NewQuotient(num, den *Subgroup) (*Quotient, error) {
	g := den.ambient
	if num.ambient != g {
		return nil, NewInvalidArgument("quotient terms belong to different groups").
			WithGroup(g.name)
	}
	if !den.IsSubsetOf(num) {
		return nil, NewInvalidArgument("denominator is not contained in the numerator").
			WithCode(ErrCodeNotSubgroup).WithGroup(g.name)
	}
	if !den.IsNormalIn(num) {
		return nil, NewInvalidArgument("denominator is not normal in the numerator").
			WithCode(ErrCodeNotNormal).WithGroup(g.name)
	}

	cosets, err := LeftCosets(num, den)
	if err != nil {
		return nil, err
	}

	// Coset multiplication through representatives is well-defined by
	// normality: (xH)(yH) = (xy)H.
	n := cosets.Size()
	labels := make([]string, n)
	table := make([][]Element, n)
	inv := make([]Element, n)
	for i := 0; i < n; i++ {
		labels[i] = fmt.Sprintf("[%s]", g.Label(cosets.reps[i]))
		table[i] = make([]Element, n)
		for j := 0; j < n; j++ {
			table[i][j] = Element(cosets.index[g.Op(cosets.reps[i], cosets.reps[j])])
		}
		inv[i] = Element(cosets.index[g.Inv(cosets.reps[i])])
	}

	q := &Group{
		name:     fmt.Sprintf("%s/%s", num.describeShort(), den.describeShort()),
		labels:   labels,
		table:    table,
		inv:      inv,
		identity: Element(cosets.index[g.identity]),
	}

	return &Quotient{num: num, den: den, cosets: cosets, group: q}, nil
}

// Group returns the quotient as a group in its own right. Its element
// indices coincide with the coset indices of Project.
func (q *Quotient) Group() *Group {
	return q.group
}

// Project returns the canonical image of x in the quotient group. x must
// belong to the numerator.
func (q *Quotient) Project(x Element) (Element, error) {
	c := q.cosets.index[x]
	if c < 0 {
		return 0, NewInvalidArgument(
			fmt.Sprintf("element %s is outside the quotient numerator", q.num.ambient.Label(x))).
			WithGroup(q.num.ambient.name)
	}
	return Element(c), nil
}

// Preimage pulls a subgroup of the quotient group back through the
// projection. The result is a subgroup of the original ambient group
// containing the denominator, with order |sub| * |den|.
func (q *Quotient) Preimage(sub *Subgroup) (*Subgroup, error) {
	if sub.ambient != q.group {
		return nil, NewInvalidArgument("preimage argument is not a subgroup of this quotient").
			WithGroup(q.group.name)
	}

	var elems []Element
	for _, x := range q.num.elements {
		if sub.member[q.cosets.index[x]] {
			elems = append(elems, x)
		}
	}

	pre, err := FromElements(q.num.ambient, elems)
	if err != nil {
		// Preimages of subgroups under homomorphisms are subgroups.
		return nil, NewInternal("quotient preimage is not a subgroup").
			WithCode(ErrCodeInvariant).WithGroup(q.num.ambient.name).WithErr(err)
	}
	if pre.Order() != sub.Order()*q.den.Order() {
		return nil, NewInternal(fmt.Sprintf(
			"quotient preimage has order %d, want %d",
			pre.Order(), sub.Order()*q.den.Order())).
			WithCode(ErrCodeInvariant).WithGroup(q.num.ambient.name)
	}
	return pre, nil
}

// describeShort names a subgroup for quotient labels: the ambient name
// when the subgroup is the whole group, H<order> otherwise.
func (h *Subgroup) describeShort() string {
	if h.Order() == h.ambient.Order() {
		return h.ambient.name
	}
	return fmt.Sprintf("H%d", h.Order())
}
