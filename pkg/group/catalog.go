package group

import (
	"fmt"
	"sort"
	"strings"
)

// Cyclic returns the cyclic group Z_n written additively: elements are
// the residues 0..n-1 and the operation is addition mod n.
func Cyclic(n int) (*Group, error) {
	if n < 1 {
		return nil, NewInvalidArgument(fmt.Sprintf("cyclic group order must be positive, got %d", n))
	}

	labels := make([]string, n)
	table := make([][]Element, n)
	inv := make([]Element, n)
	for a := 0; a < n; a++ {
		labels[a] = fmt.Sprintf("%d", a)
		table[a] = make([]Element, n)
		for b := 0; b < n; b++ {
			table[a][b] = Element((a + b) % n)
		}
		inv[a] = Element((n - a) % n)
	}

	return &Group{
		name:     fmt.Sprintf("Z%d", n),
		labels:   labels,
		table:    table,
		inv:      inv,
		identity: 0,
	}, nil
}

// Symmetric returns the symmetric group S_n on n points. Elements are
// permutations in lexicographic order, labeled in cycle notation with
// 1-based points. Degrees above 8 are rejected: the Cayley table alone
// would exceed 8!^2 entries.
func Symmetric(n int) (*Group, error) {
	if n < 1 {
		return nil, NewInvalidArgument(fmt.Sprintf("symmetric group degree must be positive, got %d", n))
	}
	if n > 8 {
		return nil, NewInvalidArgument(
			fmt.Sprintf("symmetric group degree %d is too large to tabulate", n)).
			WithCode(ErrCodeTooLarge)
	}

	perms := permutations(n)
	sort.Slice(perms, func(i, j int) bool {
		return lexLess(perms[i], perms[j])
	})

	index := make(map[string]Element, len(perms))
	for i, p := range perms {
		index[permKey(p)] = Element(i)
	}

	order := len(perms)
	labels := make([]string, order)
	table := make([][]Element, order)
	inv := make([]Element, order)
	for i, p := range perms {
		labels[i] = cycleLabel(p)
		table[i] = make([]Element, order)
		for j, q := range perms {
			table[i][j] = index[permKey(composePerm(p, q))]
		}
		inv[i] = index[permKey(invertPerm(p))]
	}

	return &Group{
		name:     fmt.Sprintf("S%d", n),
		labels:   labels,
		table:    table,
		inv:      inv,
		identity: 0, // the identity permutation sorts first
	}, nil
}

// Dihedral returns the dihedral group D_n of order 2n, the symmetries of
// a regular n-gon. Elements are r^k (rotations) and s*r^k (reflections).
func Dihedral(n int) (*Group, error) {
	if n < 1 {
		return nil, NewInvalidArgument(fmt.Sprintf("dihedral group degree must be positive, got %d", n))
	}

	// Element 2k is r^k, element 2k+1 is s*r^k.
	order := 2 * n
	labels := make([]string, order)
	for k := 0; k < n; k++ {
		switch {
		case k == 0:
			labels[0] = "e"
			labels[1] = "s"
		case k == 1:
			labels[2] = "r"
			labels[3] = "sr"
		default:
			labels[2*k] = fmt.Sprintf("r%d", k)
			labels[2*k+1] = fmt.Sprintf("sr%d", k)
		}
	}

	mod := func(k int) int { return ((k % n) + n) % n }
	encode := func(rot int, flip bool) Element {
		e := 2 * mod(rot)
		if flip {
			e++
		}
		return Element(e)
	}

	table := make([][]Element, order)
	inv := make([]Element, order)
	for a := 0; a < order; a++ {
		aRot, aFlip := a/2, a%2 == 1
		table[a] = make([]Element, order)
		for b := 0; b < order; b++ {
			bRot, bFlip := b/2, b%2 == 1
			// s*r^k = r^-k*s, so products fold to one of the two forms.
			if aFlip {
				table[a][b] = encode(aRot-bRot, !bFlip)
			} else {
				table[a][b] = encode(aRot+bRot, bFlip)
			}
		}
		if aFlip {
			inv[a] = Element(a) // reflections are involutions
		} else {
			inv[a] = encode(-aRot, false)
		}
	}

	return &Group{
		name:     fmt.Sprintf("D%d", n),
		labels:   labels,
		table:    table,
		inv:      inv,
		identity: 0,
	}, nil
}

// Product returns the direct product of two groups, with componentwise
// operation and pair labels.
func Product(a, b *Group) (*Group, error) {
	if a == nil || b == nil {
		return nil, NewInvalidArgument("direct product requires two groups")
	}

	na, nb := a.Order(), b.Order()
	order := na * nb
	encode := func(x, y Element) Element { return Element(int(x)*nb + int(y)) }

	labels := make([]string, order)
	table := make([][]Element, order)
	inv := make([]Element, order)
	for x := 0; x < na; x++ {
		for y := 0; y < nb; y++ {
			e := encode(Element(x), Element(y))
			labels[e] = fmt.Sprintf("(%s,%s)", a.labels[x], b.labels[y])
			inv[e] = encode(a.inv[x], b.inv[y])
			table[e] = make([]Element, order)
			for u := 0; u < na; u++ {
				for v := 0; v < nb; v++ {
					f := encode(Element(u), Element(v))
					table[e][f] = encode(a.table[x][u], b.table[y][v])
				}
			}
		}
	}

	return &Group{
		name:     fmt.Sprintf("%sx%s", a.name, b.name),
		labels:   labels,
		table:    table,
		inv:      inv,
		identity: encode(a.identity, b.identity),
	}, nil
}

// permutations generates all permutations of 0..n-1.
func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}

	var out [][]int
	var recurse func(k int)
	recurse = func(k int) {
		if k == n {
			out = append(out, append([]int(nil), base...))
			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			recurse(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	recurse(0)
	return out
}

func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func permKey(p []int) string {
	var sb strings.Builder
	for _, v := range p {
		fmt.Fprintf(&sb, "%d.", v)
	}
	return sb.String()
}

// composePerm returns p∘q, the permutation applying q first and then p.
func composePerm(p, q []int) []int {
	out := make([]int, len(p))
	for i := range out {
		out[i] = p[q[i]]
	}
	return out
}

func invertPerm(p []int) []int {
	out := make([]int, len(p))
	for i, v := range p {
		out[v] = i
	}
	return out
}

// cycleLabel renders a permutation in cycle notation with 1-based points,
// omitting fixed points. The identity is labeled "e".
func cycleLabel(p []int) string {
	seen := make([]bool, len(p))
	var sb strings.Builder
	for start := range p {
		if seen[start] || p[start] == start {
			seen[start] = true
			continue
		}
		sb.WriteByte('(')
		for i := start; !seen[i]; i = p[i] {
			seen[i] = true
			if i != start {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", i+1)
		}
		sb.WriteByte(')')
	}
	if sb.Len() == 0 {
		return "e"
	}
	return sb.String()
}
