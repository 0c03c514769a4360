package groupcfg

// Kind selects how a group definition is built.
type Kind string

const (
	// KindCyclic is the cyclic group Z_n; requires order.
	KindCyclic Kind = "cyclic"

	// KindSymmetric is the symmetric group S_n; requires degree.
	KindSymmetric Kind = "symmetric"

	// KindDihedral is the dihedral group D_n of order 2n; requires degree.
	KindDihedral Kind = "dihedral"

	// KindProduct is a direct product; requires at least two factors.
	KindProduct Kind = "product"

	// KindTable is an explicit Cayley table; requires elements and table.
	KindTable Kind = "table"
)

// Spec is a group definition as loaded from a YAML file.
type Spec struct {
	// Name identifies the group. The root spec requires one; nested
	// product factors default to their catalog name.
	Name string `yaml:"name,omitempty"`

	// Kind selects the construction.
	Kind Kind `yaml:"kind" validate:"required,oneof=cyclic symmetric dihedral product table"`

	// Order is the order of a cyclic group.
	Order int `yaml:"order,omitempty" validate:"omitempty,gte=1"`

	// Degree is the degree of a symmetric or dihedral group. Symmetric
	// degrees are capped where tabulation stops being reasonable.
	Degree int `yaml:"degree,omitempty" validate:"omitempty,gte=1,lte=8"`

	// Factors are the direct-product factors.
	Factors []Spec `yaml:"factors,omitempty" validate:"omitempty,min=2,dive"`

	// Elements are the labels of an explicit-table group.
	Elements []string `yaml:"elements,omitempty"`

	// Table is the Cayley table of an explicit-table group: row i lists
	// the products elements[i] * elements[j].
	Table [][]string `yaml:"table,omitempty"`
}
