package groupcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groupforge/groupforge/pkg/group"
)

func TestParseCyclic(t *testing.T) {
	t.Parallel()

	g, err := NewParser().Parse([]byte(`
name: z6
kind: cyclic
order: 6
`))
	require.NoError(t, err)
	require.Equal(t, 6, g.Order())
	require.NoError(t, g.Validate())
}

func TestParseSymmetric(t *testing.T) {
	t.Parallel()

	g, err := NewParser().Parse([]byte(`
name: sym4
kind: symmetric
degree: 4
`))
	require.NoError(t, err)
	require.Equal(t, 24, g.Order())
}

func TestParseDihedral(t *testing.T) {
	t.Parallel()

	g, err := NewParser().Parse([]byte(`
name: d4
kind: dihedral
degree: 4
`))
	require.NoError(t, err)
	require.Equal(t, 8, g.Order())
}

func TestParseProduct(t *testing.T) {
	t.Parallel()

	g, err := NewParser().Parse([]byte(`
name: z2xz2xz3
kind: product
factors:
  - kind: cyclic
    order: 2
  - kind: cyclic
    order: 2
  - kind: cyclic
    order: 3
`))
	require.NoError(t, err)
	require.Equal(t, 12, g.Order())
	require.NoError(t, g.Validate())
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	g, err := NewParser().Parse([]byte(`
name: klein
kind: table
elements: [e, a, b, c]
table:
  - [e, a, b, c]
  - [a, e, c, b]
  - [b, c, e, a]
  - [c, b, a, e]
`))
	require.NoError(t, err)
	require.Equal(t, 4, g.Order())
	require.Equal(t, "klein", g.Name())
}

func TestParseRejectsBrokenTable(t *testing.T) {
	t.Parallel()

	// A table failing the axioms must not produce a group.
	_, err := NewParser().Parse([]byte(`
name: broken
kind: table
elements: [e, a, b]
table:
  - [e, a, b]
  - [a, e, e]
  - [b, e, e]
`))
	require.Error(t, err)
	require.True(t, group.IsInvalidArgument(err))
}

func TestParseRejectsBadSpecs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", ":\n  - ["},
		{"missing name", "kind: cyclic\norder: 6"},
		{"missing kind", "name: g"},
		{"unknown kind", "name: g\nkind: quaternion"},
		{"cyclic without order", "name: g\nkind: cyclic"},
		{"symmetric without degree", "name: g\nkind: symmetric"},
		{"symmetric degree too large", "name: g\nkind: symmetric\ndegree: 12"},
		{"product with one factor", "name: g\nkind: product\nfactors:\n  - {kind: cyclic, order: 2}"},
		{"table without elements", "name: g\nkind: table"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewParser().Parse([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "z6.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: z6\nkind: cyclic\norder: 6\n"), 0o644))

	g, err := NewParser().ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, 6, g.Order())

	_, err = NewParser().ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
