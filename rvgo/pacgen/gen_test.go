package pacgen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.FromSlash("testdata/e310x.toml"))
	require.NoError(t, err)
	require.Equal(t, "e310x", cfg.Package)
	require.Len(t, cfg.Enums, 3)

	irq := cfg.Enums[0]
	require.Equal(t, KindExternalInterrupt, irq.Kind)
	require.Len(t, irq.Variants, 6)
	require.Equal(t, Variant{Name: "GPIO0", Number: 8, Doc: "First GPIO pin interrupt"}, irq.Variants[5])
	require.Equal(t, uint16(8), irq.Max())
	require.Equal(t, uint16(7), cfg.Enums[1].Max())
	require.Equal(t, uint16(0), cfg.Enums[2].Max())
}

func TestLoadStandardNumbering(t *testing.T) {
	cfg, err := Load(filepath.FromSlash("../riscv/riscv.toml"))
	require.NoError(t, err)
	require.Equal(t, "riscv", cfg.Package)
	require.Equal(t, uint16(15), cfg.Enums[0].Max())
	require.Equal(t, KindCoreInterrupt, cfg.Enums[1].Kind)
	require.Equal(t, uint16(11), cfg.Enums[1].Max())
}

func TestGenerate(t *testing.T) {
	cfg, err := Load(filepath.FromSlash("testdata/e310x.toml"))
	require.NoError(t, err)
	src, err := Generate(cfg)
	require.NoError(t, err)

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "e310x_gen.go", src, parser.ParseComments)
	require.NoError(t, err, "generated code must parse:\n%s", src)
	require.Equal(t, "e310x", file.Name.Name)

	methods := make(map[string]bool)
	types := make(map[string]bool)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			recv := d.Recv.List[0].Type.(*ast.Ident).Name
			methods[recv+"."+d.Name.Name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					types[ts.Name.Name] = true
				}
			}
		}
	}
	for _, name := range []string{"ExternalInterrupt", "Priority", "Hart"} {
		require.True(t, types[name], "missing type %s", name)
		require.True(t, methods[name+".Number"], "missing %s.Number", name)
		require.True(t, methods[name+".FromNumber"], "missing %s.FromNumber", name)
		require.True(t, methods[name+".String"], "missing %s.String", name)
	}
	require.True(t, methods["ExternalInterrupt.MaxInterruptNumber"])
	require.True(t, methods["ExternalInterrupt.ExternalInterrupt"])
	require.False(t, methods["ExternalInterrupt.CoreInterrupt"])
	require.True(t, methods["Priority.MaxPriorityNumber"])
	require.True(t, methods["Hart.MaxHartIdNumber"])

	out := string(src)
	require.Contains(t, out, "// Code generated by rvpac gen. DO NOT EDIT.")
	require.Contains(t, out, "type Priority uint8")
	require.Contains(t, out, "func (Priority) MaxPriorityNumber() uint8 {\n\treturn 7\n}")
	require.Contains(t, out, "func (ExternalInterrupt) MaxInterruptNumber() uint16 {\n\treturn 8\n}")
	require.Contains(t, out, "return 0, pac.NewNumberError(pac.KindPriority, uint64(n))")
	require.Contains(t, out, "var _ pac.ExternalInterruptNumber[ExternalInterrupt] = ExternalInterrupt(0)")
	require.Contains(t, out, "// First GPIO pin interrupt\n\tGPIO0")
	require.Contains(t, out, "// Hart enumerates hart id numbers.")
}

func TestGenerateToFile(t *testing.T) {
	cfg, err := Parse([]byte(`
package = "demo"
[[enum]]
name = "Cause"
kind = "exception"
[[enum.variant]]
name = "Only"
number = 4
`))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "demo_gen.go")
	require.NoError(t, GenerateToFile(cfg, path, 0o644))
	src, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), path, src, 0)
	require.NoError(t, err)
	require.Contains(t, string(src), "\tcase Only:\n\t\treturn Cause(n), nil")

	want, err := Generate(cfg)
	require.NoError(t, err)
	require.Equal(t, string(want), string(src))

	err = GenerateToFile(cfg, filepath.Join(t.TempDir(), "missing", "demo_gen.go"), 0o644)
	require.ErrorContains(t, err, "failed to write")
}

func TestInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  string
	}{
		{"no package", `
[[enum]]
name = "E"
kind = "exception"
[[enum.variant]]
name = "A"
number = 1
`, "invalid package name"},
		{"no enums", `package = "p"`, "no enums declared"},
		{"unknown kind", `
package = "p"
[[enum]]
name = "E"
kind = "trap"
[[enum.variant]]
name = "A"
number = 1
`, `unknown kind "trap"`},
		{"no variants", `
package = "p"
[[enum]]
name = "E"
kind = "exception"
`, "enum E: no variants declared"},
		{"shared number", `
package = "p"
[[enum]]
name = "E"
kind = "exception"
[[enum.variant]]
name = "A"
number = 1
[[enum.variant]]
name = "B"
number = 1
`, "variants A and B share number 1"},
		{"name collision across enums", `
package = "p"
[[enum]]
name = "E"
kind = "exception"
[[enum.variant]]
name = "Timer"
number = 1
[[enum]]
name = "I"
kind = "interrupt"
[[enum.variant]]
name = "Timer"
number = 1
`, `variant "Timer" collides with variant`},
		{"unexported variant", `
package = "p"
[[enum]]
name = "E"
kind = "exception"
[[enum.variant]]
name = "a"
number = 1
`, "is not an exported Go identifier"},
		{"wide priority", `
package = "p"
[[enum]]
name = "P"
kind = "priority"
[[enum.variant]]
name = "High"
number = 256
`, "does not fit in 8 bits"},
		{"number overflow", `
package = "p"
[[enum]]
name = "E"
kind = "exception"
[[enum.variant]]
name = "A"
number = 65536
`, "failed to decode"},
		{"unknown key", `
package = "p"
[[enum]]
name = "E"
kind = "exception"
max = 3
[[enum.variant]]
name = "A"
number = 1
`, "unknown keys"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.doc))
			require.ErrorContains(t, err, c.err)
		})
	}
}
