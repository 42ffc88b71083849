package pacgen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
	"unicode"
)

const pacImport = "github.com/Tiwalun/riscv/rvgo/pac"

type kindInfo struct {
	Width    string // underlying integer type of the numbers
	Contract string // pac constraint asserted for the enum
	PacKind  string // pac.Kind reported in errors
	MaxFunc  string
	Marker   string // marker method, if any
}

var kinds = map[Kind]kindInfo{
	KindException:         {"uint16", "ExceptionNumber", "KindException", "MaxExceptionNumber", ""},
	KindInterrupt:         {"uint16", "InterruptNumber", "KindInterrupt", "MaxInterruptNumber", ""},
	KindCoreInterrupt:     {"uint16", "CoreInterruptNumber", "KindInterrupt", "MaxInterruptNumber", "CoreInterrupt"},
	KindExternalInterrupt: {"uint16", "ExternalInterruptNumber", "KindInterrupt", "MaxInterruptNumber", "ExternalInterrupt"},
	KindPriority:          {"uint8", "PriorityNumber", "KindPriority", "MaxPriorityNumber", ""},
	KindHartId:            {"uint16", "HartIdNumber", "KindHartId", "MaxHartIdNumber", ""},
}

type enumData struct {
	Enum
	kindInfo
	Recv string
	Max  uint16
}

var fileTmpl = template.Must(template.New("pac").Funcs(template.FuncMap{
	"comment": comment,
}).Parse(`// Code generated by rvpac gen. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"

	"` + pacImport + `"
)
{{range .Enums}}{{$enum := .}}
{{comment .Doc}}type {{.Name}} {{.Width}}

const (
{{- range .Variants}}
	{{comment .Doc}}{{.Name}} {{$enum.Name}} = {{.Number}}
{{- end}}
)

// {{.Name}}Variants lists every {{.Name}} in declaration order.
var {{.Name}}Variants = []{{.Name}}{
{{- range .Variants}}
	{{.Name}},
{{- end}}
}

var _ pac.{{.Contract}}[{{.Name}}] = {{.Name}}(0)

func ({{.Recv}} {{.Name}}) Number() {{.Width}} {
	return {{.Width}}({{.Recv}})
}

func ({{.Name}}) FromNumber(n {{.Width}}) ({{.Name}}, error) {
	switch {{.Name}}(n) {
	case {{range $i, $v := .Variants}}{{if $i}},
		{{end}}{{$v.Name}}{{end}}:
		return {{.Name}}(n), nil
	}
	return 0, pac.NewNumberError(pac.{{.PacKind}}, uint64(n))
}

func ({{.Name}}) {{.MaxFunc}}() {{.Width}} {
	return {{.Max}}
}
{{if .Marker}}
func ({{.Name}}) {{.Marker}}() {}
{{end}}
func ({{.Recv}} {{.Name}}) String() string {
	switch {{.Recv}} {
{{- range .Variants}}
	case {{.Name}}:
		return "{{.Name}}"
{{- end}}
	}
	return fmt.Sprintf("{{.Name}}(%d)", {{.Width}}({{.Recv}}))
}
{{end}}`))

// Generate renders the Go source implementing the numbering contracts of cfg.
func Generate(cfg *Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	data := struct {
		Package string
		Enums   []enumData
	}{Package: cfg.Package}
	for _, e := range cfg.Enums {
		d := enumData{
			Enum:     e,
			kindInfo: kinds[e.Kind],
			Recv:     string(unicode.ToLower(rune(e.Name[0]))),
			Max:      e.Max(),
		}
		if d.Doc == "" {
			d.Doc = fmt.Sprintf("%s enumerates %s numbers.", e.Name, strings.ReplaceAll(string(e.Kind), "_", " "))
		}
		data.Enums = append(data.Enums, d)
	}
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render package %s: %w", cfg.Package, err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format package %s: %w", cfg.Package, err)
	}
	return out, nil
}

// GenerateToFile renders cfg and writes the result to path.
func GenerateToFile(cfg *Config, path string, perm os.FileMode) error {
	src, err := Generate(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, perm); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

func comment(doc string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return ""
	}
	var sb strings.Builder
	for _, line := range strings.Split(doc, "\n") {
		sb.WriteString("// ")
		sb.WriteString(strings.TrimSpace(line))
		sb.WriteString("\n")
	}
	return sb.String()
}
