package emit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Entry is one exported pattern of a generated module.
type Entry struct {
	Name    string
	Pattern string
	Source  string
	Flags   string
	// Notes are diagnostics repeated as comments above the constant.
	Notes []string
}

type moduleEntry struct {
	Entry

	Ident   string
	Literal string
}

var moduleTemplate = template.Must(template.New("module").
	Funcs(template.FuncMap{"comment": comment}).
	Parse(`// Code generated by regex-transpiler. DO NOT EDIT.
{{range .}}
// {{comment .Name}}: {{comment .Pattern}}
{{range .Notes}}// warning: {{comment .}}
{{end}}export const {{.Ident}} = {{.Literal}};
{{end}}`))

// comment keeps a value on a single comment line.
func comment(s string) string {
	return strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\r`).Replace(s)
}

// Module renders an ES module exporting one constant per entry.
// Constant names derive from entry names and are made unique.
func Module(entries []Entry) ([]byte, error) {
	taken := make(map[string]struct{})
	data := make([]moduleEntry, 0, len(entries))

	for _, e := range entries {
		data = append(data, moduleEntry{
			Entry:   e,
			Ident:   NewStem(Identifier(e.Name), taken).Next(),
			Literal: Literal(e.Source, e.Flags),
		})
	}

	var buf bytes.Buffer
	if err := moduleTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing module template: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes content to path, creating its directory if needed.
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
