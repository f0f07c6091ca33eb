package formatting

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// WriteTemplate executes the Go template tmpl against v. Fields are
// addressed by their JSON names, e.g. {{range .}}{{.name}}{{"\n"}}{{end}}.
// The sprig function library is available.
func WriteTemplate(w io.Writer, tmpl string, v interface{}) error {
	t, err := template.New("output").Funcs(sprig.TxtFuncMap()).Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("invalid go-template: %w", err)
	}

	data, err := toGeneric(v)
	if err != nil {
		return fmt.Errorf("failed to prepare template data: %w", err)
	}

	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute go-template: %w", err)
	}
	return nil
}
