package materialize

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

// Packaged configuration content. static/ files are copied verbatim;
// templates/ files are rendered with TemplateData before writing.
//
//go:embed static templates
var assets embed.FS

// TemplateData holds the variables available to packaged templates.
type TemplateData struct {
	ConfDir string
	PidDir  string
	LogDir  string
}

// RenderTemplate renders the packaged template for name with data. An
// optional tag selects a template variant ("name-tag" instead of "name").
// Rendering is pure and does not touch the target filesystem.
func RenderTemplate(name, tag string, data TemplateData) ([]byte, error) {
	tmplName := name
	if tag != "" {
		tmplName = name + "-" + tag
	}
	tmplPath := "templates/" + tmplName + ".tmpl"

	raw, err := assets.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("no packaged template for %q: %w", tmplName, err)
	}

	tmpl, err := template.New(tmplName).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}

// StaticContent returns the verbatim bytes of a packaged static file.
func StaticContent(name string) ([]byte, error) {
	raw, err := assets.ReadFile("static/" + name)
	if err != nil {
		return nil, fmt.Errorf("no packaged static file %q: %w", name, err)
	}
	return raw, nil
}
