package output

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

// templateFormatter renders a Document through an embedded text/template.
type templateFormatter struct {
	name        string
	description string
	file        string
}

func newTemplateFormatter(name, description, file string) *templateFormatter {
	return &templateFormatter{name: name, description: description, file: file}
}

// templateData is the value passed to the embedded templates.
type templateData struct {
	Name    string
	Primary string
	Mode    string
	Shades  []templateShade
}

type templateShade struct {
	Key   string
	Value string
}

// Name returns the format name.
func (f *templateFormatter) Name() string {
	return f.name
}

// Description returns the format description.
func (f *templateFormatter) Description() string {
	return f.description
}

// Format renders the document.
func (f *templateFormatter) Format(doc Document) ([]byte, error) {
	content, err := templates.ReadFile("templates/" + f.file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s template: %w", f.name, err)
	}

	tmpl, err := template.New(f.file).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", f.name, err)
	}

	data := templateData{
		Name:    doc.identifier(),
		Primary: doc.Palette.Primary.Hex(),
		Mode:    doc.Mode.String(),
	}
	for key, c := range doc.Palette.Swatch.All() {
		data.Shades = append(data.Shades, templateShade{Key: key.String(), Value: c.Hex()})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", f.name, err)
	}
	return buf.Bytes(), nil
}
