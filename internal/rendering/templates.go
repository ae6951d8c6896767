// Package rendering assembles selected portfolio content into a self-contained printable HTML document.
package rendering

import (
	"embed"
	"fmt"
	"os"
	"sync"
	"text/template"

	"github.com/jonathan/portfolio-cv/internal/types"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

const partialsFile = "templates/partials.tmpl"

// Layout names the embedded document templates.
type Layout string

const (
	LayoutCV     Layout = "cv"
	LayoutResume Layout = "resume"
)

// LayoutFor returns the layout a document type renders with.
func LayoutFor(docType types.DocumentType) Layout {
	if docType == types.DocumentCV {
		return LayoutCV
	}
	return LayoutResume
}

// cache stores parsed embedded templates to avoid repeated parsing
var (
	cache   = make(map[Layout]*template.Template)
	cacheMu sync.RWMutex
)

// embeddedTemplate loads and caches the template of a layout.
func embeddedTemplate(layout Layout) (*template.Template, error) {
	cacheMu.RLock()
	if tmpl, exists := cache[layout]; exists {
		cacheMu.RUnlock()
		return tmpl, nil
	}
	cacheMu.RUnlock()

	name := fmt.Sprintf("templates/%s.tmpl", layout)
	tmpl, err := template.New(string(layout)).ParseFS(templateFiles, partialsFile, name)
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to parse embedded template %s", name),
			Cause:   err,
		}
	}
	tmpl = tmpl.Lookup(string(layout) + ".tmpl")
	if tmpl == nil {
		return nil, &TemplateError{Message: fmt.Sprintf("embedded template %s not found", name)}
	}

	cacheMu.Lock()
	cache[layout] = tmpl
	cacheMu.Unlock()

	return tmpl, nil
}

// parseTemplate reads and parses a custom document template file. The shared
// partials (styles, header, skills, section) are available to it. TemplateData
// arrives HTML-escaped, so templates print its fields as-is.
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	tmpl, err := template.New("document").ParseFS(templateFiles, partialsFile)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template partials",
			Cause:   err,
		}
	}

	tmpl, err = tmpl.Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}

// ClearCache clears the template cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[Layout]*template.Template)
	cacheMu.Unlock()
}
