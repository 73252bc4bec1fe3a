// Where: internal/infra/render/render.go
// What: Render registry data through text/template with sprig helpers.
// Why: Provide the templating consumer side of the registry contract.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/poruru-code/hostenv/internal/domain/hostctx"
	"github.com/poruru-code/hostenv/internal/domain/registry"
	"github.com/poruru-code/hostenv/internal/meta"
)

const builtinSuffix = ".tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// Data is the value templates execute against.
type Data struct {
	Path     registry.Path
	Entries  []hostctx.HostnameContext
	Document map[string]any
	Suffix   string
}

// NewData snapshots reg at path for rendering.
func NewData(reg *registry.Registry, path registry.Path) Data {
	path = path.WithDefaults()
	return Data{
		Path:     path,
		Entries:  reg.Contexts(path),
		Document: reg.Document(),
		Suffix:   meta.BrevSuffix,
	}
}

// Builtins lists the embedded template names.
func Builtins() []string {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), builtinSuffix))
	}
	sort.Strings(names)
	return names
}

// IsBuiltin reports whether name refers to an embedded template.
func IsBuiltin(name string) bool {
	for _, builtin := range Builtins() {
		if builtin == name {
			return true
		}
	}
	return false
}

// Render executes ref, a builtin name or a template file path.
func Render(ref string, data Data) (string, error) {
	if IsBuiltin(ref) {
		return RenderBuiltin(ref, data)
	}
	return RenderFile(ref, data)
}

// RenderBuiltin executes the embedded template name.
func RenderBuiltin(name string, data Data) (string, error) {
	tmpl, err := loadBuiltin(name)
	if err != nil {
		return "", err
	}
	return execute(tmpl, data)
}

// RenderFile parses and executes the template at path. Files are not cached.
func RenderFile(path string, data Data) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	tmpl, err := template.New(filepath.Base(path)).Funcs(sprig.TxtFuncMap()).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", path, err)
	}
	return execute(tmpl, data)
}

func execute(tmpl *template.Template, data Data) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func loadBuiltin(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	file := name + builtinSuffix
	tmpl, err := template.New(file).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+file)
	if err != nil {
		return nil, fmt.Errorf("load builtin template %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
