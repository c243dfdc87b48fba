package handlebars

import (
	"fmt"

	"github.com/aymerick/raymond"

	"github.com/skosovsky/cascade"
)

// Ensures Renderer implements cascade.Renderer.
var _ cascade.Renderer = (*Renderer)(nil)

// Renderer executes template files with raymond.
type Renderer struct{}

// New returns a Handlebars renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderFile implements cascade.Renderer.
func (r *Renderer) RenderFile(path string, data map[string]any, funcs cascade.FunctionSource) (string, error) {
	tpl, err := raymond.ParseFile(path)
	if err != nil {
		return "", err
	}
	if funcs != nil {
		if err := registerHelpers(tpl, funcs); err != nil {
			return "", err
		}
	}
	return tpl.Exec(data)
}

// registerHelpers installs the current registry contents on tpl.
// raymond panics on helpers it cannot call; that is reported as an error.
func registerHelpers(tpl *raymond.Template, funcs cascade.FunctionSource) (err error) {
	var name string
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("handlebars: helper %q: %v", name, rec)
		}
	}()
	for _, name = range funcs.Names() {
		f, lookupErr := funcs.Get(name)
		if lookupErr != nil {
			return lookupErr
		}
		tpl.RegisterHelper(name, f.Callback())
	}
	return nil
}
