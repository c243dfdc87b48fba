package cascade

import (
	"bytes"
	"fmt"
	htemplate "html/template"
	"os"
	"path/filepath"
	ttemplate "text/template"
	"unicode"
)

// Renderer executes one resolved template file with its data and functions.
// Implementations must return their own errors unchanged by the engine.
type Renderer interface {
	RenderFile(path string, data map[string]any, funcs FunctionSource) (string, error)
}

// GoRenderer renders files with text/template, or html/template when HTML is set.
// Every registered function is exposed through a trampoline that looks the
// function up by name on each call.
type GoRenderer struct {
	HTML bool
	// Options are passed to Template.Option, e.g. "missingkey=error".
	Options []string
}

// Ensures GoRenderer implements Renderer.
var _ Renderer = GoRenderer{}

// RenderFile implements Renderer.
func (r GoRenderer) RenderFile(path string, data map[string]any, funcs FunctionSource) (string, error) {
	src, err := os.ReadFile(path) // #nosec G304 -- path comes from folder resolution
	if err != nil {
		return "", err
	}
	funcMap, err := trampolines(funcs)
	if err != nil {
		return "", err
	}
	name := filepath.Base(path)
	var buf bytes.Buffer
	if r.HTML {
		tpl, err := htemplate.New(name).Option(r.Options...).Funcs(htemplate.FuncMap(funcMap)).Parse(string(src))
		if err != nil {
			return "", err
		}
		if err := tpl.Execute(&buf, data); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	tpl, err := ttemplate.New(name).Option(r.Options...).Funcs(ttemplate.FuncMap(funcMap)).Parse(string(src))
	if err != nil {
		return "", err
	}
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func trampolines(funcs FunctionSource) (map[string]any, error) {
	if funcs == nil {
		return nil, nil
	}
	names := funcs.Names()
	out := make(map[string]any, len(names))
	for _, name := range names {
		if !isIdentifier(name) {
			return nil, fmt.Errorf("cascade: function name %q is not a valid template identifier", name)
		}
		out[name] = func(args ...any) (any, error) {
			f, err := funcs.Get(name)
			if err != nil {
				return nil, err
			}
			v, err := f.Call(args...)
			if v == nil && err == nil {
				return "", nil
			}
			return v, err
		}
	}
	return out, nil
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
