package builtin

import (
	"errors"
	"fmt"
	"html"
	htemplate "html/template"
	"maps"
	"strings"
	"unicode/utf8"

	"github.com/skosovsky/cascade"
	"github.com/skosovsky/cascade/internal/cast"
)

// ErrNotNumeric is returned by add and sub for operands that are not numbers.
var ErrNotNumeric = errors.New("builtin: operand is not numeric")

// Ensures Extension implements cascade.Extension.
var _ cascade.Extension = Extension{}

// Extension registers the builtin helpers. Set HTML when the engine renders
// with html/template so that fetch output is not escaped a second time.
type Extension struct {
	HTML bool
}

// Register implements cascade.Extension.
func (x Extension) Register(e *cascade.Engine) {
	e.RegisterFunction("fetch", x.fetch(e))
	e.RegisterFunction("exists", func(name string) (bool, error) { return e.Exists(name) })
	e.RegisterFunction("escape", escape)
	e.RegisterFunction("e", escape)
	e.RegisterFunction("upper", func(v any) string { return strings.ToUpper(cast.String(v)) })
	e.RegisterFunction("lower", func(v any) string { return strings.ToLower(cast.String(v)) })
	e.RegisterFunction("trim", func(v any) string { return strings.TrimSpace(cast.String(v)) })
	e.RegisterFunction("truncate", truncate)
	e.RegisterFunction("default", fallback)
	e.RegisterFunction("join", join)
	e.RegisterFunction("add", add)
	e.RegisterFunction("sub", sub)
	x.registerMarkup(e)
}

// fetch renders another template with the given data maps merged left to right.
func (x Extension) fetch(e *cascade.Engine) any {
	render := func(name string, data ...map[string]any) (string, error) {
		merged := make(map[string]any)
		for _, d := range data {
			maps.Copy(merged, d)
		}
		return e.Render(name, merged)
	}
	if !x.HTML {
		return render
	}
	return func(name string, data ...map[string]any) (htemplate.HTML, error) {
		out, err := render(name, data...)
		return htemplate.HTML(out), err // #nosec G203 -- output of an html/template render
	}
}

func escape(v any) string {
	return html.EscapeString(cast.String(v))
}

// fallback returns def when given is empty. Argument order suits pipelines: {{ .title | default "Untitled" }}.
func fallback(def, given any) any {
	if cast.Empty(given) {
		return def
	}
	return given
}

// truncate keeps at most maxChars runes of v.
func truncate(v any, maxChars int) string {
	text := cast.String(v)
	if maxChars <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	return string([]rune(text)[:maxChars])
}

func join(items any, sep string) (string, error) {
	parts, ok := cast.Strings(items)
	if !ok {
		return "", fmt.Errorf("builtin: join: expected a list, got %T", items)
	}
	return strings.Join(parts, sep), nil
}

func add(a, b any) (float64, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return 0, err
	}
	return x + y, nil
}

func sub(a, b any) (float64, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return 0, err
	}
	return x - y, nil
}

func operands(a, b any) (float64, float64, error) {
	x, err := operand(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := operand(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func operand(v any) (float64, error) {
	f, ok := cast.Number(v)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNotNumeric, v)
	}
	return f, nil
}
