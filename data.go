package cascade

import "maps"

// Data stores preassigned template variables, either global or scoped to template names.
type Data struct {
	global    map[string]any
	templates map[string]map[string]any
}

// NewData returns an empty store.
func NewData() *Data {
	return &Data{
		global:    make(map[string]any),
		templates: make(map[string]map[string]any),
	}
}

// Add merges data into the global scope when no templates are given,
// otherwise into the scope of each named template. Later keys overwrite earlier ones.
func (d *Data) Add(data map[string]any, templates ...string) {
	if len(templates) == 0 {
		maps.Copy(d.global, data)
		return
	}
	for _, name := range templates {
		scope, ok := d.templates[name]
		if !ok {
			scope = make(map[string]any, len(data))
			d.templates[name] = scope
		}
		maps.Copy(scope, data)
	}
}

// Get returns a fresh map with the global data, overlaid with the scope of
// template when template is non-empty. Scoped keys win over global ones.
func (d *Data) Get(template string) map[string]any {
	out := maps.Clone(d.global)
	if out == nil {
		out = make(map[string]any)
	}
	if template != "" {
		maps.Copy(out, d.templates[template])
	}
	return out
}
