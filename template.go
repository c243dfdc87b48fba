package cascade

import "maps"

// Template binds a resolved file to its merged data for a single render.
// Build one with Engine.Make; it is not cached by the engine.
type Template struct {
	engine *Engine
	name   string
	path   string
	data   map[string]any
}

// Name returns the logical name the template was made from.
func (t *Template) Name() string { return t.name }

// Path returns the resolved file path.
func (t *Template) Path() string { return t.path }

// Data returns a copy of the data the template will render with.
func (t *Template) Data() map[string]any { return maps.Clone(t.data) }

// Render merges extra over the template data (extra wins) and delegates to the
// engine's renderer. Renderer errors are returned unmodified.
func (t *Template) Render(extra map[string]any) (string, error) {
	merged := maps.Clone(t.data)
	if merged == nil {
		merged = make(map[string]any, len(extra))
	}
	maps.Copy(merged, extra)
	return t.engine.renderer.RenderFile(t.path, merged, t.engine.functions)
}
