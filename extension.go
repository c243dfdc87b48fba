package cascade

// Extension mutates an engine's registries: folders, data, functions or any combination.
type Extension interface {
	Register(e *Engine)
}

// ExtensionFunc adapts a plain function to Extension.
type ExtensionFunc func(e *Engine)

// Register implements Extension.
func (f ExtensionFunc) Register(e *Engine) { f(e) }
