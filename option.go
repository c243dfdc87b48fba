package cascade

import "go.uber.org/zap"

// Option configures an Engine (functional options pattern).
type Option func(*Engine)

// WithThemeTemplatesDirectory sets the directory name looked up inside the
// parent and child themes, e.g. "my-plugin". Empty disables theme overrides.
func WithThemeTemplatesDirectory(dir string) Option {
	return func(e *Engine) {
		e.themeTemplatesDirectory = dir
	}
}

// WithFileExtension sets the template file extension (without a dot). Validated by New.
func WithFileExtension(ext string) Option {
	return func(e *Engine) {
		e.pendingExtension = ext
	}
}

// WithRenderer sets the render delegate. Default is GoRenderer{} (text/template).
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithLogger sets the logger for registry and resolution events. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithExtensions loads extensions once the default folders are registered.
func WithExtensions(exts ...Extension) Option {
	return func(e *Engine) {
		e.pendingExtensions = append(e.pendingExtensions, exts...)
	}
}
