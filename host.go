package cascade

import "path/filepath"

// Host answers the path questions the engine asks while it is constructed.
type Host interface {
	// BasePath returns the absolute path of dir inside the application that ships default templates.
	BasePath(dir string) string
	// TemplateDirectory returns the root of the active (parent) theme.
	TemplateDirectory() string
	// StylesheetDirectory returns the root of the active child theme, or
	// the same value as TemplateDirectory when there is no child theme.
	StylesheetDirectory() string
}

// DirHost is a Host backed by plain directories.
// An empty ChildTheme means the parent theme is also the active theme.
type DirHost struct {
	Base       string
	Theme      string
	ChildTheme string
}

// Ensures DirHost implements Host.
var _ Host = DirHost{}

// BasePath implements Host.
func (h DirHost) BasePath(dir string) string {
	return filepath.Join(h.Base, dir)
}

// TemplateDirectory implements Host.
func (h DirHost) TemplateDirectory() string { return h.Theme }

// StylesheetDirectory implements Host.
func (h DirHost) StylesheetDirectory() string {
	if h.ChildTheme == "" {
		return h.Theme
	}
	return h.ChildTheme
}
