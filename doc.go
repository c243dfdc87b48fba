// Package cascade resolves logical template names to files across prioritized
// folders and renders them with preassigned data and registered functions.
//
// Folders form an override chain: a bare name such as "emails/welcome" is
// looked up in every folder in ascending priority order and the first match
// wins, so a child theme (priority 1) shadows a parent theme (priority 10),
// which shadows the bundled defaults (priority 100). "folder::name" pins the
// lookup to one folder.
//
// The package does not define a template language. Files are executed by a
// Renderer; GoRenderer uses text/template or html/template, and the
// handlebars subpackage provides a Handlebars renderer.
package cascade
