// Package builtin provides a cascade extension with general purpose template
// helpers, including fetch for rendering another logical name through the
// same folder cascade.
//
// markdown and sanitize return sanitized HTML; bytes formats sizes for humans.
//
// The helpers follow text/template conventions (a trailing error result,
// variadic arguments) and are meant for cascade.GoRenderer.
package builtin
