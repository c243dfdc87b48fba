// Package cli implements the cascade command: rendering, resolving and
// listing templates from the command line.
package cli
