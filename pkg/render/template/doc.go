// Package template defines the renderer-agnostic template contract used by the
// presentation layer. The gotemplate subpackage provides the pongo2-backed
// implementation.
package template
