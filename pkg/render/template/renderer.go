package template

import (
	"io"
)

// TemplateRenderer is the seam between controllers' view results and the
// template engine. Exists doubles as the view resolver's probe.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
	Exists(name string) bool
	Invalidate(names ...string)
}
