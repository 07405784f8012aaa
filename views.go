package htmxmvc

import (
	"embed"
	"io/fs"
)

//go:embed all:Views
var embeddedViews embed.FS

//go:embed themes/*.yaml
var embeddedThemes embed.FS

// ViewsFS exposes the built-in view tree. Paths keep the "Views/" prefix so
// the tree can be handed straight to the template engine and matches the
// default view locations ("Views/{controller}/{view}.html").
func ViewsFS() fs.FS {
	return embeddedViews
}

// ThemesFS exposes the bundled theme manifests (themes/*.yaml).
func ThemesFS() fs.FS {
	sub, err := fs.Sub(embeddedThemes, "themes")
	if err != nil {
		return embeddedThemes
	}
	return sub
}
