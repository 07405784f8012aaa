package site

import (
	theme "github.com/goliatone/go-theme"
)

// StylesheetAsset is the manifest asset key linked from the layout.
const StylesheetAsset = "stylesheet"

// Info describes the site for the layout.
type Info struct {
	Name       string
	HTMXScript string
}

// Globals builds the template globals read by the shared layout.
func Globals(info Info, cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		cfg = &theme.RendererConfig{}
	}
	asset := cfg.AssetURL
	if asset == nil {
		asset = func(string) string { return "" }
	}

	var stylesheets []string
	if href := asset(StylesheetAsset); href != "" {
		stylesheets = append(stylesheets, href)
	}

	return map[string]any{
		"site": map[string]any{
			"name":        info.Name,
			"theme":       cfg.Theme,
			"variant":     cfg.Variant,
			"tokens":      cfg.Tokens,
			"css_vars":    cfg.CSSVars,
			"stylesheets": stylesheets,
		},
		"htmx_script": info.HTMXScript,
		"asset":       asset,
	}
}
