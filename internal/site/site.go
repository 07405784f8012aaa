package site

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultTheme is selected when no theme name is configured.
const DefaultTheme = "default"

// Themes selects registered theme manifests and resolves variants.
type Themes struct {
	provider  theme.ThemeProvider
	manifests map[string]*theme.Manifest
	names     []string
}

var _ theme.ThemeSelector = (*Themes)(nil)

// NewThemes registers manifests with a go-theme registry.
func NewThemes(manifests ...*theme.Manifest) (*Themes, error) {
	registry := theme.NewRegistry()
	t := &Themes{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("site: register theme %q: %w", manifest.Name, err)
		}
		t.manifests[manifest.Name] = manifest
		t.names = append(t.names, manifest.Name)
	}
	if len(t.names) == 0 {
		return nil, fmt.Errorf("site: no theme manifests")
	}
	sort.Strings(t.names)
	t.provider = registry
	return t, nil
}

// Provider exposes the underlying go-theme registry.
func (t *Themes) Provider() theme.ThemeProvider { return t.provider }

// Names lists the registered themes.
func (t *Themes) Names() []string {
	return append([]string(nil), t.names...)
}

// Select picks a theme and variant. An empty name falls back to
// DefaultTheme, or the first registered theme when there is none.
func (t *Themes) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)
	if name == "" {
		name = DefaultTheme
		if _, ok := t.manifests[name]; !ok {
			name = t.names[0]
		}
	}

	manifest, ok := t.manifests[name]
	if !ok {
		return nil, fmt.Errorf("site: theme %q not registered", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("site: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// RendererConfig merges the selected variant over its base theme.
func RendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return &theme.RendererConfig{}
	}
	manifest := selection.Manifest
	variant := manifest.Variants[selection.Variant]

	tokens := mergeStrings(manifest.Tokens, variant.Tokens)
	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}
	files := mergeStrings(manifest.Assets.Files, variant.Assets.Files)

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: mergeStrings(manifest.Templates, variant.Templates),
		Tokens:   tokens,
		CSSVars:  cssVars(tokens),
		AssetURL: func(key string) string {
			return assetURL(prefix, files[key])
		},
	}
}

func mergeStrings(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}

func cssVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		out["--"+strings.TrimPrefix(key, "--")] = value
	}
	return out
}

func assetURL(prefix, file string) string {
	file = strings.TrimSpace(file)
	if file == "" {
		return ""
	}
	if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
}
