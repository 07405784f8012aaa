package server

import (
	"fmt"
	"os"
	"path/filepath"

	htmxmvc "github.com/goliatone/go-htmx-mvc"
	"github.com/goliatone/go-htmx-mvc/internal/config"
	"github.com/goliatone/go-htmx-mvc/internal/controllers"
	"github.com/goliatone/go-htmx-mvc/internal/site"
	"github.com/goliatone/go-htmx-mvc/pkg/render/template/gotemplate"
	"github.com/goliatone/go-htmx-mvc/pkg/view"
)

// Views bundles the template engine with the view locations computed once
// at startup.
type Views struct {
	Engine    *gotemplate.Engine
	Locations view.Locations
	Resolver  *view.Resolver
	Layout    string
	// WatchDir is the on-disk views root, empty for embedded views.
	WatchDir string
}

// BuildViews creates the engine and resolver described by cfg. Views come
// from cfg.Views.Dir (the directory holding the views root) or the embedded
// tree when it is empty.
func BuildViews(cfg config.ViewsConfig, globals map[string]any) (*Views, error) {
	opts := []gotemplate.Option{
		gotemplate.WithExtension(cfg.Extension),
		gotemplate.WithGlobalData(globals),
	}
	if cfg.Dir != "" {
		opts = append(opts, gotemplate.WithBaseDir(cfg.Dir))
	} else {
		opts = append(opts, gotemplate.WithFS(htmxmvc.ViewsFS()))
	}

	engine, err := gotemplate.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("server: template engine: %w", err)
	}

	locations := view.NewLocations(controllers.Names(),
		view.WithRoot(cfg.Root),
		view.WithShared(cfg.Shared),
		view.WithExtension(cfg.Extension),
	)
	resolver, err := view.NewResolver(locations, engine)
	if err != nil {
		return nil, fmt.Errorf("server: view resolver: %w", err)
	}

	views := &Views{
		Engine:    engine,
		Locations: locations,
		Resolver:  resolver,
	}
	if cfg.Layout != "" {
		views.Layout = locations.SharedPath(cfg.Layout)
	}
	if cfg.Dir != "" {
		views.WatchDir = filepath.Join(cfg.Dir, filepath.FromSlash(locations.Root()))
	}
	return views, nil
}

// Globals resolves the configured theme into layout globals.
func Globals(cfg config.Config) (map[string]any, error) {
	manifestFS := htmxmvc.ThemesFS()
	if cfg.Theme.Manifests != "" {
		manifestFS = os.DirFS(cfg.Theme.Manifests)
	}
	manifests, err := site.LoadManifestFS(manifestFS)
	if err != nil {
		return nil, err
	}
	themes, err := site.NewThemes(manifests...)
	if err != nil {
		return nil, err
	}
	selection, err := themes.Select(cfg.Theme.Name, cfg.Theme.Variant)
	if err != nil {
		return nil, err
	}
	info := site.Info{Name: SiteName, HTMXScript: cfg.HTMX.ScriptURL}
	return site.Globals(info, site.RendererConfig(selection)), nil
}
