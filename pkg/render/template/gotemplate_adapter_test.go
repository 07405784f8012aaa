package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-htmx-mvc/pkg/render/template/gotemplate"
	"github.com/goliatone/go-htmx-mvc/pkg/testsupport"
)

//go:embed testdata/templates
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("Views/Home/Index", map[string]any{"name": "Ada"}, w)
	})

	if result != written {
		t.Fatalf("render template mismatch writer\nresult: %q\nwriter: %q", result, written)
	}
	assertGolden(t, "hello.golden", result)
}

func TestGoTemplateEngine_IncludeAndGlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("Views/Shared/Card.html", map[string]any{"name": "Ada"}, w)
	})

	assertGolden(t, "include-global.golden", result)
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("Views/Shared/Filter", map[string]any{"name": "Ada"}, w)
	})

	assertGolden(t, "filter.golden", result)
}

func TestGoTemplateEngine_Exists(t *testing.T) {
	engine := newEngine(t)

	cases := map[string]bool{
		"Views/Home/Index.html":   true,
		"Views/Home/Index":        true,
		"Views/Person/Index.html": false,
		"Views/Home":              false,
		"":                        false,
	}
	for name, want := range cases {
		if got := engine.Exists(name); got != want {
			t.Fatalf("Exists(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestGoTemplateEngine_InvalidateReloadsTemplates(t *testing.T) {
	files := fstest.MapFS{
		"Views/Home/Index.html": &fstest.MapFile{Data: []byte("v1 {{ name }}")},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	first, err := engine.RenderTemplate("Views/Home/Index", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first != "v1 Ada" {
		t.Fatalf("unexpected first render %q", first)
	}

	files["Views/Home/Index.html"] = &fstest.MapFile{Data: []byte("v2 {{ name }}")}

	cached, err := engine.RenderTemplate("Views/Home/Index", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render cached: %v", err)
	}
	if cached != "v1 Ada" {
		t.Fatalf("expected cached template before invalidation, got %q", cached)
	}

	engine.Invalidate("Views/Home/Index")

	reloaded, err := engine.RenderTemplate("Views/Home/Index", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render reloaded: %v", err)
	}
	if reloaded != "v2 Ada" {
		t.Fatalf("expected reloaded template, got %q", reloaded)
	}
}

func TestGoTemplateEngine_StructDataUsesJSONNames(t *testing.T) {
	type person struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString("{{ model.name }} is {{ model.age }}", map[string]any{
		"model": person{Name: "Ada", Age: 36},
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "Ada is 36" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestGoTemplateEngine_FuncGlobals(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(fstest.MapFS{}),
		gotemplate.WithGlobalData(map[string]any{
			"asset": func(name string) string { return "/static/" + name },
			"site":  map[string]any{"name": "Demo"},
		}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString(`{{ site.name }} {{ asset("app.css") }}`, nil)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "Demo /static/app.css" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestGoTemplateEngine_FirstErrorFilter(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString("[{{ errors.name|first_error }}][{{ errors.city|first_error }}]", map[string]any{
		"errors": map[string][]string{"name": {"Name is required.", "Too short."}},
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "[Name is required.][]" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestGoTemplateEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)

	if _, err := engine.RenderTemplate("Views/Nope/Index", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
	if _, err := gotemplate.New(gotemplate.WithBaseDir(filepath.Join(t.TempDir(), "missing"))); err == nil {
		t.Fatalf("expected error for missing base dir")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()

	path := filepath.Join("testdata", name)
	if testsupport.WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, path)
	if got != want {
		t.Fatalf("%s mismatch\nwant: %q\n got: %q", name, want, got)
	}
}
