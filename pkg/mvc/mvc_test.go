package mvc_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmx-mvc/pkg/mvc"
	"github.com/goliatone/go-htmx-mvc/pkg/render"
	"github.com/goliatone/go-htmx-mvc/pkg/render/template/gotemplate"
	"github.com/goliatone/go-htmx-mvc/pkg/testsupport"
	"github.com/goliatone/go-htmx-mvc/pkg/view"
)

var testViews = fstest.MapFS{
	"Views/Shared/_Layout.html":  {Data: []byte(`<html><title>{{ title }}</title><main>{{ body|safe }}</main></html>`)},
	"Views/Shared/Oops.html":     {Data: []byte(`<p>shared oops</p>`)},
	"Views/Home/Index.html":      {Data: []byte(`<h1>{{ model.greeting }}</h1>`)},
	"Views/Home/Show.html":       {Data: []byte(`<p>item {{ model }}</p>`)},
	"Views/Status/NotFound.html": {Data: []byte(`<p>missing page</p>`)},
}

type HomeController struct {
	mvc.Base
}

func (c *HomeController) Actions() []mvc.Action {
	return []mvc.Action{
		mvc.Get("Index", c.Index),
		mvc.Get("Show", c.Show),
		mvc.Post("Save", c.Save),
		mvc.Get("Broken", c.Broken),
		mvc.Get("Missing", c.Missing),
		mvc.Get("Oops", c.Oops),
		mvc.Get("Gone", c.Gone),
	}
}

func (c *HomeController) Index(ctx *mvc.ActionContext) (mvc.Result, error) {
	ctx.ViewData["Title"] = "Home"
	return c.ViewOrPartial(ctx, "", map[string]any{"greeting": "Hello"})
}

func (c *HomeController) Show(ctx *mvc.ActionContext) (mvc.Result, error) {
	return c.PartialView(ctx, "", ctx.ID)
}

func (c *HomeController) Save(ctx *mvc.ActionContext) (mvc.Result, error) {
	return c.Redirect("/"), nil
}

func (c *HomeController) Broken(*mvc.ActionContext) (mvc.Result, error) {
	return nil, mvc.StatusError{Code: http.StatusTeapot, Err: errors.New("short and stout")}
}

func (c *HomeController) Missing(ctx *mvc.ActionContext) (mvc.Result, error) {
	return c.View(ctx, "DoesNotExist", nil)
}

func (c *HomeController) Oops(ctx *mvc.ActionContext) (mvc.Result, error) {
	return c.View(ctx, "", nil)
}

func (c *HomeController) Gone(*mvc.ActionContext) (mvc.Result, error) {
	return mvc.StatusResult{Code: http.StatusGone}, nil
}

type StatusController struct {
	mvc.Base
}

func (c *StatusController) Actions() []mvc.Action {
	return []mvc.Action{
		mvc.Get("NotFound", c.NotFoundPage).At("Status/404"),
	}
}

func (c *StatusController) NotFoundPage(ctx *mvc.ActionContext) (mvc.Result, error) {
	result, err := c.View(ctx, "NotFound", nil)
	if err != nil {
		return nil, err
	}
	return result.(mvc.ViewResult).WithStatus(http.StatusNotFound), nil
}

type routerFixture struct {
	router *mvc.Router
	errs   []int
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(testViews))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	registry := mvc.NewRegistry()
	locations := view.NewLocations([]string{"Home", "Status"})
	resolver, err := view.NewResolver(locations, engine)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	selector, err := render.NewSelector(resolver)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}
	base := mvc.NewBase(selector)
	registry.MustRegister(&HomeController{Base: base})
	registry.MustRegister(&StatusController{Base: base})

	presenter, err := mvc.NewPresenter(engine, locations.SharedPath("_Layout"))
	if err != nil {
		t.Fatalf("new presenter: %v", err)
	}

	fixture := &routerFixture{}
	router, err := mvc.NewRouter(registry, presenter, mvc.WithErrorHandler(func(_ *http.Request, status int, _ error) {
		fixture.errs = append(fixture.errs, status)
	}))
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	fixture.router = router
	return fixture
}

func TestRouterDefaultsToHomeIndexFullPage(t *testing.T) {
	fx := newRouterFixture(t)

	for _, target := range []string{"/", "/Home", "/home/index", "/HOME/Index/"} {
		rec := testsupport.Serve(t, fx.router, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", target, rec.Code)
		}
		want := `<html><title>Home</title><main><h1>Hello</h1></main></html>`
		if diff := cmp.Diff(want, rec.Body.String()); diff != "" {
			t.Fatalf("%s: body mismatch (-want +got):\n%s", target, diff)
		}
		if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
			t.Fatalf("%s: content type = %q", target, got)
		}
	}
}

func TestRouterRendersFragmentForHTMX(t *testing.T) {
	fx := newRouterFixture(t)

	rec := testsupport.Serve(t, fx.router, testsupport.HTMXRequest(http.MethodGet, "/", nil))

	if diff := cmp.Diff(`<h1>Hello</h1>`, rec.Body.String()); diff != "" {
		t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
	}
	if got := rec.Header().Get("Vary"); got != render.HeaderRequest {
		t.Fatalf("Vary = %q", got)
	}
}

func TestRouterPassesRouteID(t *testing.T) {
	fx := newRouterFixture(t)

	rec := testsupport.Serve(t, fx.router, httptest.NewRequest(http.MethodGet, "/Home/Show/42", nil))

	if diff := cmp.Diff(`<p>item 42</p>`, rec.Body.String()); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	fx := newRouterFixture(t)

	rec := testsupport.Serve(t, fx.router, httptest.NewRequest(http.MethodGet, "/Home/Save", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("Allow = %q", got)
	}

	rec = testsupport.Serve(t, fx.router, httptest.NewRequest(http.MethodPost, "/Home/Save", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("redirect: status = %d location = %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestRouterRedirectUsesHXRedirectForHTMX(t *testing.T) {
	fx := newRouterFixture(t)

	rec := testsupport.Serve(t, fx.router, testsupport.HTMXRequest(http.MethodPost, "/Home/Save", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get(mvc.HeaderRedirect); got != "/" {
		t.Fatalf("HX-Redirect = %q", got)
	}
}

func TestRouterNotFound(t *testing.T) {
	fx := newRouterFixture(t)

	for _, target := range []string{"/Nope", "/Home/Nope", "/Home/Index/1/extra", "/Status/NotFound"} {
		rec := testsupport.Serve(t, fx.router, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: status = %d", target, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("%s: expected empty body, got %q", target, rec.Body.String())
		}
	}
}

func TestRouterAttributeRoute(t *testing.T) {
	fx := newRouterFixture(t)

	rec := testsupport.Serve(t, fx.router, httptest.NewRequest(http.MethodGet, "/status/404", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<main><p>missing page</p></main>") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestRouterMapsActionErrors(t *testing.T) {
	fx := newRouterFixture(t)

	cases := map[string]int{
		"/Home/Broken":  http.StatusTeapot,
		"/Home/Missing": http.StatusInternalServerError,
	}
	for target, want := range cases {
		fx.errs = nil
		rec := testsupport.Serve(t, fx.router, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != want {
			t.Fatalf("%s: status = %d, want %d", target, rec.Code, want)
		}
		if diff := cmp.Diff([]int{want}, fx.errs); diff != "" {
			t.Fatalf("%s: error hook mismatch (-want +got):\n%s", target, diff)
		}
	}
}

func TestRouterFallsBackToSharedView(t *testing.T) {
	fx := newRouterFixture(t)

	rec := testsupport.Serve(t, fx.router, httptest.NewRequest(http.MethodGet, "/Home/Oops", nil))

	if !strings.Contains(rec.Body.String(), "<p>shared oops</p>") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestRouterStatusResult(t *testing.T) {
	fx := newRouterFixture(t)

	rec := testsupport.Serve(t, fx.router, httptest.NewRequest(http.MethodGet, "/Home/Gone", nil))

	if rec.Code != http.StatusGone || rec.Body.Len() != 0 {
		t.Fatalf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}

func TestRegistryNamesAndLookup(t *testing.T) {
	registry := mvc.NewRegistry()
	registry.MustRegister(&StatusController{})
	registry.MustRegister(&HomeController{})

	if diff := cmp.Diff([]string{"Home", "Status"}, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	name, _, ok := registry.Get("home")
	if !ok || name != "Home" {
		t.Fatalf("Get(home) = %q, %v", name, ok)
	}
	if err := registry.Register(&HomeController{}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.RegisterNamed("", &HomeController{}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if registry.Has("Person") {
		t.Fatalf("unexpected controller Person")
	}
}

func TestNewRouterRejectsNilHandler(t *testing.T) {
	registry := mvc.NewRegistry()
	if err := registry.RegisterNamed("Bad", actionsFunc(func() []mvc.Action {
		return []mvc.Action{{Name: "Index"}}
	})); err != nil {
		t.Fatalf("register: %v", err)
	}
	presenter, err := mvc.NewPresenter(stubEngine{}, "")
	if err != nil {
		t.Fatalf("presenter: %v", err)
	}
	if _, err := mvc.NewRouter(registry, presenter); err == nil {
		t.Fatalf("expected error for action without handler")
	}
}

type actionsFunc func() []mvc.Action

func (f actionsFunc) Actions() []mvc.Action { return f() }
