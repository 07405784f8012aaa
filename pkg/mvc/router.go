package mvc

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const (
	// DefaultController answers the site root.
	DefaultController = "Home"
	// DefaultAction answers a bare controller path.
	DefaultAction = "Index"

	routeIDSegment = "{id}"
)

// ErrorHandler observes action errors before the router answers with a
// bodiless status.
type ErrorHandler func(r *http.Request, status int, err error)

// RouterOption customises NewRouter.
type RouterOption func(*Router)

// WithDefaults overrides the conventional default controller and action.
func WithDefaults(controller, action string) RouterOption {
	return func(r *Router) {
		if c := strings.TrimSpace(controller); c != "" {
			r.defaultController = c
		}
		if a := strings.TrimSpace(action); a != "" {
			r.defaultAction = a
		}
	}
}

// WithErrorHandler registers a hook for action errors, typically logging.
func WithErrorHandler(fn ErrorHandler) RouterOption {
	return func(r *Router) {
		r.onError = fn
	}
}

// Router dispatches requests to controller actions using attribute routes
// first and the conventional {controller=Home}/{action=Index}/{id?} pattern
// second. Segment matching is case-insensitive.
type Router struct {
	registry          *Registry
	presenter         *Presenter
	defaultController string
	defaultAction     string
	onError           ErrorHandler

	attributes []attributeRoute
}

type attributeRoute struct {
	segments   []string
	controller string
	action     Action
}

// NewRouter snapshots the routes of every controller in registry. Register
// all controllers before building the router.
func NewRouter(registry *Registry, presenter *Presenter, opts ...RouterOption) (*Router, error) {
	if registry == nil {
		return nil, errors.New("mvc: controller registry is required")
	}
	if presenter == nil {
		return nil, errors.New("mvc: presenter is required")
	}

	router := &Router{
		registry:          registry,
		presenter:         presenter,
		defaultController: DefaultController,
		defaultAction:     DefaultAction,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(router)
	}

	for _, name := range registry.Names() {
		_, controller, _ := registry.Get(name)
		for _, action := range controller.Actions() {
			if action.Handler == nil {
				return nil, fmt.Errorf("mvc: %s.%s has no handler", name, action.Name)
			}
			if action.Route == "" {
				continue
			}
			router.attributes = append(router.attributes, attributeRoute{
				segments:   splitPath(action.Route),
				controller: name,
				action:     action,
			})
		}
	}
	return router, nil
}

// ServeHTTP routes r and writes the action result.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	segments := splitPath(r.URL.Path)

	controller, candidates, id, ok := rt.matchAttribute(segments)
	if !ok {
		controller, candidates, id, ok = rt.matchConventional(segments)
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var action *Action
	for i := range candidates {
		if candidates[i].Allows(r.Method) {
			action = &candidates[i]
			break
		}
	}
	if action == nil {
		w.Header().Set("Allow", strings.Join(allowedMethods(candidates), ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	ctx := NewActionContext(w, r, controller, action.Name, id)
	result, err := action.Handler(ctx)
	if err == nil && result == nil {
		err = fmt.Errorf("mvc: %s.%s returned no result", controller, action.Name)
	}
	if err == nil {
		err = result.Execute(ctx, rt.presenter)
	}
	if err != nil {
		rt.fail(w, r, err)
	}
}

func (rt *Router) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	if rt.onError != nil {
		rt.onError(r, status, err)
	}
	w.WriteHeader(status)
}

func (rt *Router) matchAttribute(segments []string) (string, []Action, string, bool) {
	var (
		controller string
		actions    []Action
		id         string
	)
	for _, route := range rt.attributes {
		routeID, ok := matchSegments(route.segments, segments)
		if !ok {
			continue
		}
		if controller == "" {
			controller, id = route.controller, routeID
		}
		if route.controller == controller {
			actions = append(actions, route.action)
		}
	}
	return controller, actions, id, len(actions) > 0
}

func (rt *Router) matchConventional(segments []string) (string, []Action, string, bool) {
	if len(segments) > 3 {
		return "", nil, "", false
	}
	controllerName, actionName, id := rt.defaultController, rt.defaultAction, ""
	if len(segments) > 0 {
		controllerName = segments[0]
	}
	if len(segments) > 1 {
		actionName = segments[1]
	}
	if len(segments) > 2 {
		id = segments[2]
	}

	name, controller, ok := rt.registry.Get(controllerName)
	if !ok {
		return "", nil, "", false
	}

	var actions []Action
	for _, action := range controller.Actions() {
		if action.Route != "" || action.Handler == nil {
			continue
		}
		if strings.EqualFold(action.Name, actionName) {
			actions = append(actions, action)
		}
	}
	return name, actions, id, len(actions) > 0
}

func matchSegments(pattern, segments []string) (string, bool) {
	if len(pattern) != len(segments) {
		return "", false
	}
	var id string
	for i, part := range pattern {
		if part == routeIDSegment {
			id = segments[i]
			continue
		}
		if !strings.EqualFold(part, segments[i]) {
			return "", false
		}
	}
	return id, true
}

func splitPath(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, "/")
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func allowedMethods(actions []Action) []string {
	seen := make(map[string]struct{})
	for _, action := range actions {
		for _, method := range action.Methods {
			method = strings.ToUpper(method)
			seen[method] = struct{}{}
			if method == http.MethodGet {
				seen[http.MethodHead] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for method := range seen {
		out = append(out, method)
	}
	sort.Strings(out)
	return out
}
