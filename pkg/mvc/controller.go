package mvc

import (
	"net/http"
	"strings"
)

// HandlerFunc executes an action and returns the result to write.
type HandlerFunc func(ctx *ActionContext) (Result, error)

// Action describes one controller endpoint.
//
// Actions without a Route are reachable through the conventional
// {controller}/{action}/{id?} pattern. Setting Route turns the action into an
// attribute route served only at that path (e.g. "Error/404"); a "{id}"
// segment captures the route id.
type Action struct {
	Name    string
	Methods []string
	Route   string
	Handler HandlerFunc
}

// Controller groups actions. The controller name is taken from the Go type
// name without its "Controller" suffix.
type Controller interface {
	Actions() []Action
}

// Get declares a GET (and HEAD) action.
func Get(name string, handler HandlerFunc) Action {
	return Action{Name: name, Methods: []string{http.MethodGet}, Handler: handler}
}

// Post declares a POST action.
func Post(name string, handler HandlerFunc) Action {
	return Action{Name: name, Methods: []string{http.MethodPost}, Handler: handler}
}

// Any declares an action that accepts every method.
func Any(name string, handler HandlerFunc) Action {
	return Action{Name: name, Handler: handler}
}

// At returns a copy of a bound to an attribute route.
func (a Action) At(route string) Action {
	a.Route = strings.Trim(strings.TrimSpace(route), "/")
	return a
}

// Allows reports whether method may invoke the action. GET actions also
// answer HEAD.
func (a Action) Allows(method string) bool {
	if len(a.Methods) == 0 {
		return true
	}
	for _, m := range a.Methods {
		if strings.EqualFold(m, method) {
			return true
		}
		if method == http.MethodHead && strings.EqualFold(m, http.MethodGet) {
			return true
		}
	}
	return false
}
