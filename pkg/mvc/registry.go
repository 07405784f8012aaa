package mvc

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-htmx-mvc/pkg/view"
)

// Registry stores controllers by name. Names are derived from the Go type
// name and looked up case-insensitively.
type Registry struct {
	mu          sync.RWMutex
	controllers map[string]registered
}

type registered struct {
	name       string
	controller Controller
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		controllers: make(map[string]registered),
	}
}

// Register adds controller under the name derived from its type.
func (r *Registry) Register(controller Controller) error {
	if controller == nil {
		return fmt.Errorf("mvc: controller is required")
	}
	return r.RegisterNamed(view.ControllerName(reflect.TypeOf(controller).String()), controller)
}

// RegisterNamed adds controller under an explicit name. Duplicate names,
// compared case-insensitively, return an error.
func (r *Registry) RegisterNamed(name string, controller Controller) error {
	if controller == nil {
		return fmt.Errorf("mvc: controller is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("mvc: controller name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := r.controllers[key]; exists {
		return fmt.Errorf("mvc: controller %q already registered", name)
	}

	r.controllers[key] = registered{name: name, controller: controller}
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(controller Controller) {
	if err := r.Register(controller); err != nil {
		panic(err)
	}
}

// Get retrieves a controller and its canonical name.
func (r *Registry) Get(name string) (string, Controller, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.controllers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", nil, false
	}
	return entry.name, entry.controller, true
}

// Names returns the sorted controller names. Feed it to view.NewLocations.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.controllers))
	for _, entry := range r.controllers {
		names = append(names, entry.name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a controller is registered.
func (r *Registry) Has(name string) bool {
	_, _, ok := r.Get(name)
	return ok
}
