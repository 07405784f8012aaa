package view

import (
	"path"
	"sort"
	"strings"
)

const (
	// DefaultRoot is the directory holding one folder per controller.
	DefaultRoot = "Views"
	// DefaultShared is the fallback folder searched after every controller.
	DefaultShared = "Shared"
	// DefaultExtension is appended to view names that do not carry it.
	DefaultExtension = ".html"

	controllerSuffix = "Controller"
)

// Locations is the immutable candidate configuration used by the Resolver.
// Build it once at startup with NewLocations and pass it down by value.
type Locations struct {
	root        string
	shared      string
	extension   string
	controllers []string
}

// LocationOption customises NewLocations.
type LocationOption func(*Locations)

// WithRoot overrides the views root directory.
func WithRoot(root string) LocationOption {
	return func(l *Locations) {
		root = strings.Trim(strings.TrimSpace(root), "/")
		if root != "" {
			l.root = root
		}
	}
}

// WithShared overrides the shared fallback folder name.
func WithShared(shared string) LocationOption {
	return func(l *Locations) {
		shared = strings.Trim(strings.TrimSpace(shared), "/")
		if shared != "" {
			l.shared = shared
		}
	}
}

// WithExtension overrides the template extension. A leading dot is added when
// missing.
func WithExtension(ext string) LocationOption {
	return func(l *Locations) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		l.extension = trimmed
	}
}

// NewLocations builds the candidate configuration. Controller names are
// trimmed, de-duplicated and sorted alphabetically so lookups do not depend on
// registration order.
func NewLocations(controllers []string, opts ...LocationOption) Locations {
	l := Locations{
		root:      DefaultRoot,
		shared:    DefaultShared,
		extension: DefaultExtension,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&l)
	}

	seen := make(map[string]struct{}, len(controllers))
	names := make([]string, 0, len(controllers))
	for _, name := range controllers {
		name = strings.Trim(strings.TrimSpace(name), "/")
		if name == "" || strings.EqualFold(name, l.shared) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	l.controllers = names
	return l
}

// ControllerName strips the conventional "Controller" suffix from a type name.
func ControllerName(typeName string) string {
	name := strings.TrimSpace(typeName)
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.TrimPrefix(name, "*")
	if trimmed := strings.TrimSuffix(name, controllerSuffix); trimmed != "" {
		return trimmed
	}
	return name
}

// Controllers returns a copy of the ordered controller names.
func (l Locations) Controllers() []string {
	return append([]string(nil), l.controllers...)
}

// Root returns the views root directory.
func (l Locations) Root() string { return l.root }

// Shared returns the shared fallback folder name.
func (l Locations) Shared() string { return l.shared }

// Extension returns the template extension including the leading dot.
func (l Locations) Extension() string { return l.extension }

// SharedPath returns the location of name inside the shared folder. The
// presenter uses it for the layout.
func (l Locations) SharedPath(name string) string {
	return path.Join(l.root, l.shared, l.fileName(name))
}

// Candidates lists every location checked for viewName, in lookup order:
// one per controller followed by the shared fallback.
func (l Locations) Candidates(viewName string) []string {
	file := l.fileName(viewName)
	if file == "" {
		return nil
	}
	out := make([]string, 0, len(l.controllers)+1)
	for _, controller := range l.controllers {
		out = append(out, path.Join(l.root, controller, file))
	}
	out = append(out, path.Join(l.root, l.shared, file))
	return out
}

func (l Locations) fileName(viewName string) string {
	name := strings.Trim(strings.TrimSpace(viewName), "/")
	if name == "" {
		return ""
	}
	if l.extension != "" && !strings.HasSuffix(name, l.extension) {
		name += l.extension
	}
	return name
}
