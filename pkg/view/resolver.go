package view

import "errors"

// Probe reports whether a template exists at location. The rendering engine
// supplies it.
type Probe interface {
	Exists(location string) bool
}

// ProbeFunc adapts a function to the Probe interface.
type ProbeFunc func(location string) bool

// Exists implements Probe.
func (f ProbeFunc) Exists(location string) bool { return f(location) }

// Resolver translates logical view names into concrete template locations.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	locations Locations
	probe     Probe
}

// NewResolver constructs a Resolver over a fixed set of locations.
func NewResolver(locations Locations, probe Probe) (*Resolver, error) {
	if probe == nil {
		return nil, errors.New("view: probe is required")
	}
	return &Resolver{locations: locations, probe: probe}, nil
}

// Locations returns the candidate configuration the resolver searches.
func (r *Resolver) Locations() Locations {
	return r.locations
}

// Resolve returns the first candidate location that exists. Controller
// folders are searched before the shared fallback.
func (r *Resolver) Resolve(viewName string) (string, error) {
	candidates := r.locations.Candidates(viewName)
	for _, location := range candidates {
		if r.probe.Exists(location) {
			return location, nil
		}
	}
	return "", &ViewNotFoundError{Name: viewName, Searched: candidates}
}
