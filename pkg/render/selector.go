package render

import "errors"

// RequestInfo exposes the parts of the in-flight request the selector needs.
type RequestInfo interface {
	// ActionName is the name of the action currently executing.
	ActionName() string
	// IsFragmentRequest reports whether the client asked for a fragment.
	IsFragmentRequest() bool
}

// ViewResolver maps a logical view name onto a concrete location.
// *view.Resolver satisfies it.
type ViewResolver interface {
	Resolve(viewName string) (string, error)
}

// Selector chooses between full-page and fragment rendering.
type Selector struct {
	resolver ViewResolver
}

// NewSelector wires a Selector to the resolver used for every lookup.
func NewSelector(resolver ViewResolver) (*Selector, error) {
	if resolver == nil {
		return nil, errors.New("render: view resolver is required")
	}
	return &Selector{resolver: resolver}, nil
}

// Select resolves viewName (defaulting to the current action name when empty)
// and returns a fragment instruction for fragment requests or a full-page
// instruction otherwise. Resolver errors are returned unchanged.
func (s *Selector) Select(req RequestInfo, viewName string, model any) (Instruction, error) {
	if req == nil {
		return Instruction{}, errors.New("render: request info is required")
	}
	if viewName == "" {
		viewName = req.ActionName()
	}

	location, err := s.resolver.Resolve(viewName)
	if err != nil {
		return Instruction{}, err
	}

	mode := ModeFull
	if req.IsFragmentRequest() {
		mode = ModeFragment
	}
	return Instruction{
		Mode:     mode,
		Location: location,
		ViewName: viewName,
		Model:    model,
	}, nil
}
