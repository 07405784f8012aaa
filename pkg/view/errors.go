package view

import (
	"errors"
	"fmt"
)

// ErrViewNotFound is matched by every ViewNotFoundError via errors.Is.
var ErrViewNotFound = errors.New("view not found")

// ViewNotFoundError reports that no candidate location exists for Name.
type ViewNotFoundError struct {
	Name     string
	Searched []string
}

func (e *ViewNotFoundError) Error() string {
	if e == nil {
		return ErrViewNotFound.Error()
	}
	return fmt.Sprintf("view: %q was not found in the search locations", e.Name)
}

// Is lets errors.Is(err, ErrViewNotFound) match.
func (e *ViewNotFoundError) Is(target error) bool {
	return target == ErrViewNotFound
}
