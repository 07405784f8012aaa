package controllers

import (
	"context"
	"errors"

	"github.com/goliatone/go-htmx-mvc/internal/store"
	"github.com/goliatone/go-htmx-mvc/pkg/mvc"
	"github.com/goliatone/go-htmx-mvc/pkg/render"
	"github.com/goliatone/go-htmx-mvc/pkg/validation"
)

// PersonStore is the persistence the person controller needs.
type PersonStore interface {
	CreatePerson(ctx context.Context, p store.Person) (store.Person, error)
	ListPeople(ctx context.Context, limit int) ([]store.Person, error)
}

// Deps are the collaborators shared by every controller.
type Deps struct {
	Selector  *render.Selector
	Validator *validation.Validator
	People    PersonStore
}

// All builds the application's controllers.
func All(deps Deps) ([]mvc.Controller, error) {
	if deps.Selector == nil {
		return nil, errors.New("controllers: selector is required")
	}
	if deps.People == nil {
		return nil, errors.New("controllers: person store is required")
	}
	if deps.Validator == nil {
		deps.Validator = validation.New()
	}

	return build(mvc.NewBase(deps.Selector), deps.People, deps.Validator), nil
}

// build is the single list of application controllers. All and Names both
// enumerate it.
func build(base mvc.Base, people PersonStore, validator *validation.Validator) []mvc.Controller {
	return []mvc.Controller{
		&HomeController{Base: base},
		&PersonController{Base: base, people: people, validator: validator},
		&ErrorController{Base: base},
	}
}

// Register adds controllers to registry.
func Register(registry *mvc.Registry, controllers []mvc.Controller) error {
	for _, controller := range controllers {
		if err := registry.Register(controller); err != nil {
			return err
		}
	}
	return nil
}

// Names lists the controller names of a fresh registry so view locations can
// be built before the controllers themselves.
func Names() []string {
	registry := mvc.NewRegistry()
	for _, controller := range build(mvc.Base{}, nil, nil) {
		registry.MustRegister(controller)
	}
	return registry.Names()
}
