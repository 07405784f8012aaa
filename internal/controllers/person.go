package controllers

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-htmx-mvc/internal/models"
	"github.com/goliatone/go-htmx-mvc/internal/store"
	"github.com/goliatone/go-htmx-mvc/pkg/mvc"
	"github.com/goliatone/go-htmx-mvc/pkg/render"
	"github.com/goliatone/go-htmx-mvc/pkg/validation"
)

const (
	// SuccessMessage is shown after a valid submission.
	SuccessMessage = "Form submitted successfully!"
	// PersonSavedEvent is raised on the client through HX-Trigger.
	PersonSavedEvent = "person-saved"

	personFormView = "PersonForm"
	personListView = "PersonList"
	listLimit      = 10
)

// PersonController serves the person form and recent submissions.
type PersonController struct {
	mvc.Base
	people    PersonStore
	validator *validation.Validator
}

// Actions lists Form, SubmitForm (POST only) and List.
func (c *PersonController) Actions() []mvc.Action {
	return []mvc.Action{
		mvc.Get("Form", c.Form),
		mvc.Post("SubmitForm", c.SubmitForm),
		mvc.Get("List", c.List),
	}
}

// Form renders an empty person form.
func (c *PersonController) Form(ctx *mvc.ActionContext) (mvc.Result, error) {
	ctx.ViewData["Title"] = "Person"
	return c.ViewOrPartial(ctx, personFormView, models.PersonModel{})
}

// SubmitForm binds and validates the posted person. Invalid input re-renders
// the form with its errors; valid input is stored and the form is rendered
// with a success message.
func (c *PersonController) SubmitForm(ctx *mvc.ActionContext) (mvc.Result, error) {
	ctx.ViewData["Title"] = "Person"

	var model models.PersonModel
	bound, err := mvc.Bind(ctx.Request, &model)
	if err != nil {
		return nil, err
	}
	ctx.ModelState.Merge(bound)
	ctx.ModelState.Merge(c.validator.ValidateCtx(ctx.Context(), &model))

	if !ctx.ModelState.IsValid() {
		return c.ViewOrPartial(ctx, personFormView, model)
	}

	if _, err := c.people.CreatePerson(ctx.Context(), model.Record()); err != nil {
		return nil, fmt.Errorf("person: save submission: %w", err)
	}

	ctx.TempData["SuccessMessage"] = SuccessMessage
	ctx.Header().Set(render.HeaderTrigger, PersonSavedEvent)
	return c.ViewOrPartial(ctx, personFormView, model)
}

// List renders the most recent submissions.
func (c *PersonController) List(ctx *mvc.ActionContext) (mvc.Result, error) {
	ctx.ViewData["Title"] = "Submissions"

	people, err := c.people.ListPeople(ctx.Context(), listLimit)
	if err != nil {
		return nil, fmt.Errorf("person: list submissions: %w", err)
	}
	return c.ViewOrPartial(ctx, personListView, peopleView(people))
}

func peopleView(people []store.Person) models.PeopleViewModel {
	rows := make([]models.PersonRow, 0, len(people))
	for _, p := range people {
		rows = append(rows, models.PersonRow{
			ID:        p.ID,
			FullName:  strings.TrimSpace(p.Name + " " + p.LastName),
			Age:       p.Age,
			Location:  strings.Trim(p.City+", "+p.Country, ", "),
			Submitted: p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return models.PeopleViewModel{People: rows}
}
