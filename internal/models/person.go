package models

import "github.com/goliatone/go-htmx-mvc/internal/store"

// PersonModel is the person form. Form field names match the schema tags;
// templates read the json names.
type PersonModel struct {
	Name     string `schema:"Name" json:"name" validate:"required" msg:"Name is required."`
	LastName string `schema:"LastName" json:"lastName" validate:"required" msg:"Last name is required."`
	Age      int    `schema:"Age" json:"age" validate:"min=1,max=120" msg:"Age must be between 1 and 120."`
	City     string `schema:"City" json:"city" validate:"required" msg:"City is required."`
	Country  string `schema:"Country" json:"country" validate:"required" msg:"Country is required."`
}

// Record converts the form into a storable person.
func (m PersonModel) Record() store.Person {
	return store.Person{
		Name:     m.Name,
		LastName: m.LastName,
		Age:      m.Age,
		City:     m.City,
		Country:  m.Country,
	}
}
