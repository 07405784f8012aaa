// Package validation runs struct-tag rules (go-playground/validator) over
// bound models and collects the failures into a ModelState keyed by form
// field name. A `msg` struct tag overrides the message reported for a field.
package validation
