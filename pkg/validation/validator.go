package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// MessageTag names the struct tag carrying a field's custom message.
	MessageTag = "msg"
	// FieldNameTag is the struct tag used for field names in ModelState; it
	// matches the form decoder so errors line up with inputs.
	FieldNameTag = "schema"
)

// Validator evaluates `validate` struct tags and reports failures as a
// ModelState.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator keyed on form field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	return &Validator{validate: v}
}

// Validate checks model and returns the collected ModelState.
func (v *Validator) Validate(model any) *ModelState {
	return v.ValidateCtx(context.Background(), model)
}

// ValidateCtx is Validate with a context passed through to the rules.
// Non-struct inputs are reported as a form-level error.
func (v *Validator) ValidateCtx(ctx context.Context, model any) *ModelState {
	state := &ModelState{}
	if ctx == nil {
		ctx = context.Background()
	}

	err := v.validate.StructCtx(ctx, model)
	if err == nil {
		return state
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		state.AddError("", fmt.Sprintf("validation: cannot validate %v", invalid.Type))
		return state
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		state.AddError("", err.Error())
		return state
	}

	rt := indirectType(reflect.TypeOf(model))
	for _, failure := range failures {
		state.AddError(failure.Field(), messageFor(rt, failure))
	}
	return state
}

func fieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get(FieldNameTag), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func messageFor(root reflect.Type, failure validator.FieldError) string {
	if field, ok := lookupField(root, failure.StructNamespace()); ok {
		if msg := strings.TrimSpace(field.Tag.Get(MessageTag)); msg != "" {
			return msg
		}
	}
	return defaultMessage(failure)
}

// lookupField walks a "Type.Field.Nested" namespace down from root.
func lookupField(root reflect.Type, namespace string) (reflect.StructField, bool) {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 || root == nil {
		return reflect.StructField{}, false
	}

	current := root
	var field reflect.StructField
	for _, part := range parts[1:] {
		if idx := strings.IndexByte(part, '['); idx >= 0 {
			part = part[:idx]
		}
		current = indirectType(current)
		if current.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}
		next, ok := current.FieldByName(part)
		if !ok {
			return reflect.StructField{}, false
		}
		field = next
		current = next.Type
		for current.Kind() == reflect.Slice || current.Kind() == reflect.Array || current.Kind() == reflect.Map {
			current = current.Elem()
		}
	}
	return field, true
}

func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func defaultMessage(failure validator.FieldError) string {
	label := failure.StructField()
	switch failure.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s.", label, failure.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s.", label, failure.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", label)
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}
