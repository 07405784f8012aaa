package mvc

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gorilla/schema"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-htmx-mvc/pkg/validation"
)

var (
	decoderOnce sync.Once
	decoder     *schema.Decoder

	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Bind parses the request form into dst (a struct pointer), strips markup
// from every string field and reports values that could not be converted in
// the returned ModelState. The error is reserved for malformed requests.
func Bind(r *http.Request, dst any) (*validation.ModelState, error) {
	state := &validation.ModelState{}
	if r == nil {
		return state, errors.New("mvc: request is required")
	}
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return state, fmt.Errorf("mvc: bind target must be a struct pointer, got %T", dst)
	}
	if err := r.ParseForm(); err != nil {
		return state, BadRequest(fmt.Errorf("mvc: parse form: %w", err))
	}

	if err := formDecoder().Decode(dst, r.Form); err != nil {
		var multi schema.MultiError
		if !errors.As(err, &multi) {
			return state, BadRequest(fmt.Errorf("mvc: decode form: %w", err))
		}
		for key, fieldErr := range multi {
			state.AddError(key, conversionMessage(key, r.Form.Get(key), fieldErr))
		}
	}

	sanitizeStrings(rv.Elem())
	return state, nil
}

// SanitizeText removes markup from user input, returning plain text.
func SanitizeText(raw string) string {
	cleaned := textSanitizer().Sanitize(strings.TrimSpace(raw))
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func conversionMessage(key, value string, err error) string {
	var conversion schema.ConversionError
	if errors.As(err, &conversion) {
		return fmt.Sprintf("The value '%s' is not valid for %s.", SanitizeText(value), key)
	}
	return fmt.Sprintf("The value for %s is not valid.", key)
}

func sanitizeStrings(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			sanitizeStrings(v.Elem())
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			sanitizeStrings(v.Field(i))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			sanitizeStrings(v.Index(i))
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(SanitizeText(v.String()))
		}
	}
}

func formDecoder() *schema.Decoder {
	decoderOnce.Do(func() {
		d := schema.NewDecoder()
		d.IgnoreUnknownKeys(true)
		d.ZeroEmpty(true)
		d.SetAliasTag(validation.FieldNameTag)
		decoder = d
	})
	return decoder
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
