package mvc_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmx-mvc/pkg/mvc"
)

type bindForm struct {
	Name string   `schema:"Name"`
	Age  int      `schema:"Age"`
	Tags []string `schema:"Tags"`
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/Person/SubmitForm", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestBindDecodesAndSanitises(t *testing.T) {
	var form bindForm
	state, err := mvc.Bind(postForm(url.Values{
		"Name":    {"  <b>O'Brien</b><script>alert(1)</script> "},
		"Age":     {"42"},
		"Tags":    {"<i>a</i>", "b"},
		"Unknown": {"ignored"},
	}), &form)

	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if !state.IsValid() {
		t.Fatalf("unexpected errors %v", state.Errors())
	}
	want := bindForm{Name: "O'Brien", Age: 42, Tags: []string{"a", "b"}}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("bound form mismatch (-want +got):\n%s", diff)
	}
}

func TestBindReportsConversionErrors(t *testing.T) {
	form := bindForm{Age: 9}
	state, err := mvc.Bind(postForm(url.Values{"Name": {"Ada"}, "Age": {"old"}}), &form)

	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if got := state.First("Age"); got != "The value 'old' is not valid for Age." {
		t.Fatalf("Age error = %q", got)
	}
	if form.Name != "Ada" {
		t.Fatalf("Name = %q", form.Name)
	}
}

func TestBindEmptyValueZeroesField(t *testing.T) {
	form := bindForm{Age: 9}
	if _, err := mvc.Bind(postForm(url.Values{"Age": {""}}), &form); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if form.Age != 0 {
		t.Fatalf("Age = %d, want 0", form.Age)
	}
}

func TestBindRejectsNonPointer(t *testing.T) {
	if _, err := mvc.Bind(postForm(nil), bindForm{}); err == nil {
		t.Fatalf("expected error for non-pointer target")
	}
}

func TestSanitizeText(t *testing.T) {
	cases := map[string]string{
		"plain":                 "plain",
		"<a href='x'>link</a>":  "link",
		"Tom &amp; Jerry":       "Tom & Jerry",
		"  <img src=x onerror>": "",
	}
	for in, want := range cases {
		if got := mvc.SanitizeText(in); got != want {
			t.Fatalf("SanitizeText(%q) = %q, want %q", in, got, want)
		}
	}
}
