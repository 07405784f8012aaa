package view_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmx-mvc/pkg/view"
)

func TestNewLocations_SortsAndDeduplicates(t *testing.T) {
	input := []string{"Person", " Home ", "Error", "Home", "", "Shared"}
	locations := view.NewLocations(input)

	want := []string{"Error", "Home", "Person"}
	if diff := cmp.Diff(want, locations.Controllers()); diff != "" {
		t.Fatalf("controllers mismatch (-want +got):\n%s", diff)
	}

	input[0] = "Mutated"
	if diff := cmp.Diff(want, locations.Controllers()); diff != "" {
		t.Fatalf("locations must not alias caller slice (-want +got):\n%s", diff)
	}

	copied := locations.Controllers()
	copied[0] = "Mutated"
	if diff := cmp.Diff(want, locations.Controllers()); diff != "" {
		t.Fatalf("Controllers must return a copy (-want +got):\n%s", diff)
	}
}

func TestLocations_Candidates(t *testing.T) {
	locations := view.NewLocations([]string{"Person", "Home"})

	want := []string{
		"Views/Home/Form.html",
		"Views/Person/Form.html",
		"Views/Shared/Form.html",
	}
	if diff := cmp.Diff(want, locations.Candidates("Form")); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, locations.Candidates("Form.html")); diff != "" {
		t.Fatalf("extension should not be appended twice (-want +got):\n%s", diff)
	}
	if got := locations.Candidates(""); got != nil {
		t.Fatalf("expected no candidates for empty name, got %v", got)
	}
}

func TestLocations_Options(t *testing.T) {
	locations := view.NewLocations(
		[]string{"Home"},
		view.WithRoot("/templates/"),
		view.WithShared("common"),
		view.WithExtension("tpl"),
	)

	want := []string{"templates/Home/Index.tpl", "templates/common/Index.tpl"}
	if diff := cmp.Diff(want, locations.Candidates("Index")); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
	if got := locations.SharedPath("_Layout"); got != "templates/common/_Layout.tpl" {
		t.Fatalf("unexpected shared path %q", got)
	}
}

func TestControllerName(t *testing.T) {
	cases := map[string]string{
		"HomeController":               "Home",
		"controllers.PersonController": "Person",
		"*controllers.ErrorController": "Error",
		"Controller":                   "Controller",
		"Dashboard":                    "Dashboard",
	}
	for input, want := range cases {
		if got := view.ControllerName(input); got != want {
			t.Fatalf("ControllerName(%q) = %q, want %q", input, got, want)
		}
	}
}
