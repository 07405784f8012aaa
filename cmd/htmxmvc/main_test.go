package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmx-mvc/pkg/view"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestViewsList(t *testing.T) {
	out, _, err := run(t, "views", "list")
	if err != nil {
		t.Fatalf("views list: %v", err)
	}
	want := []string{
		"Views/Error/{view}.html",
		"Views/Home/{view}.html",
		"Views/Person/{view}.html",
		"Views/Shared/{view}.html",
	}
	if diff := cmp.Diff(want, strings.Fields(out)); diff != "" {
		t.Fatalf("locations mismatch (-want +got):\n%s", diff)
	}
}

func TestViewsResolve(t *testing.T) {
	out, _, err := run(t, "views", "resolve", "PersonForm")
	if err != nil {
		t.Fatalf("views resolve: %v", err)
	}
	if strings.TrimSpace(out) != "Views/Person/PersonForm.html" {
		t.Fatalf("resolved %q", out)
	}
}

func TestViewsResolveMissing(t *testing.T) {
	_, errOut, err := run(t, "views", "resolve", "Missing")
	if !errors.Is(err, view.ErrViewNotFound) {
		t.Fatalf("expected ViewNotFound, got %v", err)
	}
	if !strings.Contains(errOut, "searched Views/Shared/Missing.html") {
		t.Fatalf("searched locations not printed:\n%s", errOut)
	}
}

func TestInvalidLogLevelFails(t *testing.T) {
	if _, _, err := run(t, "--log-level", "chatty", "views", "list"); err == nil {
		t.Fatalf("expected invalid log level error")
	}
}
