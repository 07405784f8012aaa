package mvc

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-htmx-mvc/pkg/render"
)

// Result is what an action asks the router to write.
type Result interface {
	Execute(ctx *ActionContext, presenter *Presenter) error
}

// ViewResult renders a resolved view. Status defaults to 200.
type ViewResult struct {
	Instruction render.Instruction
	Status      int
}

func (v ViewResult) Execute(ctx *ActionContext, presenter *Presenter) error {
	if presenter == nil {
		return fmt.Errorf("mvc: presenter is required to render %q", v.Instruction.ViewName)
	}
	return presenter.Present(ctx, v.Instruction, v.Status)
}

// WithStatus returns a copy of v answering with code.
func (v ViewResult) WithStatus(code int) ViewResult {
	v.Status = code
	return v
}

// RedirectResult sends the client elsewhere. htmx requests get an
// HX-Redirect header so the whole page navigates.
type RedirectResult struct {
	URL    string
	Status int
}

func (r RedirectResult) Execute(ctx *ActionContext, _ *Presenter) error {
	status := r.Status
	if status == 0 {
		status = http.StatusFound
	}
	if ctx.IsFragmentRequest() {
		ctx.Header().Set(HeaderRedirect, r.URL)
		ctx.Response.WriteHeader(http.StatusOK)
		return nil
	}
	http.Redirect(ctx.Response, ctx.Request, r.URL, status)
	return nil
}

// StatusResult answers with a bare status code and no body, leaving the
// page to the StatusPages middleware.
type StatusResult struct {
	Code int
}

func (s StatusResult) Execute(ctx *ActionContext, _ *Presenter) error {
	ctx.Response.WriteHeader(s.Code)
	return nil
}

// HeaderRedirect is the htmx response header for client-side redirects.
const HeaderRedirect = "HX-Redirect"
