package mvc

import (
	"context"
	"net/http"

	"github.com/goliatone/go-htmx-mvc/pkg/render"
	"github.com/goliatone/go-htmx-mvc/pkg/validation"
)

// ActionContext carries the in-flight request through an action. It
// satisfies render.RequestInfo.
type ActionContext struct {
	Request  *http.Request
	Response http.ResponseWriter

	Controller string
	Action     string
	ID         string

	// ViewData and TempData are handed to the view. TempData lives for the
	// current request only.
	ViewData   map[string]any
	TempData   map[string]any
	ModelState *validation.ModelState
}

var _ render.RequestInfo = (*ActionContext)(nil)

// NewActionContext prepares a context for controller/action.
func NewActionContext(w http.ResponseWriter, r *http.Request, controller, action, id string) *ActionContext {
	return &ActionContext{
		Request:    r,
		Response:   w,
		Controller: controller,
		Action:     action,
		ID:         id,
		ViewData:   make(map[string]any),
		TempData:   make(map[string]any),
		ModelState: &validation.ModelState{},
	}
}

// ActionName returns the executing action.
func (c *ActionContext) ActionName() string {
	return c.Action
}

// IsFragmentRequest reports the htmx fragment signal of the request.
func (c *ActionContext) IsFragmentRequest() bool {
	return render.IsFragmentRequest(c.Request)
}

// Context returns the request context.
func (c *ActionContext) Context() context.Context {
	if c.Request == nil {
		return context.Background()
	}
	return c.Request.Context()
}

// RequestID returns the id assigned by the RequestID middleware.
func (c *ActionContext) RequestID() string {
	return RequestIDFrom(c.Context())
}

// Header exposes the response headers.
func (c *ActionContext) Header() http.Header {
	return c.Response.Header()
}
