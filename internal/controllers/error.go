package controllers

import (
	"net/http"

	"github.com/goliatone/go-htmx-mvc/pkg/mvc"
)

// ErrorController serves the pages status codes are redirected to.
type ErrorController struct {
	mvc.Base
}

// Actions maps the status pages onto Error/404 and Error/500.
func (c *ErrorController) Actions() []mvc.Action {
	return []mvc.Action{
		mvc.Get("Error404", c.Error404).At("Error/404"),
		mvc.Get("Error500", c.Error500).At("Error/500"),
	}
}

// Error404 renders the not found page with a 404 status.
func (c *ErrorController) Error404(ctx *mvc.ActionContext) (mvc.Result, error) {
	return c.page(ctx, "404", "Page Not Found", http.StatusNotFound)
}

// Error500 renders the server error page with a 500 status.
func (c *ErrorController) Error500(ctx *mvc.ActionContext) (mvc.Result, error) {
	return c.page(ctx, "500", "Server Error", http.StatusInternalServerError)
}

func (c *ErrorController) page(ctx *mvc.ActionContext, name, title string, status int) (mvc.Result, error) {
	ctx.ViewData["Title"] = title
	result, err := c.View(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	return result.(mvc.ViewResult).WithStatus(status), nil
}
