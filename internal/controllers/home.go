package controllers

import (
	"github.com/goliatone/go-htmx-mvc/internal/models"
	"github.com/goliatone/go-htmx-mvc/pkg/mvc"
)

// HomeController serves the landing and privacy pages and the generic
// error page.
type HomeController struct {
	mvc.Base
}

// Actions lists Index, Privacy and Error.
func (c *HomeController) Actions() []mvc.Action {
	return []mvc.Action{
		mvc.Get("Index", c.Index),
		mvc.Get("Privacy", c.Privacy),
		mvc.Get("Error", c.Error),
	}
}

// Index renders the landing page.
func (c *HomeController) Index(ctx *mvc.ActionContext) (mvc.Result, error) {
	ctx.ViewData["Title"] = "Home Page"
	return c.ViewOrPartial(ctx, "Index", nil)
}

// Privacy renders the privacy policy.
func (c *HomeController) Privacy(ctx *mvc.ActionContext) (mvc.Result, error) {
	ctx.ViewData["Title"] = "Privacy Policy"
	return c.ViewOrPartial(ctx, "Privacy", nil)
}

// Error is the generic error page; it is never cached and always a full page.
func (c *HomeController) Error(ctx *mvc.ActionContext) (mvc.Result, error) {
	ctx.Header().Set("Cache-Control", "no-store, no-cache")
	ctx.ViewData["Title"] = "Error"
	return c.View(ctx, "Error", models.NewErrorViewModel(ctx.RequestID()))
}
