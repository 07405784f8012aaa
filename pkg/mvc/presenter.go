package mvc

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goliatone/go-htmx-mvc/pkg/render"
)

// TemplateEngine renders a template location with data.
// *gotemplate.Engine satisfies it.
type TemplateEngine interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}

// Presenter turns render instructions into HTML responses. Fragments are the
// view alone; full pages are the view rendered into the layout's "body".
type Presenter struct {
	engine TemplateEngine
	layout string
}

// NewPresenter wires the engine and the layout location (for example
// "Views/Shared/_Layout.html"). An empty layout renders full pages bare.
func NewPresenter(engine TemplateEngine, layout string) (*Presenter, error) {
	if engine == nil {
		return nil, errors.New("mvc: template engine is required")
	}
	return &Presenter{engine: engine, layout: strings.TrimSpace(layout)}, nil
}

// Layout returns the layout location.
func (p *Presenter) Layout() string { return p.layout }

// Present renders instruction and writes it with status (200 when zero).
func (p *Presenter) Present(ctx *ActionContext, instruction render.Instruction, status int) error {
	if ctx == nil {
		return errors.New("mvc: action context is required")
	}
	if status == 0 {
		status = http.StatusOK
	}

	data := p.viewData(ctx, instruction)
	body, err := p.engine.RenderTemplate(instruction.Location, data)
	if err != nil {
		return fmt.Errorf("mvc: render view %q: %w", instruction.ViewName, err)
	}

	page := body
	if !instruction.IsFragment() && p.layout != "" {
		data["body"] = body
		page, err = p.engine.RenderTemplate(p.layout, data)
		if err != nil {
			return fmt.Errorf("mvc: render layout %q: %w", p.layout, err)
		}
	}

	header := ctx.Header()
	header.Set("Content-Type", "text/html; charset=utf-8")
	header.Add("Vary", render.HeaderRequest)
	ctx.Response.WriteHeader(status)
	if ctx.Request != nil && ctx.Request.Method == http.MethodHead {
		return nil
	}
	_, err = io.WriteString(ctx.Response, page)
	return err
}

func (p *Presenter) viewData(ctx *ActionContext, instruction render.Instruction) map[string]any {
	title, _ := ctx.ViewData["Title"].(string)
	return map[string]any{
		"model":       instruction.Model,
		"errors":      ctx.ModelState.Errors(),
		"form_errors": ctx.ModelState.FormErrors(),
		"view_data":   ctx.ViewData,
		"temp_data":   ctx.TempData,
		"title":       title,
		"controller":  ctx.Controller,
		"action":      ctx.Action,
		"request_id":  ctx.RequestID(),
		"fragment":    instruction.IsFragment(),
	}
}
