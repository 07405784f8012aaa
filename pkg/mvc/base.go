package mvc

import (
	"errors"
	"net/http"

	"github.com/goliatone/go-htmx-mvc/pkg/render"
)

// Base is embedded by controllers to build results.
type Base struct {
	selector *render.Selector
}

// NewBase binds a Base to the shared render mode selector.
func NewBase(selector *render.Selector) Base {
	return Base{selector: selector}
}

// ViewOrPartial renders name as a fragment for htmx requests and as a full
// page otherwise. An empty name uses the action name.
func (b Base) ViewOrPartial(ctx *ActionContext, name string, model any) (Result, error) {
	instruction, err := b.selectView(ctx, name, model)
	if err != nil {
		return nil, err
	}
	return ViewResult{Instruction: instruction}, nil
}

// View always renders a full page.
func (b Base) View(ctx *ActionContext, name string, model any) (Result, error) {
	instruction, err := b.selectView(ctx, name, model)
	if err != nil {
		return nil, err
	}
	instruction.Mode = render.ModeFull
	return ViewResult{Instruction: instruction}, nil
}

// PartialView always renders a fragment.
func (b Base) PartialView(ctx *ActionContext, name string, model any) (Result, error) {
	instruction, err := b.selectView(ctx, name, model)
	if err != nil {
		return nil, err
	}
	instruction.Mode = render.ModeFragment
	return ViewResult{Instruction: instruction}, nil
}

// Redirect sends the client to url.
func (Base) Redirect(url string) Result {
	return RedirectResult{URL: url}
}

// NotFound answers 404 without a body.
func (Base) NotFound() Result {
	return StatusResult{Code: http.StatusNotFound}
}

func (b Base) selectView(ctx *ActionContext, name string, model any) (render.Instruction, error) {
	if b.selector == nil {
		return render.Instruction{}, errors.New("mvc: controller has no view selector")
	}
	return b.selector.Select(ctx, name, model)
}
