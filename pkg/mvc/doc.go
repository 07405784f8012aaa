// Package mvc is the thin controller layer around the view resolver and
// render mode selector: a controller registry, a conventional
// {controller}/{action}/{id} router, action results, a presenter that wraps
// full-page renders in the shared layout, and middleware for request ids and
// status pages.
//
// Controllers embed Base and return results from their actions:
//
//	func (c *HomeController) Index(ctx *mvc.ActionContext) (mvc.Result, error) {
//		return c.ViewOrPartial(ctx, "", nil)
//	}
package mvc
