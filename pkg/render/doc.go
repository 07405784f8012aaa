// Package render decides how a controller action is rendered. The Selector
// resolves the logical view name and produces an Instruction that is either a
// full page (view wrapped in the layout) or a bare fragment, based on the
// fragment-request signal htmx sends with in-page exchanges.
package render
