// Package view maps logical view names (usually an action name) onto concrete
// template locations. Candidate locations are built once from the registered
// controller names plus a shared fallback folder; the resolver returns the
// first candidate reported as existing by an injected Probe.
package view
