package render

import (
	"net/http"
	"strings"
)

// htmx request and response headers used by the application.
const (
	HeaderRequest               = "HX-Request"
	HeaderHistoryRestoreRequest = "HX-History-Restore-Request"
	HeaderTarget                = "HX-Target"
	HeaderTrigger               = "HX-Trigger"
)

// IsFragmentRequest derives the fragment-request signal from htmx headers.
// History restores ask for the whole document even though htmx issues them.
func IsFragmentRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	if !headerIsTrue(r.Header, HeaderRequest) {
		return false
	}
	return !headerIsTrue(r.Header, HeaderHistoryRestoreRequest)
}

func headerIsTrue(h http.Header, key string) bool {
	return strings.EqualFold(strings.TrimSpace(h.Get(key)), "true")
}
