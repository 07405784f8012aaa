package mvc

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-htmx-mvc/pkg/render"
)

// DefaultErrorPath is the prefix status pages redirect to ("/Error/404").
const DefaultErrorPath = "/Error"

// StatusPagesOption customises StatusPages.
type StatusPagesOption func(*statusPages)

// WithErrorPath changes the redirect prefix.
func WithErrorPath(prefix string) StatusPagesOption {
	return func(s *statusPages) {
		prefix = "/" + strings.Trim(strings.TrimSpace(prefix), "/")
		if prefix != "/" {
			s.prefix = prefix
		}
	}
}

// WithStatusCodes changes which bodiless statuses are redirected.
func WithStatusCodes(codes ...int) StatusPagesOption {
	return func(s *statusPages) {
		if len(codes) == 0 {
			return
		}
		s.codes = make(map[int]struct{}, len(codes))
		for _, code := range codes {
			s.codes[code] = struct{}{}
		}
	}
}

// PanicHandler observes recovered panics.
type PanicHandler func(r *http.Request, recovered any)

// WithPanicHandler registers a hook for recovered panics.
func WithPanicHandler(fn PanicHandler) StatusPagesOption {
	return func(s *statusPages) {
		s.onPanic = fn
	}
}

type statusPages struct {
	next    http.Handler
	prefix  string
	codes   map[int]struct{}
	onPanic PanicHandler
}

// StatusPages redirects bodiless 404 and 500 responses to the error pages
// and turns panics into a 500. Requests already under the error path are
// passed through so a failing error page cannot loop.
func StatusPages(next http.Handler, opts ...StatusPagesOption) http.Handler {
	s := &statusPages{
		next:   next,
		prefix: DefaultErrorPath,
		codes: map[int]struct{}{
			http.StatusNotFound:            {},
			http.StatusInternalServerError: {},
		},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

func (s *statusPages) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.isErrorPath(r.URL.Path) {
		s.next.ServeHTTP(w, r)
		return
	}

	sw := &statusWriter{ResponseWriter: w, codes: s.codes}
	defer func() {
		if recovered := recover(); recovered != nil {
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}
			if s.onPanic != nil {
				s.onPanic(r, recovered)
			}
			if sw.committed {
				return
			}
			s.redirect(w, r, http.StatusInternalServerError)
			return
		}
		if sw.pending != 0 && !sw.committed {
			s.redirect(w, r, sw.pending)
		}
	}()

	s.next.ServeHTTP(sw, r)
}

func (s *statusPages) isErrorPath(p string) bool {
	return strings.EqualFold(p, s.prefix) || strings.HasPrefix(strings.ToLower(p), strings.ToLower(s.prefix)+"/")
}

func (s *statusPages) redirect(w http.ResponseWriter, r *http.Request, code int) {
	target := s.prefix + "/" + strconv.Itoa(code)
	if render.IsFragmentRequest(r) {
		w.Header().Set(HeaderRedirect, target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// statusWriter holds back redirectable status codes until a body is
// written.
type statusWriter struct {
	http.ResponseWriter
	codes     map[int]struct{}
	pending   int
	committed bool
}

func (w *statusWriter) WriteHeader(code int) {
	if w.committed || w.pending != 0 {
		return
	}
	if _, ok := w.codes[code]; ok {
		w.pending = code
		return
	}
	w.committed = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.committed {
		code := w.pending
		if code == 0 {
			code = http.StatusOK
		}
		w.committed = true
		w.ResponseWriter.WriteHeader(code)
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
