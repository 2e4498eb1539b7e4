package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

// Router is a small method+path dispatcher with request logging. Path
// segments may be "*" to match any single segment; a trailing "*" matches
// the rest of the path.
type Router struct {
	mux    *http.ServeMux
	routes map[string]HandlerFunc // key = METHOD:PATH
	paths  []string               // registration order; register specific routes first
}

func New() *Router {
	r := &Router{
		mux:    http.NewServeMux(),
		routes: make(map[string]HandlerFunc),
	}

	r.mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		if h, pathMatched := r.lookup(req.Method, req.URL.Path); h != nil {
			h(lrw, req)
		} else if pathMatched {
			http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
		} else {
			http.Error(lrw, "Not Found", http.StatusNotFound)
		}

		duration := time.Since(start)
		log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
			colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
			methodColor(req.Method), req.Method, colorReset,
			req.URL.Path,
			statusColor(lrw.statusCode), lrw.statusCode, colorReset,
			colorBlue, duration, colorReset,
		)
	})

	return r
}

// lookup finds the first registered route matching the request path. The
// second result reports whether the path matched some route under another
// method, so the caller can answer 405 instead of 404.
func (r *Router) lookup(method, path string) (HandlerFunc, bool) {
	pathMatched := false
	for _, pattern := range r.paths {
		if !matchRoute(path, pattern) {
			continue
		}
		pathMatched = true
		if h, ok := r.routes[method+":"+pattern]; ok {
			return h, true
		}
	}
	return nil, pathMatched
}

// matchRoute checks a request path against a route pattern segment by
// segment.
func matchRoute(requestPath, pattern string) bool {
	reqSegs := strings.Split(strings.Trim(requestPath, "/"), "/")
	patSegs := strings.Split(strings.Trim(pattern, "/"), "/")

	for i, seg := range patSegs {
		// Trailing wildcard swallows the rest of the path, including the
		// bare mount point itself (/swagger and /swagger/ both match
		// /swagger/*).
		if seg == "*" && i == len(patSegs)-1 {
			return len(reqSegs) >= i
		}
		if i >= len(reqSegs) {
			return false
		}
		if seg != "*" && seg != reqSegs[i] {
			return false
		}
	}
	return len(reqSegs) == len(patSegs)
}

// --- Register paths ---
func (r *Router) register(method, path string, handler HandlerFunc) {
	key := method + ":" + path
	if _, seen := r.routes[key]; !seen {
		if !r.hasPath(path) {
			r.paths = append(r.paths, path)
		}
	}
	r.routes[key] = handler
}

func (r *Router) hasPath(path string) bool {
	for _, p := range r.paths {
		if p == path {
			return true
		}
	}
	return false
}

func (r *Router) GET(path string, handler HandlerFunc)    { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc)   { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)    { r.register(http.MethodPut, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) { r.register(http.MethodDelete, path, handler) }

// Routes exposes the route table for tests.
func (r *Router) Routes() map[string]HandlerFunc {
	return r.routes
}

// Handler exposes the underlying mux so callers can drive the router
// without a live listener.
func (r *Router) Handler() http.Handler {
	return r.mux
}

// --- Start server ---
func (r *Router) Start(addr string) error {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	return http.ListenAndServe(addr, r.mux)
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
