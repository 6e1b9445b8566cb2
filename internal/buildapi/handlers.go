package buildapi

import (
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"strings"

	"github.com/rs/cors"
	"gitlab.com/aquachain/gembuild/common/log"
)

func newLoggedHandler(h http.Handler) http.Handler {
	return loggedHandler{h}
}

type loggedHandler struct {
	h http.Handler
}

type lrwriter struct {
	http.ResponseWriter
	statusCode int
}

// override WriteHeader, just saving response code
func (lrw *lrwriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (l loggedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqid := fmt.Sprintf("%02X", rand.Uint32())
	lrw := &lrwriter{ResponseWriter: w, statusCode: http.StatusOK}
	logfn := log.Debug
	logfn("<<< http: "+reqid, "from", r.RemoteAddr, "path", r.URL.Path, "ua", r.UserAgent(), "method", r.Method, "host", r.Host)

	l.h.ServeHTTP(lrw, r)
	if lrw.statusCode != http.StatusOK {
		logfn = log.Warn
	}
	logfn(">>> http: "+reqid, "code", lrw.statusCode, "status", http.StatusText(lrw.statusCode))
}

func newCorsHandler(h http.Handler, allowedOrigins []string) http.Handler {
	// disable CORS support if user has not specified a custom CORS configuration
	if len(allowedOrigins) == 0 {
		return h
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet},
		MaxAge:         600,
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(h)
}

// virtualHostHandler validates the Host header of incoming requests, which
// keeps DNS rebinding pages from reading the endpoint.
type virtualHostHandler struct {
	vhosts map[string]struct{}
	next   http.Handler
}

func (h *virtualHostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// if r.Host is not set, we can continue serving since a browser would set the Host header
	if r.Host == "" {
		h.next.ServeHTTP(w, r)
		return
	}
	host, _, err := net.SplitHostPort(r.Host)
	if err != nil {
		// Either invalid (too many colons) or no port specified
		host = r.Host
	}
	if ipAddr := net.ParseIP(host); ipAddr != nil {
		h.next.ServeHTTP(w, r)
		return
	}
	if _, exist := h.vhosts["*"]; exist {
		h.next.ServeHTTP(w, r)
		return
	}
	if _, exist := h.vhosts[strings.ToLower(host)]; exist {
		h.next.ServeHTTP(w, r)
		return
	}
	http.Error(w, "invalid host specified", http.StatusForbidden)
}

func newVHostHandler(vhosts []string, next http.Handler) http.Handler {
	vhostMap := make(map[string]struct{})
	for _, allowedHost := range vhosts {
		vhostMap[strings.ToLower(allowedHost)] = struct{}{}
	}
	return &virtualHostHandler{vhostMap, next}
}
