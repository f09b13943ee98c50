package pkgrouter

import (
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shandysiswandi/xlplot/internal/pkg/pkglog"
)

// Generator issues correlation IDs.
type Generator interface {
	Generate() string
}

const (
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is read when a proxy sets it instead.
	HeaderRequestID = "X-Request-ID"

	maxCIDLen = 128
)

// normalizeCID returns v trimmed and capped on a rune boundary, or "" if it holds anything that
// should not be echoed into a header or a log line.
func normalizeCID(v string) string {
	v = strings.TrimSpace(v)
	for _, r := range v {
		if !unicode.IsPrint(r) {
			return ""
		}
	}
	if len(v) <= maxCIDLen {
		return v
	}

	n := maxCIDLen
	for n > 0 && !utf8.RuneStart(v[n]) {
		n--
	}
	return v[:n]
}

// incomingCID returns the first usable ID the client sent.
func incomingCID(h http.Header) string {
	for _, name := range [...]string{HeaderCorrelationID, HeaderRequestID} {
		if cid := normalizeCID(h.Get(name)); cid != "" {
			return cid
		}
	}
	return ""
}

// middlewareCorrelationID reuses or issues an ID, echoes it in the response
// and stores it on the request context for logging.
func middlewareCorrelationID(uid Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := incomingCID(r.Header)
			if cid == "" && uid != nil {
				cid = uid.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(pkglog.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
