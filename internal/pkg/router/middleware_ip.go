package router

import (
	"net"
	"net/http"
	"strings"
)

// proxyIPHeaders are checked in order; the first parseable address wins.
var proxyIPHeaders = []string{"True-Client-IP", "X-Real-IP", "X-Forwarded-For"}

func middlewareIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := clientIP(r); ip != "" {
			r.RemoteAddr = ip
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	for _, h := range proxyIPHeaders {
		v := r.Header.Get(h)
		if h == "X-Forwarded-For" {
			v, _, _ = strings.Cut(v, ",")
		}
		v = strings.TrimSpace(v)
		if net.ParseIP(v) != nil {
			return v
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && net.ParseIP(host) != nil {
		return host
	}

	return ""
}
