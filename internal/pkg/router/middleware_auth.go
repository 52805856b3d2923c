package router

import (
	"net/http"
	"strings"

	"github.com/adiwira/authgate/internal/pkg/jwt"
)

// bearerScheme is the only accepted authorization scheme. Matching is
// case-sensitive and requires exactly one space between scheme and token.
const bearerScheme = "Bearer "

// middlewareAuthentication is the credential verifier stage of the pipeline.
//
// The decision is three-way and fails closed:
//   - no header, or anything other than "Bearer <token>": 401, the caller
//     presented no usable credential;
//   - a token that fails signature, structure, or expiry checks: 403, the
//     caller presented a credential and it was rejected (which check failed
//     is deliberately not disclosed);
//   - a valid token: claims are attached to the request context and the
//     request continues.
//
// The raw token never reaches a log line or a response body.
func middlewareAuthentication(verifier jwt.JWT, publicEndpoints map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerScheme)
			if !ok || token == "" || strings.ContainsRune(token, ' ') {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				writeJSON(w, errorResponse{Message: "Invalid or expired token"}, http.StatusForbidden)
				return
			}

			ctx := jwt.SetAuth(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
