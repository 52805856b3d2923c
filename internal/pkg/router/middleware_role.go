package router

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/adiwira/authgate/internal/pkg/jwt"
)

// RequireRoles returns a middleware that only lets a request through when the
// authenticated identity's role is one of the given roles.
//
// The allow-set is fixed at route registration time; it is configuration, not
// request data. The check is an exact, case-sensitive membership test with no
// role hierarchy. It reads the claims attached by the authentication stage and
// never touches the credential itself; a request with no claims in context is
// rejected the same way as one with the wrong role.
func RequireRoles(roles ...string) Middleware {
	allowed := lo.SliceToMap(roles, func(role string) (string, struct{}) {
		return role, struct{}{}
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clm := jwt.GetAuth(r.Context())
			if clm == nil {
				writeJSON(w, errorResponse{Message: "Access denied"}, http.StatusForbidden)
				return
			}

			if _, ok := allowed[clm.Role]; !ok {
				writeJSON(w, errorResponse{Message: "Access denied"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
