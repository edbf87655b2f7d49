package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/ontomap-backend/internal/auth"
	"github.com/heartmarshall/ontomap-backend/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (auth.Claims, error)
}

// Auth validates bearer tokens and stores the token subject in the context.
// An invalid token is always rejected; a missing one only when required is set.
func Auth(validator tokenValidator, required bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				if required {
					w.Header().Set("WWW-Authenticate", `Bearer realm="ontomap"`)
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := ctxutil.WithSubject(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
