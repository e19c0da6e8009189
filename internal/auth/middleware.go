package auth

import (
	"context"
	"net/http"
	"strings"

	"VinaUrbana/pkg/kit"
)

type ctxKey string

const userKey ctxKey = "user"

func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey).(User)
	return u, ok
}

// RequireUser resolves the bearer token to a registered user and injects it
// into the request context. Any failure is a 401.
func RequireUser(codec TokenCodec, store UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				kit.WriteError(w, r, http.StatusUnauthorized, "token inválido", nil)
				return
			}

			email, err := codec.Resolve(strings.TrimPrefix(authz, "Bearer "))
			if err != nil {
				kit.WriteError(w, r, http.StatusUnauthorized, "token inválido", nil)
				return
			}

			u, ok, err := store.FindByEmail(r.Context(), email)
			if err != nil || !ok {
				kit.WriteError(w, r, http.StatusUnauthorized, "token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
