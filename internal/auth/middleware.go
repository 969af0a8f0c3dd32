package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quiz-wizard/internal/config"
)

const CookieName = "quiz_session"

type contextKey string

const claimsKey contextKey = "sessionClaims"

var ErrNoClaims = errors.New("no session claims in context")

func GetSessionClaimsFromContext(ctx context.Context) (*SessionClaims, error) {
	claims, ok := ctx.Value(claimsKey).(*SessionClaims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

// SessionMiddleware accepts the request only when its token was issued for the
// session named by the {id} route parameter.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			log.WithError(err).Warn("Invalid session token")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if id := chi.URLParam(r, "id"); id != "" && id != claims.SessionID {
			log.WithField("session_id", id).Warn("Token issued for a different session")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
