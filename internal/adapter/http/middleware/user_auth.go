package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/arthurssantosibm/api-client/internal/commons"
	"github.com/arthurssantosibm/api-client/internal/logger"
)

// TokenVerifier checks a signed user credential and returns its subject.
type TokenVerifier interface {
	Verify(raw string) (int64, error)
}

type contextKey string

const accountIDKey contextKey = "accountID"

// UserAuth guards user-scoped routes with a bearer token. Every verification
// failure is reported identically so callers cannot tell a bad signature
// from an expired or malformed token.
func UserAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r.Header.Get("Authorization"))
			if raw == "" {
				commons.WriteDetail(w, http.StatusUnauthorized, "Token inválido")
				return
			}

			id, err := verifier.Verify(raw)
			if err != nil {
				logger.Info("user auth middleware rejected token", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				commons.WriteDetail(w, http.StatusUnauthorized, "Token inválido")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), accountIDKey, id)))
		})
	}
}

// AccountID returns the authenticated account id placed by UserAuth.
func AccountID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(accountIDKey).(int64)
	return id, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
