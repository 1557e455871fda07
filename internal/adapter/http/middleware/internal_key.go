package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/arthurssantosibm/api-client/internal/commons"
	"github.com/arthurssantosibm/api-client/internal/logger"
)

const internalKeyHeader = "X-Internal-Key"

// InternalKey guards backend-to-backend routes with a shared secret carried
// in the X-Internal-Key header.
func InternalKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				logger.Error("internal key middleware missing server configuration", nil, logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				commons.WriteDetail(w, http.StatusInternalServerError, "Erro interno: chave interna não configurada")
				return
			}

			if !secureEqual(r.Header.Get(internalKeyHeader), key) {
				logger.Info("internal key middleware unauthorized request", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				commons.WriteDetail(w, http.StatusForbidden, "Acesso negado")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
