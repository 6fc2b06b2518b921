package middlewares

import (
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"
)

// Authenticate resolves the bearer token into a session and stores it on the
// request context for the controllers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		session, err := m.RedisRepository.GetSession(ctx, sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
			return
		}

		reqCtx := context.WithValue(r.Context(), constvars.ContextSessionDataKey, session)
		reqCtx = context.WithValue(reqCtx, constvars.ContextSessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}
