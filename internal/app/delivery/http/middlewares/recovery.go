package middlewares

import (
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Recover turns handler panics into a plain 500 response instead of tearing
// down the connection.
func (m *Middlewares) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.Log.Error("panic recovered in http handler",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(
					constvars.StatusInternalServerError,
					constvars.ErrClientSomethingWrongWithApplication,
					constvars.ErrDevPanicRecovered,
				))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
