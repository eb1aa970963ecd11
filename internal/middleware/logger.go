package middleware

import (
	"github.com/google/uuid"

	"github.com/guildpanel/backend/pkg/router"
	"github.com/guildpanel/backend/pkg/xcontext"
)

// Logger installs a request-scoped logger tagged with a fresh request id.
func Logger() router.MiddlewareFunc {
	return func(ctx *router.Context) error {
		requestID := uuid.NewString()
		log := ctx.BaseLogger().With("request_id", requestID)
		log.Infof("%s %s", ctx.Request.Method, ctx.Request.URL.Path)

		reqCtx := xcontext.WithRequestID(ctx.Request.Context(), requestID)
		ctx.ReplaceContext(xcontext.WithLogger(reqCtx, log))
		return nil
	}
}
