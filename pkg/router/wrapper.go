package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guildpanel/backend/pkg/errorx"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Request
		if len(ctx.Params) > 0 {
			if err := ctx.ShouldBindUri(&req); err != nil {
				writeError(ctx, errorx.New(errorx.BadRequest, "Invalid path parameters"))
				return
			}
		}

		switch method {
		case http.MethodGet:
			if err := ctx.ShouldBindQuery(&req); err != nil {
				writeError(ctx, errorx.New(errorx.BadRequest, "Invalid query parameters"))
				return
			}

		default:
			// Request bodies are optional on mutating endpoints; a kick
			// without a reason sends no body at all.
			if ctx.Request.Body != nil && ctx.Request.ContentLength != 0 {
				if err := ctx.ShouldBindJSON(&req); err != nil {
					writeError(ctx, errorx.New(errorx.BadRequest, "Invalid request body"))
					return
				}
			}
		}

		resp, err := handler(ctx.Request.Context(), &req)
		if err != nil {
			writeError(ctx, err)
			return
		}

		if resp != nil {
			ctx.JSON(http.StatusOK, resp)
		}
	}
}

func wrapMiddleware(router *Router, middleware MiddlewareFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		customContext := &Context{
			Context: ctx,
			cfg:     router.cfg,
			logger:  router.logger,
		}

		if err := middleware(customContext); err != nil {
			writeError(ctx, err)
			ctx.Abort()
		}
	}
}
