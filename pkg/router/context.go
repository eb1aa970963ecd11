package router

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/guildpanel/backend/config"
	"github.com/guildpanel/backend/pkg/logger"
)

// Context is handed to middlewares. Values that must outlive the middleware
// chain are pushed into the request context with ReplaceContext, so handlers
// see them through xcontext accessors.
type Context struct {
	*gin.Context

	cfg    config.Configs
	logger logger.Logger
}

func (ctx *Context) Configs() config.Configs {
	return ctx.cfg
}

// BaseLogger returns the router's process-wide logger, without any
// request-scoped fields.
func (ctx *Context) BaseLogger() logger.Logger {
	return ctx.logger
}

// ReplaceContext swaps the underlying request context. Middlewares use it to
// hand resolved objects down the chain.
func (ctx *Context) ReplaceContext(c context.Context) {
	ctx.Request = ctx.Request.WithContext(c)
}
