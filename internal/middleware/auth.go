package middleware

import (
	"crypto/subtle"

	"github.com/guildpanel/backend/config"
	"github.com/guildpanel/backend/pkg/errorx"
	"github.com/guildpanel/backend/pkg/router"
)

// Authenticate rejects any request whose Authorization header does not match
// the panel's shared secret. It is a pure per-request check; nothing is
// stored on success.
func Authenticate(cfg config.Configs) router.MiddlewareFunc {
	secret := []byte(cfg.Auth.Secret)

	return func(ctx *router.Context) error {
		credential := []byte(ctx.GetHeader("Authorization"))
		if subtle.ConstantTimeCompare(credential, secret) != 1 {
			return errorx.New(errorx.Unauthenticated, "Unauthorized")
		}

		return nil
	}
}
