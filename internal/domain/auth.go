package domain

import (
	"context"
	"crypto/subtle"

	"github.com/guildpanel/backend/config"
	"github.com/guildpanel/backend/internal/model"
	"github.com/guildpanel/backend/pkg/errorx"
)

type AuthDomain interface {
	Verify(context.Context, *model.VerifyTokenRequest) (*model.VerifyTokenResponse, error)
}

type authDomain struct {
	secret []byte
}

func NewAuthDomain(cfg config.Configs) AuthDomain {
	return &authDomain{secret: []byte(cfg.Auth.Secret)}
}

// Verify is a liveness probe for the panel credential. It mints nothing and
// stores nothing; the header check on every other endpoint is the single
// source of truth.
func (d *authDomain) Verify(ctx context.Context, req *model.VerifyTokenRequest) (*model.VerifyTokenResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Token), d.secret) != 1 {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid token")
	}

	return &model.VerifyTokenResponse{Response: model.OK("Authentication successful")}, nil
}
