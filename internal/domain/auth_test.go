package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guildpanel/backend/config"
	"github.com/guildpanel/backend/internal/model"
	"github.com/guildpanel/backend/pkg/errorx"
)

func Test_authDomain_Verify(t *testing.T) {
	cfg := config.Configs{Auth: config.AuthConfigs{Secret: "panel-secret"}}
	d := NewAuthDomain(cfg)

	testCases := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:  "valid token",
			token: "panel-secret",
		},
		{
			name:    "wrong token",
			token:   "guess",
			wantErr: errorx.New(errorx.Unauthenticated, "Invalid token"),
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: errorx.New(errorx.Unauthenticated, "Invalid token"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := d.Verify(context.Background(), &model.VerifyTokenRequest{Token: tc.token})
			if tc.wantErr != nil {
				require.Equal(t, tc.wantErr, err)
				return
			}

			require.NoError(t, err)
			require.True(t, resp.Success)
			require.Equal(t, "Authentication successful", resp.Message)
		})
	}
}
