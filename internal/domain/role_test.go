package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guildpanel/backend/internal/model"
	"github.com/guildpanel/backend/pkg/errorx"
	"github.com/guildpanel/backend/pkg/testutil"
	"github.com/guildpanel/backend/pkg/xcontext"
)

func Test_roleDomain_GetRoles(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewRoleDomain(s)

	resp, err := d.GetRoles(guildCtx(s), &model.GetRolesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Roles, 2)
	require.Equal(t, "Admin", resp.Roles[0].Name)
	require.Equal(t, "8", resp.Roles[0].Permissions)
	require.Equal(t, "104324673", resp.Roles[1].Permissions)
}

func Test_roleDomain_CreateRole(t *testing.T) {
	color := 0x00FF00
	hoist := true

	testCases := []struct {
		name    string
		req     *model.CreateRoleRequest
		wantErr error
	}{
		{
			name: "full role",
			req: &model.CreateRoleRequest{
				Name:        "Moderator",
				Color:       &color,
				Hoist:       &hoist,
				Permissions: "268435456",
			},
		},
		{
			name: "defaults only",
			req:  &model.CreateRoleRequest{},
		},
		{
			name:    "malformed permissions",
			req:     &model.CreateRoleRequest{Name: "Broken", Permissions: "not-a-number"},
			wantErr: errorx.New(errorx.BadRequest, "Invalid permissions value"),
		},
		{
			name:    "negative permissions",
			req:     &model.CreateRoleRequest{Name: "Broken", Permissions: "-8"},
			wantErr: errorx.New(errorx.BadRequest, "Invalid permissions value"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := testutil.NewFixtureSession()
			d := NewRoleDomain(s)

			resp, err := d.CreateRole(guildCtx(s), tc.req)
			if tc.wantErr != nil {
				require.Equal(t, tc.wantErr, err)
				require.Nil(t, s.LastRoleParams)
				return
			}

			require.NoError(t, err)
			require.True(t, resp.Success)
			require.Equal(t, tc.req.Name, resp.Role.Name)
		})
	}
}

// The full 64-bit permission field must survive the string round-trip.
func Test_roleDomain_permissionsMaxUint64(t *testing.T) {
	const every = "18446744073709551615"

	s := testutil.NewFixtureSession()
	d := NewRoleDomain(s)

	created, err := d.CreateRole(guildCtx(s), &model.CreateRoleRequest{
		Name:        "Everything",
		Permissions: every,
	})
	require.NoError(t, err)
	require.Equal(t, every, created.Role.Permissions)

	listed, err := d.GetRoles(guildCtx(s), &model.GetRolesRequest{})
	require.NoError(t, err)

	var found bool
	for _, role := range listed.Roles {
		if role.ID == created.Role.ID {
			found = true
			require.Equal(t, every, role.Permissions)
		}
	}
	require.True(t, found)
}

func Test_roleDomain_UpdateRole(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewRoleDomain(s)

	ctx := xcontext.WithRole(guildCtx(s), s.RolesByGuild[testutil.GuildID][0])

	name := "Head Admin"
	permissions := "16"
	resp, err := d.UpdateRole(ctx, &model.UpdateRoleRequest{
		Name:        &name,
		Permissions: &permissions,
	})
	require.NoError(t, err)
	require.Equal(t, "Head Admin", resp.Role.Name)
	require.Equal(t, "16", resp.Role.Permissions)

	// Absent fields are not forwarded.
	require.Nil(t, s.LastRoleParams.Color)
	require.Nil(t, s.LastRoleParams.Hoist)
}

func Test_roleDomain_UpdateRole_malformedPermissions(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewRoleDomain(s)

	ctx := xcontext.WithRole(guildCtx(s), s.RolesByGuild[testutil.GuildID][0])

	permissions := "0x8"
	_, err := d.UpdateRole(ctx, &model.UpdateRoleRequest{Permissions: &permissions})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid permissions value"), err)
}

func Test_roleDomain_DeleteRole(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewRoleDomain(s)

	ctx := xcontext.WithRole(guildCtx(s), s.RolesByGuild[testutil.GuildID][0])

	resp, err := d.DeleteRole(ctx, &model.DeleteRoleRequest{})
	require.NoError(t, err)
	require.Equal(t, "Role deleted successfully", resp.Message)
	require.Len(t, s.RolesByGuild[testutil.GuildID], 1)
}
