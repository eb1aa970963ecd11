package domain

import (
	"context"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/exp/slices"

	"github.com/guildpanel/backend/internal/model"
	"github.com/guildpanel/backend/internal/session"
	"github.com/guildpanel/backend/pkg/errorx"
	"github.com/guildpanel/backend/pkg/xcontext"
)

type RoleDomain interface {
	GetRoles(context.Context, *model.GetRolesRequest) (*model.GetRolesResponse, error)
	CreateRole(context.Context, *model.CreateRoleRequest) (*model.CreateRoleResponse, error)
	UpdateRole(context.Context, *model.UpdateRoleRequest) (*model.UpdateRoleResponse, error)
	DeleteRole(context.Context, *model.DeleteRoleRequest) (*model.DeleteRoleResponse, error)
}

type roleDomain struct {
	roleStore session.RoleStore
}

func NewRoleDomain(roleStore session.RoleStore) RoleDomain {
	return &roleDomain{roleStore: roleStore}
}

func (d *roleDomain) GetRoles(ctx context.Context, req *model.GetRolesRequest) (*model.GetRolesResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	roles, err := d.roleStore.Roles(ctx, guild.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot fetch roles: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to fetch roles: %v", err)
	}

	// Highest role first, the order the platform renders them in.
	slices.SortFunc(roles, func(a, b *discordgo.Role) int {
		return b.Position - a.Position
	})

	out := make([]model.Role, 0, len(roles))
	for _, role := range roles {
		out = append(out, model.ConvertRole(role))
	}

	return &model.GetRolesResponse{
		Response: model.OK("Roles fetched successfully"),
		Roles:    out,
	}, nil
}

// parsePermissions rejects malformed bitfield strings locally, before any
// platform call is attempted.
func parsePermissions(raw string) (*uint64, error) {
	if raw == "" {
		return nil, nil
	}

	permissions, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid permissions value")
	}

	return &permissions, nil
}

func (d *roleDomain) CreateRole(ctx context.Context, req *model.CreateRoleRequest) (*model.CreateRoleResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	permissions, err := parsePermissions(req.Permissions)
	if err != nil {
		return nil, err
	}

	params := session.RoleParams{
		Color:       req.Color,
		Hoist:       req.Hoist,
		Permissions: permissions,
	}
	if req.Name != "" {
		params.Name = &req.Name
	}

	role, err := d.roleStore.CreateRole(ctx, guild.ID, params)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create role: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to create role: %v", err)
	}

	return &model.CreateRoleResponse{
		Response: model.OK("Role created successfully"),
		Role:     model.ConvertRole(role),
	}, nil
}

func (d *roleDomain) UpdateRole(ctx context.Context, req *model.UpdateRoleRequest) (*model.UpdateRoleResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	role, err := roleFromContext(ctx)
	if err != nil {
		return nil, err
	}

	params := session.RoleParams{
		Name:  req.Name,
		Color: req.Color,
		Hoist: req.Hoist,
	}
	if req.Permissions != nil {
		permissions, err := parsePermissions(*req.Permissions)
		if err != nil {
			return nil, err
		}
		params.Permissions = permissions
	}

	updated, err := d.roleStore.EditRole(ctx, guild.ID, role.ID, params)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update role: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to update role: %v", err)
	}

	return &model.UpdateRoleResponse{
		Response: model.OK("Role updated successfully"),
		Role:     model.ConvertRole(updated),
	}, nil
}

func (d *roleDomain) DeleteRole(ctx context.Context, req *model.DeleteRoleRequest) (*model.DeleteRoleResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	role, err := roleFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := d.roleStore.DeleteRole(ctx, guild.ID, role.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete role: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to delete role: %v", err)
	}

	return &model.DeleteRoleResponse{
		Response: model.OK("Role deleted successfully"),
	}, nil
}
