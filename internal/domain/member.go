package domain

import (
	"context"

	"github.com/guildpanel/backend/internal/model"
	"github.com/guildpanel/backend/internal/session"
	"github.com/guildpanel/backend/pkg/errorx"
	"github.com/guildpanel/backend/pkg/xcontext"
)

// The platform expresses ban message retention in seconds; the panel speaks
// days.
const secondsPerDay = 86400

const membersPageSize = 1000

type MemberDomain interface {
	GetMembers(context.Context, *model.GetMembersRequest) (*model.GetMembersResponse, error)
	KickMember(context.Context, *model.KickMemberRequest) (*model.KickMemberResponse, error)
	BanMember(context.Context, *model.BanMemberRequest) (*model.BanMemberResponse, error)
	UnbanMember(context.Context, *model.UnbanMemberRequest) (*model.UnbanMemberResponse, error)
	GetBans(context.Context, *model.GetBansRequest) (*model.GetBansResponse, error)
}

type memberDomain struct {
	memberStore session.MemberStore
}

func NewMemberDomain(memberStore session.MemberStore) MemberDomain {
	return &memberDomain{memberStore: memberStore}
}

func (d *memberDomain) GetMembers(ctx context.Context, req *model.GetMembersRequest) (*model.GetMembersResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	members, err := d.memberStore.Members(ctx, guild.ID, membersPageSize)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot fetch members: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to fetch members: %v", err)
	}

	out := make([]model.Member, 0, len(members))
	for _, member := range members {
		out = append(out, model.ConvertMember(member))
	}

	return &model.GetMembersResponse{
		Response: model.OK("Members fetched successfully"),
		Members:  out,
	}, nil
}

func (d *memberDomain) KickMember(ctx context.Context, req *model.KickMemberRequest) (*model.KickMemberResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	member, err := memberFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := d.memberStore.Kick(ctx, guild.ID, member.User.ID, req.Reason); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot kick member: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to kick member: %v", err)
	}

	return &model.KickMemberResponse{
		Response: model.OK("Member kicked successfully"),
	}, nil
}

func (d *memberDomain) BanMember(ctx context.Context, req *model.BanMemberRequest) (*model.BanMemberResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	member, err := memberFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if req.DeleteMessageDays < 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid deleteMessageDays value")
	}

	seconds := req.DeleteMessageDays * secondsPerDay
	if err := d.memberStore.Ban(ctx, guild.ID, member.User.ID, req.Reason, seconds); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot ban member: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to ban member: %v", err)
	}

	return &model.BanMemberResponse{
		Response: model.OK("Member banned successfully"),
	}, nil
}

// UnbanMember takes the raw user id; a banned user is no longer a member, so
// there is nothing to resolve.
func (d *memberDomain) UnbanMember(ctx context.Context, req *model.UnbanMemberRequest) (*model.UnbanMemberResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := d.memberStore.Unban(ctx, guild.ID, req.UserID, req.Reason); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot unban member: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to unban member: %v", err)
	}

	return &model.UnbanMemberResponse{
		Response: model.OK("Member unbanned successfully"),
	}, nil
}

func (d *memberDomain) GetBans(ctx context.Context, req *model.GetBansRequest) (*model.GetBansResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	bans, err := d.memberStore.Bans(ctx, guild.ID, membersPageSize)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot fetch bans: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to fetch bans: %v", err)
	}

	out := make([]model.Ban, 0, len(bans))
	for _, ban := range bans {
		out = append(out, model.ConvertBan(ban))
	}

	return &model.GetBansResponse{
		Response: model.OK("Bans fetched successfully"),
		Bans:     out,
	}, nil
}
