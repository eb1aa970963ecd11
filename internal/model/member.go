package model

import "time"

type Member struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator"`
	Nickname      string    `json:"nickname,omitempty"`
	Avatar        string    `json:"avatar,omitempty"`
	JoinedAt      time.Time `json:"joinedAt"`
	Roles         []string  `json:"roles"`
}

type Ban struct {
	User   Author `json:"user"`
	Reason string `json:"reason,omitempty"`
}

type GetMembersRequest struct{}

type GetMembersResponse struct {
	Response
	Members []Member `json:"members"`
}

type KickMemberRequest struct {
	Reason string `json:"reason"`
}

type KickMemberResponse struct {
	Response
}

// BanMemberRequest takes the message-retention window in days; the gateway
// converts it to the platform's seconds unit before the call.
type BanMemberRequest struct {
	Reason            string `json:"reason"`
	DeleteMessageDays int    `json:"deleteMessageDays"`
}

type BanMemberResponse struct {
	Response
}

type UnbanMemberRequest struct {
	UserID string `uri:"userId" json:"-"`
	Reason string `json:"reason"`
}

type UnbanMemberResponse struct {
	Response
}

type GetBansRequest struct{}

type GetBansResponse struct {
	Response
	Bans []Ban `json:"bans"`
}
