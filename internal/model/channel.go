package model

type Channel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Position int    `json:"position"`
	ParentID string `json:"parentId,omitempty"`
	Topic    string `json:"topic,omitempty"`
}

type GetChannelsRequest struct{}

type GetChannelsResponse struct {
	Response
	Channels []Channel `json:"channels"`
}

type CreateChannelRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
}

type CreateChannelResponse struct {
	Response
	Channel Channel `json:"channel"`
}

// UpdateChannelRequest carries only the fields the caller supplied; nil
// fields are never forwarded to the platform.
type UpdateChannelRequest struct {
	Name     *string `json:"name"`
	Topic    *string `json:"topic"`
	Position *int    `json:"position"`
	ParentID *string `json:"parentId"`
}

type UpdateChannelResponse struct {
	Response
	Channel Channel `json:"channel"`
}

type DeleteChannelRequest struct{}

type DeleteChannelResponse struct {
	Response
}
