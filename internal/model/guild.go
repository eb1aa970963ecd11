package model

type Guild struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type GuildSettings struct {
	Name                        string `json:"name"`
	Icon                        string `json:"icon,omitempty"`
	Region                      string `json:"region"`
	VerificationLevel           int    `json:"verificationLevel"`
	ExplicitContentFilter       int    `json:"explicitContentFilter"`
	DefaultMessageNotifications int    `json:"defaultMessageNotifications"`
}

type GetGuildsRequest struct{}

type GetGuildsResponse struct {
	Response
	Guilds []Guild `json:"guilds"`
}

type GetGuildSettingsRequest struct{}

type GetGuildSettingsResponse struct {
	Response
	Settings GuildSettings `json:"settings"`
}

// UpdateGuildSettingsRequest is the whitelist of editable settings. The
// numeric levels are pointers so an explicit zero survives the trip.
type UpdateGuildSettingsRequest struct {
	Name                        string `json:"name"`
	Region                      string `json:"region"`
	VerificationLevel           *int   `json:"verificationLevel"`
	ExplicitContentFilter       *int   `json:"explicitContentFilter"`
	DefaultMessageNotifications *int   `json:"defaultMessageNotifications"`
}

type UpdateGuildSettingsResponse struct {
	Response
	Settings GuildSettings `json:"settings"`
}
