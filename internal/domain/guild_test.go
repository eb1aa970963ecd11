package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guildpanel/backend/internal/model"
	"github.com/guildpanel/backend/pkg/testutil"
)

func Test_guildDomain_GetGuilds(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewGuildDomain(s)

	resp, err := d.GetGuilds(guildCtx(s), &model.GetGuildsRequest{})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Len(t, resp.Guilds, 1)
	require.Equal(t, testutil.GuildID, resp.Guilds[0].ID)
	require.Equal(t, "Fixture Guild", resp.Guilds[0].Name)
	require.NotEmpty(t, resp.Guilds[0].Icon)
}

func Test_guildDomain_GetSettings(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewGuildDomain(s)

	resp, err := d.GetSettings(guildCtx(s), &model.GetGuildSettingsRequest{})
	require.NoError(t, err)
	require.Equal(t, "Fixture Guild", resp.Settings.Name)
	require.Equal(t, "en-US", resp.Settings.Region)
	require.Equal(t, 1, resp.Settings.VerificationLevel)
	require.Equal(t, 0, resp.Settings.ExplicitContentFilter)
}

func Test_guildDomain_UpdateSettings_sparse(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewGuildDomain(s)

	level := 3
	resp, err := d.UpdateSettings(guildCtx(s), &model.UpdateGuildSettingsRequest{
		VerificationLevel: &level,
	})
	require.NoError(t, err)
	require.Equal(t, 3, resp.Settings.VerificationLevel)

	// Absent fields stay absent in the outgoing params.
	require.NotNil(t, s.LastGuildParams)
	require.Empty(t, s.LastGuildParams.Name)
	require.Empty(t, s.LastGuildParams.Locale)
	require.Nil(t, s.LastGuildParams.ExplicitContentFilter)
	require.Nil(t, s.LastGuildParams.DefaultMessageNotifications)

	// Untouched settings keep their values.
	require.Equal(t, "Fixture Guild", resp.Settings.Name)
}

// An explicit zero level must survive the trip; it is a valid setting, not
// an absent one.
func Test_guildDomain_UpdateSettings_explicitZero(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewGuildDomain(s)

	zero := 0
	resp, err := d.UpdateSettings(guildCtx(s), &model.UpdateGuildSettingsRequest{
		VerificationLevel: &zero,
	})
	require.NoError(t, err)
	require.Equal(t, 0, resp.Settings.VerificationLevel)
	require.NotNil(t, s.LastGuildParams.VerificationLevel)
	require.Equal(t, 0, *s.LastGuildParams.VerificationLevel)
}

func Test_guildDomain_UpdateSettings_rename(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewGuildDomain(s)

	resp, err := d.UpdateSettings(guildCtx(s), &model.UpdateGuildSettingsRequest{
		Name:   "Renamed Guild",
		Region: "de",
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed Guild", resp.Settings.Name)
	require.Equal(t, "de", resp.Settings.Region)
}
