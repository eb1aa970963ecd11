package session

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func restError(status int) error {
	return &discordgo.RESTError{Response: &http.Response{StatusCode: status}}
}

func TestNormalizeError(t *testing.T) {
	require.NoError(t, normalizeError(nil))

	require.ErrorIs(t, normalizeError(restError(http.StatusNotFound)), ErrNotFound)
	require.ErrorIs(t, normalizeError(restError(http.StatusForbidden)), ErrNotFound)

	// Rate limits and server errors pass through untouched.
	tooMany := restError(http.StatusTooManyRequests)
	require.Equal(t, tooMany, normalizeError(tooMany))

	plain := errors.New("websocket closed")
	require.Equal(t, plain, normalizeError(plain))

	// A RESTError without a response must not panic.
	bare := &discordgo.RESTError{}
	require.Equal(t, error(bare), normalizeError(bare))
}
