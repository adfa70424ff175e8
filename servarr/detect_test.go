package servarr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetectClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "test-key", zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestDetectAppKindV3(t *testing.T) {
	client := newDetectClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/system/status", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"appName": "Sonarr"})
	})

	kind, err := client.DetectAppKind(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Sonarr, kind)
	assert.Equal(t, "v3", kind.APIVersion())
}

func TestDetectAppKindFallsBackToV1OnAuthError(t *testing.T) {
	// A v1-only app such as Readarr can reject the v3 probe with 401
	// even though the API key is fine.
	client := newDetectClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/system/status":
			w.WriteHeader(http.StatusUnauthorized)
		case "/api/v1/system/status":
			json.NewEncoder(w).Encode(map[string]any{"appName": "Readarr"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	kind, err := client.DetectAppKind(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Readarr, kind)
	assert.Equal(t, "v1", kind.APIVersion())
}

func TestDetectAppKindAuthFailureOnBothVersions(t *testing.T) {
	client := newDetectClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.DetectAppKind(context.Background())

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, err.Error(), "check API key")
}

func TestDetectAppKindConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClient(url, "test-key", zerolog.Nop())
	require.NoError(t, err)

	_, err = client.DetectAppKind(context.Background())

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Contains(t, err.Error(), "check URL and ensure service is running")
}

func TestDetectAppKindUndetectable(t *testing.T) {
	tests := []struct {
		name    string
		status  map[string]any
		wantMsg string
	}{
		{
			name:    "missing appName",
			status:  map[string]any{"version": "4.0.0"},
			wantMsg: "could not detect app type",
		},
		{
			name:    "unknown appName",
			status:  map[string]any{"appName": "Whisparr"},
			wantMsg: "not a known app type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newDetectClient(t, func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(tt.status)
			})

			_, err := client.DetectAppKind(context.Background())

			var detErr *DetectionError
			require.ErrorAs(t, err, &detErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDetectAppKindIsCaseInsensitive(t *testing.T) {
	client := newDetectClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"appName": "RADARR"})
	})

	kind, err := client.DetectAppKind(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Radarr, kind)
}

func TestAppKindAPIVersion(t *testing.T) {
	assert.Equal(t, "v3", Sonarr.APIVersion())
	assert.Equal(t, "v3", Radarr.APIVersion())
	assert.Equal(t, "v1", Lidarr.APIVersion())
	assert.Equal(t, "v1", Readarr.APIVersion())
	assert.Equal(t, "v1", Prowlarr.APIVersion())
}

func TestParseAppKind(t *testing.T) {
	kind, err := ParseAppKind(" Lidarr ")
	require.NoError(t, err)
	assert.Equal(t, Lidarr, kind)

	_, err = ParseAppKind("plex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown app type")
}

func TestAppKindDisplayName(t *testing.T) {
	assert.Equal(t, "Sonarr", Sonarr.DisplayName())
	assert.Equal(t, "Prowlarr", Prowlarr.DisplayName())
}
