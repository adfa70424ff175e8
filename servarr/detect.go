package servarr

import (
	"context"
	"errors"
)

// systemStatus is the subset of /system/status used for detection.
type systemStatus struct {
	AppName string `json:"appName"`
	Version string `json:"version"`
}

// DetectAppKind determines which Servarr application the instance
// runs by asking /system/status for its application name.
//
// The five kinds are split across two API versions (Sonarr/Radarr on
// v3, the rest on v1) and nothing answers "what version am I" without
// already picking one, so detection probes v3 first and falls back to
// v1 on connection or authentication failure.
func (c *Client) DetectAppKind(ctx context.Context) (AppKind, error) {
	var status systemStatus

	err := c.Get(ctx, "/api/v3/system/status", &status)

	var connErr *ConnectionError
	var authErr *AuthenticationError

	switch {
	case err == nil:

	case errors.As(err, &connErr):
		// Lidarr, Readarr, and Prowlarr only answer on v1.
		if v1Err := c.Get(ctx, "/api/v1/system/status", &status); v1Err != nil {
			if errors.As(v1Err, &connErr) {
				return "", &ConnectionError{
					URL:    c.baseURL,
					Reason: "check URL and ensure service is running",
					Err:    v1Err,
				}
			}
			return "", v1Err
		}

	case errors.As(err, &authErr):
		// A v1-only app can 401 the v3 probe even with a good key.
		if v1Err := c.Get(ctx, "/api/v1/system/status", &status); v1Err != nil {
			if errors.As(v1Err, &connErr) || errors.As(v1Err, &authErr) {
				return "", &AuthenticationError{URL: c.baseURL}
			}
			return "", v1Err
		}

	default:
		return "", err
	}

	if status.AppName == "" {
		return "", &DetectionError{URL: c.baseURL}
	}

	kind, err := ParseAppKind(status.AppName)
	if err != nil {
		return "", &DetectionError{URL: c.baseURL, AppName: status.AppName}
	}

	return kind, nil
}
