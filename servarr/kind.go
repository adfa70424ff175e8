package servarr

import (
	"fmt"
	"strings"
)

// AppKind identifies which Servarr application an instance runs.
type AppKind string

// The five supported application kinds.
const (
	Sonarr   AppKind = "sonarr"
	Radarr   AppKind = "radarr"
	Lidarr   AppKind = "lidarr"
	Readarr  AppKind = "readarr"
	Prowlarr AppKind = "prowlarr"
)

// ParseAppKind parses a case-insensitive app kind name.
func ParseAppKind(s string) (AppKind, error) {
	switch AppKind(strings.ToLower(strings.TrimSpace(s))) {
	case Sonarr:
		return Sonarr, nil
	case Radarr:
		return Radarr, nil
	case Lidarr:
		return Lidarr, nil
	case Readarr:
		return Readarr, nil
	case Prowlarr:
		return Prowlarr, nil
	}
	return "", fmt.Errorf("unknown app type %q (must be sonarr, radarr, lidarr, readarr, or prowlarr)", s)
}

// APIVersion returns the API version the kind speaks. Sonarr and
// Radarr expose v3; the rest are still on v1.
func (k AppKind) APIVersion() string {
	switch k {
	case Sonarr, Radarr:
		return "v3"
	default:
		return "v1"
	}
}

// DisplayName returns the capitalized application name for payloads.
func (k AppKind) DisplayName() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// String implements fmt.Stringer
func (k AppKind) String() string {
	return string(k)
}
