// Package servarr provides a minimal read-only client for the
// Servarr family of media managers (Sonarr, Radarr, Lidarr, Readarr,
// Prowlarr).
//
// The five applications expose structurally similar REST APIs behind
// an X-Api-Key header, split across two API versions. The package
// covers the three things the collector needs from them:
//
//   - Client: authenticated GETs with classified failures
//     (ConnectionError, AuthenticationError, RequestError) and a
//     swallow-to-empty mode for best-effort data fetches
//   - AppKind: the closed enumeration of application kinds and their
//     API version mapping
//   - DetectAppKind: v3-then-v1 probing of /system/status to resolve
//     an instance's kind without per-instance configuration
package servarr
