// Package collector normalizes data from Servarr instances into the
// unified TRMNL webhook payload.
//
// The heart of the package is the per-kind normalizer rule-sets:
// Sonarr, Radarr, Lidarr, Readarr, and Prowlarr expose structurally
// similar queue, calendar, health, and history endpoints, but compose
// titles, pick release dates, and aggregate statistics differently.
// One normalizer per kind supplies those rules; shared engines drive
// the fetching, truncation, and count bookkeeping.
//
// A Collector owns one instance's cycle: resolve the app kind, fetch
// and normalize each section (failures degrade that section to
// empty), assemble the payload, and Send it. Run fans the cycle out
// across instances sequentially and reports aggregate success.
package collector
