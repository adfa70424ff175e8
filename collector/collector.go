package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/trmnl-community/servarr-collector/servarr"
)

// Instance is the immutable configuration of one polled Servarr
// endpoint. One Instance is one independent collection unit.
type Instance struct {
	Name               string
	URL                string
	APIKey             string
	Webhook            string
	AppType            string // forces the kind, skipping detection
	CalendarDays       int
	CalendarDaysBefore int
	CalendarOnly       bool
	Timezone           string
	Verbose            bool
	DryRun             bool
}

// Collector runs collection cycles for a single instance.
type Collector struct {
	inst   Instance
	client *servarr.Client
	logger zerolog.Logger

	// now is replaceable so tests control the clock.
	now func() time.Time
}

// New creates a collector for one instance.
func New(inst Instance, logger zerolog.Logger) (*Collector, error) {
	client, err := servarr.NewClient(inst.URL, inst.APIKey, logger,
		servarr.WithVerbose(inst.Verbose))
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", inst.Name, err)
	}

	return &Collector{
		inst:   inst,
		client: client,
		logger: logger.With().Str("instance", inst.Name).Logger(),
		now:    time.Now,
	}, nil
}

// Name returns the instance name used in logs and summaries.
func (c *Collector) Name() string {
	return c.inst.Name
}

// resolveKind returns the forced kind when configured, otherwise
// probes the instance. Resolution happens once per cycle; a kind
// cannot change while the upstream app runs, but re-resolving every
// cycle keeps long-interval reconnects honest.
func (c *Collector) resolveKind(ctx context.Context) (servarr.AppKind, error) {
	if c.inst.AppType != "" {
		return servarr.ParseAppKind(c.inst.AppType)
	}
	return c.client.DetectAppKind(ctx)
}

// Collect runs one full collection cycle and assembles the payload.
// Kind resolution failures propagate; everything after resolution
// degrades per section instead of failing the cycle.
func (c *Collector) Collect(ctx context.Context) (*Payload, error) {
	c.logger.Info().Str("url", c.client.BaseURL()).Msg("Collecting data")

	kind, err := c.resolveKind(ctx)
	if err != nil {
		return nil, err
	}
	c.logger.Info().
		Str("app_type", kind.String()).
		Str("api_version", kind.APIVersion()).
		Msg("Resolved app type")

	n := normalizerFor(kind)

	vars := MergeVariables{
		AppName:     kind.DisplayName(),
		AppType:     kind.String(),
		LastUpdated: c.now().UTC().Format("2006-01-02T15:04:05Z"),
		Timezone:    timezoneAbbrev(c.inst.Timezone, c.now()),
		Calendar:    c.fetchCalendar(ctx, n),
	}

	if !c.inst.CalendarOnly {
		vars.Health = c.fetchHealth(ctx, n)
		vars.Queue = c.fetchQueue(ctx, n)
		vars.Stats = n.stats(ctx, c.client)
		vars.RecentlyAdded = c.fetchRecentlyAdded(ctx, n)
	}

	return &Payload{MergeVariables: vars}, nil
}

// fetchHealth collapses the health check list to one of three states:
// no entries (or no usable response) is ok, any entry of type "error"
// is error, anything else is warning.
func (c *Collector) fetchHealth(ctx context.Context, n normalizer) *Health {
	var records []healthRecord
	if !c.client.TryGet(ctx, "/api/"+n.kind().APIVersion()+"/health", &records) {
		return &Health{Status: "ok"}
	}

	if len(records) == 0 {
		return &Health{Status: "ok"}
	}

	for i := range records {
		if records[i].Type == "error" {
			return &Health{Status: "error"}
		}
	}
	return &Health{Status: "warning"}
}
