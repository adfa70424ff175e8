package collector

import (
	"context"

	"github.com/rs/zerolog"
)

// failure records why one instance's cycle did not complete.
type failure struct {
	name   string
	reason string
}

// Run executes one collection cycle across all collectors, strictly
// sequentially. Each instance is independent: collect-or-send
// failures are recorded and the remaining instances still run.
// Returns true iff every instance collected and sent successfully.
func Run(ctx context.Context, collectors []*Collector, logger zerolog.Logger) bool {
	logger.Info().Int("instances", len(collectors)).Msg("Starting collection cycle")

	var succeeded int
	var failed []failure

	for _, col := range collectors {
		payload, err := col.Collect(ctx)
		if err != nil {
			logger.Error().Str("instance", col.Name()).Msg(err.Error())
			failed = append(failed, failure{name: col.Name(), reason: err.Error()})
			continue
		}

		if err := col.Send(ctx, payload); err != nil {
			logger.Error().Str("instance", col.Name()).Msg(err.Error())
			failed = append(failed, failure{name: col.Name(), reason: err.Error()})
			continue
		}

		succeeded++
	}

	if len(failed) > 0 {
		logger.Warn().
			Int("succeeded", succeeded).
			Int("failed", len(failed)).
			Int("total", len(collectors)).
			Msg("Collection complete")
		for _, f := range failed {
			logger.Warn().Str("instance", f.name).Str("reason", f.reason).Msg("Instance failed")
		}
		return false
	}

	logger.Info().
		Int("succeeded", succeeded).
		Int("total", len(collectors)).
		Msg("Collection complete")
	return true
}
