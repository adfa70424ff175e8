package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// webhookClient is shared by all collectors; sends are sequential.
var webhookClient = &http.Client{Timeout: 30 * time.Second}

// Send delivers the payload. With dry-run set or no webhook
// configured the payload is printed instead. No retries: the next
// scheduled cycle is the retry.
func (c *Collector) Send(ctx context.Context, payload *Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	if c.inst.Verbose {
		c.logger.Info().Int("payload_bytes", len(body)).Msg("Payload encoded")
	}

	if c.inst.DryRun || c.inst.Webhook == "" {
		pretty, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(pretty))
		return nil
	}

	c.logger.Info().Msg("Sending data to TRMNL webhook")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.inst.Webhook, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := webhookClient.Do(req)
	if err != nil {
		return &SendError{Webhook: c.inst.Webhook, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &SendError{Webhook: c.inst.Webhook, StatusCode: resp.StatusCode}
	}

	c.logger.Info().Int("status", resp.StatusCode).Msg("Successfully sent data")
	return nil
}
