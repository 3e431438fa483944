// Package feed pushes campaign milestones to an external activity-feed webhook.
package feed

import (
	"career-tracker/internal/campaign"
	"career-tracker/internal/config"
	"career-tracker/internal/constants"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type Client struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
	logger  zerolog.Logger

	statsMu sync.RWMutex
	stats   DeliveryStats
}

type DeliveryStats struct {
	Sent       int       `json:"sent"`
	Failed     int       `json:"failed"`
	LastStatus int       `json:"last_status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Event struct {
	Type      string             `json:"type"`
	Milestone campaign.Milestone `json:"milestone"`
	SentAt    time.Time          `json:"sent_at"`
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	timeout := cfg.FeedTimeout
	if timeout <= 0 {
		timeout = constants.FeedPublishTimeout
	}
	return &Client{
		url:     cfg.FeedWebhookURL,
		timeout: timeout,
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		logger: logger.With().Str("component", "feed").Logger(),
	}
}

func (c *Client) Enabled() bool { return c.url != "" }

func (c *Client) Stats() DeliveryStats {
	c.statsMu.RLock()
	defer c.statsMu.RUnlock()
	return c.stats
}

// Publish delivers one milestone. Without a webhook URL it only logs.
func (c *Client) Publish(ctx context.Context, m campaign.Milestone) error {
	if !c.Enabled() {
		c.logger.Info().
			Str("kind", string(m.Kind)).
			Str("player", m.PlayerName).
			Int("campaign_number", m.CampaignNumber).
			Msg("milestone reached")
		return nil
	}

	body, err := json.Marshal(Event{Type: "milestone." + string(m.Kind), Milestone: m, SentAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode milestone: %w", err)
	}

	status, err := c.post(ctx, body)
	c.record(status, err)
	if err != nil {
		c.logger.Warn().Err(err).Str("kind", string(m.Kind)).Str("player_id", m.PlayerID).Msg("failed to publish milestone")
		return err
	}

	c.logger.Debug().Str("kind", string(m.Kind)).Int("status", status).Msg("milestone published")
	return nil
}

func (c *Client) post(ctx context.Context, body []byte) (int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return 0, fmt.Errorf("failed to reach feed: %w", err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return status, fmt.Errorf("feed error: %d", status)
	}
	return status, nil
}

func (c *Client) record(status int, err error) {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()

	if err != nil {
		c.stats.Failed++
	} else {
		c.stats.Sent++
	}
	c.stats.LastStatus = status
	c.stats.UpdatedAt = time.Now()
}
