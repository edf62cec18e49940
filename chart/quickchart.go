// Package chart renders a Chart.js config into a hosted image URL via
// QuickChart. Rendering is best-effort: every failure collapses to "no
// chart" and the email goes out without one.
package chart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// Renderer posts chart configs to the QuickChart create endpoint.
type Renderer struct {
	client      *resty.Client
	endpointURL string
}

func NewRenderer(endpointURL string) *Renderer {
	return &Renderer{
		client:      resty.New().SetTimeout(30 * time.Second),
		endpointURL: endpointURL,
	}
}

type createRequest struct {
	Chart           json.RawMessage `json:"chart"`
	Width           int             `json:"width"`
	Height          int             `json:"height"`
	BackgroundColor string          `json:"backgroundColor"`
	Format          string          `json:"format"`
}

type createResponse struct {
	URL string `json:"url"`
}

// Render returns the hosted image URL for cfg, or ok=false when the config
// is absent or the service call fails for any reason.
func (r *Renderer) Render(ctx context.Context, cfg json.RawMessage) (string, bool) {
	if len(cfg) == 0 {
		return "", false
	}

	var out createResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(createRequest{
			Chart:           cfg,
			Width:           600,
			Height:          400,
			BackgroundColor: "white",
			Format:          "png",
		}).
		SetResult(&out).
		Post(r.endpointURL)
	if err != nil {
		log.Warn().Err(err).Msg("chart render failed, continuing without chart")
		return "", false
	}
	if !resp.IsSuccess() {
		log.Warn().Int("status", resp.StatusCode()).Msg("chart service returned error, continuing without chart")
		return "", false
	}
	if out.URL == "" {
		log.Warn().Msg("chart service response missing url, continuing without chart")
		return "", false
	}
	return out.URL, true
}
