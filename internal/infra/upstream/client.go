// Package upstream is the typed client for the remote OfferBee voucher
// API. The API owns all voucher, pricing and account logic; this client
// serializes requests, attaches the caller's bearer token, and classifies
// failures. No retries, no local recomputation of anything the server
// returns.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"offerbee-storefront/internal/infra"
	"offerbee-storefront/internal/pkg/config"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Client struct {
	baseURL string
	hc      *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		hc: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// do issues one request/response exchange. A non-empty token goes out as
// a bearer header; out, when non-nil, receives the decoded 2xx body.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return infra.WrapGatewayErr(c.logger, infra.KindBadPayload, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindBadPayload, "failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnreachable, "request to "+path+" failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return infra.NewRejectedErr(c.logger, resp.StatusCode, serverMessage(resp.Body), method+" "+path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return infra.WrapGatewayErr(c.logger, infra.KindBadPayload, "failed to decode response from "+path, err)
		}
	}
	return nil
}

// serverMessage pulls the optional {"message": ...} out of an error body.
func serverMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}
