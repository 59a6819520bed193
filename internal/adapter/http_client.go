package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures the REST remote client.
type HTTPClientConfig struct {
	// BaseURL is the root of the remote REST API.
	BaseURL string
	// APIKey is the project api key sent with every request.
	APIKey string
	// AccessToken is the bearer token identifying the user session.
	AccessToken string
	// Timeout bounds every remote call; a timed-out call is an ordinary
	// push/pull failure to the sync engine.
	Timeout time.Duration
}

type restRemoteClient struct {
	client *resty.Client
	apiKey string

	mu    sync.RWMutex
	token string
}

// NewRESTRemoteClient constructs a [RemoteClient] speaking the backend's
// PostgREST-style API: POST /rest/v1/{table}?on_conflict=id for upserts and
// GET /rest/v1/{table} with order/limit/eq filters for selects.
func NewRESTRemoteClient(cfg HTTPClientConfig) RemoteClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:54321"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	c := &restRemoteClient{client: cli, apiKey: cfg.APIKey}
	c.SetToken(cfg.AccessToken)

	return c
}

// SetToken stores the bearer token attached to all subsequent requests.
func (c *restRemoteClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the currently stored bearer token.
func (c *restRemoteClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *restRemoteClient) Upsert(ctx context.Context, table string, record any) error {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "resolution=merge-duplicates,return=minimal").
		SetQueryParam("on_conflict", "id").
		SetBody(record).
		Post("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("upsert request (table=%s): %w", table, err)
	}

	return mapHTTPError(resp)
}

func (c *restRemoteClient) Select(ctx context.Context, table string, q SelectQuery) ([]json.RawMessage, error) {
	req := c.authedRequest(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", "updated_at.desc")
	if q.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(q.Limit))
	}
	if q.UserID != "" {
		req.SetQueryParam("user_id", "eq."+q.UserID)
	}

	resp, err := req.Get("/rest/v1/" + table)
	if err != nil {
		return nil, fmt.Errorf("select request (table=%s): %w", table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []json.RawMessage
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode select response (table=%s): %w", table, err)
	}

	return rows, nil
}

func (c *restRemoteClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if c.apiKey != "" {
		req.SetHeader("apikey", c.apiKey)
	}
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode() == http.StatusConflict {
		return ErrConflict
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
