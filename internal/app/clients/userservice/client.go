// Package userservice is the HTTP client for the external user service,
// which owns directors, auxiliaries and every other person record.
package userservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/institutionhub/internal/app/system/apperr"
	"github.com/dalemusser/institutionhub/internal/app/system/metrics"
	"github.com/dalemusser/institutionhub/internal/domain/models"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// CorrelationHeader carries a per-request id so calls can be matched with
// the user service's own logs.
const CorrelationHeader = "X-Correlation-ID"

// maxErrorBody bounds how much of a failed response is logged.
const maxErrorBody = 4 << 10

// Client calls the user service. It never retries.
type Client struct {
	baseURL string
	hc      *http.Client
	log     *zap.Logger
}

// New returns a client rooted at baseURL (e.g. http://users:8081/api/v1/users).
// timeout bounds each request; zero means no client-side limit.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: logger.With(zap.String("component", "userservice")),
	}
}

// CreateUser creates a person record. Unlike the other operations a 404 is
// an error here.
func (c *Client) CreateUser(ctx context.Context, req UserRequest) (*models.RemoteUser, error) {
	c.log.Info("creating user", zap.String("email", req.Email), zap.String("role", req.Role))
	return c.do(ctx, "create", http.MethodPost, "", req, false)
}

// GetUser returns the user, or nil when the service answers 404.
func (c *Client) GetUser(ctx context.Context, id string) (*models.RemoteUser, error) {
	return c.do(ctx, "get", http.MethodGet, "/"+url.PathEscape(id), nil, true)
}

// UpdateUser replaces the user's fields. nil, nil on 404.
func (c *Client) UpdateUser(ctx context.Context, id string, req UserRequest) (*models.RemoteUser, error) {
	c.log.Info("updating user", zap.String("user_id", id))
	return c.do(ctx, "update", http.MethodPut, "/"+url.PathEscape(id), req, true)
}

// DeleteUser soft-deletes the user. nil, nil on 404.
func (c *Client) DeleteUser(ctx context.Context, id string) (*models.RemoteUser, error) {
	c.log.Info("deleting user", zap.String("user_id", id))
	return c.do(ctx, "delete", http.MethodDelete, "/"+url.PathEscape(id), nil, true)
}

// RestoreUser reverses a soft delete. nil, nil on 404.
func (c *Client) RestoreUser(ctx context.Context, id string) (*models.RemoteUser, error) {
	c.log.Info("restoring user", zap.String("user_id", id))
	return c.do(ctx, "restore", http.MethodPatch, "/"+url.PathEscape(id)+"/restore", nil, true)
}

func (c *Client) do(ctx context.Context, op, method, path string, body any, notFoundEmpty bool) (*models.RemoteUser, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, apperr.Remote("encode "+op+" request", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, apperr.Remote("build "+op+" request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	cid := uuid.NewString()
	req.Header.Set(CorrelationHeader, cid)
	log := c.log.With(zap.String("op", op), zap.String("correlation_id", cid))

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		metrics.RecordRemoteCall(op, 0, false, time.Since(start))
		log.Error("user service request failed", zap.Error(err))
		return nil, apperr.Remote("user service "+op+" failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && notFoundEmpty {
		metrics.RecordRemoteCall(op, resp.StatusCode, true, time.Since(start))
		log.Warn("user not found", zap.String("path", path))
		return nil, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordRemoteCall(op, resp.StatusCode, false, time.Since(start))
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Error("user service returned error status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet))
		return nil, apperr.Remote(fmt.Sprintf("user service %s: HTTP %d", op, resp.StatusCode), nil)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.RecordRemoteCall(op, resp.StatusCode, false, time.Since(start))
		log.Error("decode user service response", zap.Error(err))
		return nil, apperr.Remote("user service "+op+": malformed response", err)
	}
	if !env.Success || env.Data == nil {
		metrics.RecordRemoteCall(op, resp.StatusCode, false, time.Since(start))
		log.Error("user service reported failure", zap.String("message", env.Message))
		return nil, apperr.Remote("user service "+op+": "+env.Message, nil)
	}

	metrics.RecordRemoteCall(op, resp.StatusCode, true, time.Since(start))
	return env.Data, nil
}
