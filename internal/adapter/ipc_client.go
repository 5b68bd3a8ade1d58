package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/session"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/go-resty/resty/v2"
)

type ipcClient struct {
	client       *resty.Client
	handle       session.Handle
	probeTimeout time.Duration
}

// NewIPCClient builds a client speaking HTTP over the daemon's unix socket.
// The base URL host is a placeholder; every connection is dialed to the
// socket path regardless of it.
func NewIPCClient(cfg config.Daemon) IPCClient {
	transport := &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", cfg.SocketPath)
		},
	}

	cli := resty.New().
		SetBaseURL("http://envkeeper").
		SetTimeout(cfg.RequestTimeout).
		SetTransport(transport)

	return &ipcClient{
		client:       cli,
		handle:       session.Handle{SocketPath: cfg.SocketPath, PIDFile: cfg.PIDFile},
		probeTimeout: cfg.ProbeTimeout,
	}
}

// Reachable probes the socket within the configured timeout. Only a
// successful connect counts; a hung or absent daemon reports false and the
// caller falls back to direct mode.
func (c *ipcClient) Reachable() bool {
	return c.handle.Probe(c.probeTimeout)
}

func (c *ipcClient) Add(ctx context.Context, key, value string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AddSecretRequest{Key: key, Value: value}).
		Post("/api/secrets")
	if err != nil {
		return "", fmt.Errorf("add request: %w", err)
	}
	if err = mapIPCError(resp); err != nil {
		return "", err
	}

	return messageOf(resp)
}

// Remove addresses the key via a query parameter so that names containing
// URL metacharacters survive the wire intact.
func (c *ipcClient) Remove(ctx context.Context, key string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", key).
		Delete("/api/secrets")
	if err != nil {
		return "", fmt.Errorf("remove request: %w", err)
	}
	if err = mapIPCError(resp); err != nil {
		return "", err
	}

	return messageOf(resp)
}

func (c *ipcClient) Get(ctx context.Context, key string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", key).
		Get("/api/secrets/value")
	if err != nil {
		return "", fmt.Errorf("get request: %w", err)
	}
	if err = mapIPCError(resp); err != nil {
		return "", err
	}

	var out models.SecretResponse
	if err = decodeBody(resp, &out); err != nil {
		return "", fmt.Errorf("get response: %w", err)
	}
	return out.Value, nil
}

func (c *ipcClient) List(ctx context.Context) ([]string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/secrets/keys")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapIPCError(resp); err != nil {
		return nil, err
	}

	var out models.KeysResponse
	if err = decodeBody(resp, &out); err != nil {
		return nil, fmt.Errorf("list response: %w", err)
	}
	return out.Keys, nil
}

func (c *ipcClient) Snapshot(ctx context.Context) ([]models.Secret, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/secrets")
	if err != nil {
		return nil, fmt.Errorf("snapshot request: %w", err)
	}
	if err = mapIPCError(resp); err != nil {
		return nil, err
	}

	var out models.SecretsResponse
	if err = decodeBody(resp, &out); err != nil {
		return nil, fmt.Errorf("snapshot response: %w", err)
	}
	return out.Secrets, nil
}

func (c *ipcClient) Status(ctx context.Context) (models.StatusResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/status")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapIPCError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	var out models.StatusResponse
	if err = decodeBody(resp, &out); err != nil {
		return models.StatusResponse{}, fmt.Errorf("status response: %w", err)
	}
	return out, nil
}

func (c *ipcClient) Stop(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Post("/api/stop")
	if err != nil {
		return "", fmt.Errorf("stop request: %w", err)
	}
	if err = mapIPCError(resp); err != nil {
		return "", err
	}

	return messageOf(resp)
}

func decodeBody(resp *resty.Response, v any) error {
	return json.Unmarshal(resp.Body(), v)
}

func messageOf(resp *resty.Response) (string, error) {
	var out models.MessageResponse
	if err := decodeBody(resp, &out); err != nil {
		return "", fmt.Errorf("decode message: %w", err)
	}
	return out.Message, nil
}
