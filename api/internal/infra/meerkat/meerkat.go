// Client for the Meerkat address-watch API. Meerkat owns on-chain truth;
// we only create/cancel subscriptions and consume its webhooks.
package meerkat

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"watchdog/api/internal/config"
	"watchdog/api/internal/logger"

	"watchdog/pkg/utils"
)

type Subscription struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

// 4xx or malformed response. retrying cannot fix it
var ErrPermanent = fmt.Errorf("meerkat: permanent failure")

type Client struct {
	url     string
	apiKey  string
	retries int
	client  *http.Client
	l       logger.Logger
}

func NewClient(config *config.Config, l logger.Logger) *Client {
	return &Client{
		url:     strings.TrimRight(config.Meerkat.Url, "/"),
		apiKey:  config.Meerkat.ApiKey,
		retries: config.Meerkat.Retries,
		client:  &http.Client{Timeout: config.Meerkat.Timeout},
		l:       l,
	}
}

type resSubscription struct {
	Id string `json:"id"`
}

type resSubscriptionList struct {
	Data []Subscription `json:"data"`
}

func (c *Client) Subscribe(ctx context.Context, address string) (string, error) {
	body := utils.MustMarshal(map[string]string{"address": address})

	data, _, err := c.send(ctx, http.MethodPost, "/v1/subscriptions", body)
	if err != nil {
		return "", err
	}

	sub, err := utils.Unmarshal[resSubscription](data)
	if err != nil {
		return "", fmt.Errorf("%w: decode response: %s", ErrPermanent, err.Error())
	}
	if sub.Id == "" {
		return "", fmt.Errorf("%w: empty subscription id in response", ErrPermanent)
	}

	return sub.Id, nil
}

func (c *Client) Unsubscribe(ctx context.Context, subscriptionID string) error {
	_, status, err := c.send(ctx, http.MethodDelete, "/v1/subscriptions/"+subscriptionID, nil)
	if status == http.StatusNotFound { // already gone
		return nil
	}
	return err
}

// full list of live subscriptions, used by the orphan sweep
func (c *Client) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	data, _, err := c.send(ctx, http.MethodGet, "/v1/subscriptions", nil)
	if err != nil {
		return nil, err
	}

	list, err := utils.Unmarshal[resSubscriptionList](data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode response: %s", ErrPermanent, err.Error())
	}

	return list.Data, nil
}

const RECONNECT_FIRST_NUM = time.Second

// transient failures (transport errors, 5xx) are retried with exponential
// backoff up to the configured attempt limit. 4xx is surfaced as permanent.
func (c *Client) send(ctx context.Context, method, path string, body []byte) ([]byte, int, error) {
	var attempts int
	var lastErr error

sendReq:
	attempts++

	if attempts > c.retries {
		return nil, 0, fmt.Errorf("meerkat: max attempts exceeded: %w", lastErr)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		lastErr = err
		c.l.TemplMeerkatErr("request error: "+err.Error(), c.url+path, attempts, err)

		if ctx.Err() != nil { // caller gave up, timeout is never success
			return nil, 0, ctx.Err()
		}
		time.Sleep(RECONNECT_FIRST_NUM << attempts)
		goto sendReq
	}

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		lastErr = err
		time.Sleep(RECONNECT_FIRST_NUM << attempts)
		goto sendReq
	}

	if resp.StatusCode >= 500 {
		lastErr = fmt.Errorf("invalid status code: %d", resp.StatusCode)
		c.l.TemplMeerkatErr("server error", c.url+path, attempts, lastErr)
		time.Sleep(RECONNECT_FIRST_NUM << attempts)
		goto sendReq
	}

	if resp.StatusCode >= 400 {
		return data, resp.StatusCode, fmt.Errorf("%w: status code %d", ErrPermanent, resp.StatusCode)
	}

	return data, resp.StatusCode, nil
}
