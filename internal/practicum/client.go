package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/http2"

	"hwbot/internal/homework"
	logx "hwbot/pkg/logx"
)

// DefaultEndpoint is the homework statuses endpoint of the Practicum API.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

type Config struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
	HTTP2    bool
}

// Client performs timestamped fetches against the homework statuses endpoint.
type Client struct {
	cfg  Config
	http *http.Client
	log  logx.Logger
}

// NewHTTPClient builds the transport used by Client, with HTTP/2 configured
// when enabled.
func NewHTTPClient(cfg Config, log logx.Logger) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.HTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			log.Warn("failed to configure HTTP/2, falling back to HTTP/1.1", logx.Err(err))
		}
	}
	return &http.Client{Transport: transport, Timeout: cfg.Timeout}
}

// New returns a Client. If hc is nil, NewHTTPClient(cfg) is used.
func New(cfg Config, hc *http.Client, log logx.Logger) *Client {
	if log.IsZero() {
		log = logx.Nop()
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if hc == nil {
		hc = NewHTTPClient(cfg, log)
	}
	return &Client{cfg: cfg, http: hc, log: log}
}

// Fetch requests statuses changed since timestamp and returns the decoded
// JSON body. Numbers are decoded as json.Number.
func (c *Client) Fetch(ctx context.Context, timestamp int64) (any, error) {
	u, err := url.Parse(c.cfg.Endpoint)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(timestamp, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Authorization", "OAuth "+c.cfg.Token)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("api response",
		logx.Int("status", resp.StatusCode),
		logx.Int64("from_date", timestamp),
		logx.Duration("took", time.Since(started)),
	)

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &UnexpectedStatusCodeError{StatusCode: resp.StatusCode}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, &homework.MalformedResponseError{Reason: "invalid JSON body", Err: err}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &homework.MalformedResponseError{Reason: "trailing data after JSON body"}
	}
	return body, nil
}
