package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bracketctl/internal/bracket"
	"bracketctl/internal/config"
	"bracketctl/pkg/logging"
)

const (
	subsystem        = "Client"
	maxErrorBodySize = 512
	defaultUserAgent = "bracketctl"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the bracket service.
type Config struct {
	BaseURL      string
	Path         string
	MadnessParam string
	// Timeout bounds a single request. Zero means no client-side timeout.
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// ConfigFromService builds a client Config from the loaded service settings.
func ConfigFromService(svc config.ServiceConfig) Config {
	return Config{
		BaseURL:      svc.Endpoint,
		Path:         svc.Path,
		MadnessParam: svc.MadnessParam,
		Timeout:      svc.Timeout,
	}
}

// Client fetches brackets from the generation service.
type Client struct {
	baseURL      string
	path         string
	madnessParam string
	timeout      time.Duration
	userAgent    string
	httpClient   httpDoer
}

// New constructs a client with the provided configuration.
func New(cfg Config) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		path:         normalizePath(cfg.Path),
		madnessParam: cfg.MadnessParam,
		timeout:      cfg.Timeout,
		userAgent:    cfg.UserAgent,
	}
	if c.madnessParam == "" {
		c.madnessParam = config.DefaultMadnessParam
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if cfg.HTTPClient != nil {
		c.httpClient = cfg.HTTPClient
	} else {
		c.httpClient = &http.Client{}
	}
	return c
}

// URL returns the request URL for the given madness level.
func (c *Client) URL(madness int) string {
	u := c.baseURL + c.path
	q := url.Values{}
	q.Set(c.madnessParam, strconv.Itoa(madness))
	return u + "?" + q.Encode()
}

// Fetch requests one freshly generated bracket. All returned errors match
// ErrGenerateFailed; non-2xx responses additionally unwrap to *StatusError.
func (c *Client) Fetch(ctx context.Context, madness int) (*bracket.Result, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.URL(madness)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, wrap(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	logging.Debug(subsystem, "GET %s", target)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, wrap(&StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		})
	}

	result, err := bracket.Decode(resp.Body)
	if err != nil {
		return nil, wrap(err)
	}

	logging.Debug(subsystem, "bracket received in %s (madness %d)", time.Since(start).Round(time.Millisecond), madness)
	for _, finding := range bracket.Validate(result) {
		logging.Debug(subsystem, "bracket shape: %s", finding)
	}
	return result, nil
}

func normalizePath(p string) string {
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}
