// Package client talks to the upstream ticketing service: the station
// directory payload and the left-ticket query endpoint. The query endpoint
// refuses sessions without cookies, so the client warms up once against
// the session URL before the first query.
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	resty "gopkg.in/resty.v1"

	"github.com/kirorab/12306-skill/ratelimit"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

type Config struct {
	DirectoryURL string
	QueryURL     string
	SessionURL   string
	Timeout      time.Duration
	UserAgent    string
}

type Client struct {
	http    *resty.Client
	cfg     Config
	limiter *ratelimit.Limiter

	warmOnce sync.Once
	warmErr  error
}

func New(cfg Config, limiter *ratelimit.Limiter) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	r := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent)
	if jar, err := cookiejar.New(nil); err == nil {
		r.SetCookieJar(jar)
	}
	return &Client{http: r, cfg: cfg, limiter: limiter}
}

// FetchDirectory retrieves the raw station directory payload.
func (c *Client) FetchDirectory(ctx context.Context) (string, error) {
	if err := c.limiter.Wait(ctx, "directory"); err != nil {
		return "", err
	}
	resp, err := c.http.R().SetContext(ctx).Get(c.cfg.DirectoryURL)
	if err != nil {
		return "", &FetchError{URL: c.cfg.DirectoryURL, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return "", &FetchError{URL: c.cfg.DirectoryURL, Status: resp.StatusCode()}
	}
	return resp.String(), nil
}

// queryEnvelope is the JSON shape the query endpoint must return. Pointers
// distinguish an absent data.result (hard failure) from a present empty
// list (valid zero-ticket response).
type queryEnvelope struct {
	Data *struct {
		Result *[]string `json:"result"`
	} `json:"data"`
}

// QueryTickets fetches the raw pipe-delimited ticket records for one
// origin/destination/date triple. Any response not carrying data.result is
// a hard query failure.
func (c *Client) QueryTickets(ctx context.Context, fromCode, toCode, date string) ([]string, error) {
	if err := c.ensureSession(ctx); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, "query"); err != nil {
		return nil, err
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"leftTicketDTO.train_date":   date,
			"leftTicketDTO.from_station": fromCode,
			"leftTicketDTO.to_station":   toCode,
			"purpose_codes":              "ADULT",
		}).
		Get(c.cfg.QueryURL)
	if err != nil {
		return nil, &FetchError{URL: c.cfg.QueryURL, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &FetchError{URL: c.cfg.QueryURL, Status: resp.StatusCode()}
	}
	var env queryEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, &FetchError{URL: c.cfg.QueryURL, Err: err}
	}
	if env.Data == nil || env.Data.Result == nil {
		return nil, &FetchError{URL: c.cfg.QueryURL, Err: errMissingResult}
	}
	return *env.Data.Result, nil
}

var errMissingResult = jsonShapeError("response carries no data.result")

type jsonShapeError string

func (e jsonShapeError) Error() string { return string(e) }

// ensureSession visits the session URL once to acquire the cookies the
// query endpoint requires.
func (c *Client) ensureSession(ctx context.Context) error {
	if c.cfg.SessionURL == "" {
		return nil
	}
	c.warmOnce.Do(func() {
		resp, err := c.http.R().SetContext(ctx).Get(c.cfg.SessionURL)
		if err != nil {
			c.warmErr = &FetchError{URL: c.cfg.SessionURL, Err: err}
			return
		}
		if resp.StatusCode() != http.StatusOK {
			c.warmErr = &FetchError{URL: c.cfg.SessionURL, Status: resp.StatusCode()}
		}
	})
	return c.warmErr
}
