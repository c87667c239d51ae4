// Package webstore provides the Chrome Web Store Publish API client used by
// cwsctl. All calls are sequential and nothing is retried; a failed request
// surfaces as an error and the caller decides whether to abort the run.
package webstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

const (
	defaultBaseURL       = "https://www.googleapis.com/chromewebstore/v1.1"
	defaultUploadBaseURL = "https://www.googleapis.com/upload/chromewebstore/v1.1"
	defaultTokenURL      = "https://oauth2.googleapis.com/token"

	apiVersion = "2"
	userAgent  = "cwsctl/0.1"
)

// ClientConfig configures the web store client. Zero values fall back to the
// production endpoints; tests point the URLs at an httptest server.
type ClientConfig struct {
	HTTPClient    *http.Client
	Logger        *zerolog.Logger
	Credentials   Credentials
	BaseURL       string
	UploadBaseURL string
	TokenURL      string
}

// Client performs authenticated requests against the Web Store Publish API.
// The access token lives only in memory for the lifetime of the process.
type Client struct {
	http        *http.Client
	log         zerolog.Logger
	cfg         ClientConfig
	baseURL     *url.URL
	uploadURL   *url.URL
	tokenURL    string
	accessToken string
}

// NewClient constructs a Client with production defaults.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	upload := cfg.UploadBaseURL
	if upload == "" {
		upload = defaultUploadBaseURL
	}
	token := cfg.TokenURL
	if token == "" {
		token = defaultTokenURL
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		panic(fmt.Sprintf("invalid web store base URL %q: %v", base, err))
	}
	uploadURL, err := url.Parse(upload)
	if err != nil {
		panic(fmt.Sprintf("invalid web store upload URL %q: %v", upload, err))
	}

	return &Client{
		cfg:       cfg,
		http:      httpClient,
		log:       log,
		baseURL:   baseURL,
		uploadURL: uploadURL,
		tokenURL:  token,
	}
}

// RefreshToken exchanges the long-lived refresh token for a fresh access
// token. It fails if the token endpoint is unreachable or its response
// carries no access token.
func (c *Client) RefreshToken(ctx context.Context) error {
	conf := &oauth2.Config{
		ClientID:     c.cfg.Credentials.ClientID,
		ClientSecret: c.cfg.Credentials.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	src := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: c.cfg.Credentials.RefreshToken})

	tok, err := src.Token()
	if err != nil {
		return fmt.Errorf("refresh access token: %w", err)
	}
	if tok.AccessToken == "" {
		return errors.New("token endpoint response carried no access token")
	}

	c.accessToken = tok.AccessToken
	c.log.Debug().Msg("access token refreshed")
	return nil
}

// ensureToken refreshes lazily so every authorized call is preceded by a
// successful token exchange.
func (c *Client) ensureToken(ctx context.Context) error {
	if c.accessToken != "" {
		return nil
	}
	return c.RefreshToken(ctx)
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("x-goog-api-version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
}

// doJSON issues the request, decodes a 200 body into out and turns any other
// status into a typed API error.
func (c *Client) doJSON(req *http.Request, out any) error {
	c.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Msg("web store request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return fmt.Errorf("read response: %w", errors.Join(readErr, closeErr))
	}
	if closeErr != nil {
		return fmt.Errorf("close response: %w", closeErr)
	}

	c.log.Debug().Int("status", resp.StatusCode).Msg("web store response")

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp.StatusCode, resp.Status, body)
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// SetToken seeds the access token directly (used by tests).
func (c *Client) SetToken(token string) {
	c.accessToken = token
}

// Token returns the current in-memory access token.
func (c *Client) Token() string {
	return c.accessToken
}
