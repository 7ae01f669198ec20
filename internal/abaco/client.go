// Package abaco implements the Ábaco Finance REST API client.
package abaco

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/TiagoK-777/hass-abaco-finance/internal/model"
)

const (
	// readTimeout bounds GET calls; listing endpoints can be slow.
	readTimeout = 60 * time.Second
	// writeTimeout bounds POST calls.
	writeTimeout = 10 * time.Second
)

// Client talks to the Ábaco Finance API. The HTTP client is borrowed from
// the caller and must be safe for concurrent use; Client itself is immutable
// after New.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *logrus.Logger
}

// New creates a Client for the given base URL and token. A trailing slash
// on baseURL is stripped. If httpClient is nil, http.DefaultClient is used.
func New(baseURL, token string, httpClient *http.Client, log *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
		log:     log,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// getJSON issues an authenticated GET and decodes the JSON body.
// 401/403 become *AuthError, timeouts and transport failures become
// *ConnectionError, and any other non-2xx status becomes *StatusError.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnectionError{Message: "error connecting to API", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Message: "error reading API response", Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &AuthError{StatusCode: resp.StatusCode, Message: "invalid API token"}
	case resp.StatusCode == http.StatusForbidden:
		return nil, &AuthError{StatusCode: resp.StatusCode, Message: "access forbidden"}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", path, err)
	}

	c.log.Debugf("GET %s: %d bytes", path, len(body))
	return decoded, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-API-Token", c.token)
	req.Header.Set("Content-Type", "application/json")
}

// fetchFuncs dispatches endpoint identifiers to their accessors.
var fetchFuncs = map[model.Endpoint]func(*Client, context.Context) (any, error){
	model.EndpointProfile:      (*Client).Profile,
	model.EndpointTransactions: (*Client).Transactions,
	model.EndpointAccounts:     (*Client).Accounts,
	model.EndpointCreditCards:  (*Client).CreditCards,
	model.EndpointInvestments:  (*Client).Investments,
	model.EndpointPatrimony:    (*Client).Patrimony,
}

// FetchEndpoint fetches the named endpoint via the dispatch table.
func (c *Client) FetchEndpoint(ctx context.Context, endpoint model.Endpoint) (any, error) {
	fetch, ok := fetchFuncs[endpoint]
	if !ok {
		return nil, fmt.Errorf("unknown endpoint %q", endpoint)
	}
	return fetch(c, ctx)
}

// Profile fetches the user profile.
func (c *Client) Profile(ctx context.Context) (any, error) {
	return c.getJSON(ctx, model.EndpointProfile.Path(), nil)
}

// Transactions fetches the first page of transactions with no filters.
// Use FetchTransactions for filtered or multi-page reads.
func (c *Client) Transactions(ctx context.Context) (any, error) {
	return c.getJSON(ctx, model.EndpointTransactions.Path(), nil)
}

// Accounts fetches the accounts listing.
func (c *Client) Accounts(ctx context.Context) (any, error) {
	return c.getJSON(ctx, model.EndpointAccounts.Path(), nil)
}

// CreditCards fetches the credit cards listing.
func (c *Client) CreditCards(ctx context.Context) (any, error) {
	return c.getJSON(ctx, model.EndpointCreditCards.Path(), nil)
}

// Investments fetches the investments listing.
func (c *Client) Investments(ctx context.Context) (any, error) {
	return c.getJSON(ctx, model.EndpointInvestments.Path(), nil)
}

// Patrimony fetches the consolidated net worth items.
func (c *Client) Patrimony(ctx context.Context) (any, error) {
	return c.getJSON(ctx, model.EndpointPatrimony.Path(), nil)
}

// TestConnection verifies the URL and token by fetching the profile.
// AuthError and ConnectionError propagate unchanged.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.Profile(ctx)
	return err
}
