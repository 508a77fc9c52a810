package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dataview/core/logger"
)

// Client issues JSON requests against the listing API.
// Create with New; the zero value is not usable.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The configured timeout
// is left untouched, so pass a fully configured client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for request debug logging.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a client for the given configuration.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login authenticates the given credentials and returns the bearer token
// together with the principal record. Credential fields returned by the
// server (access and refresh tokens) are stripped from the principal.
func (c *Client) Login(ctx context.Context, identifier, secret string) (AuthSession, error) {
	body := map[string]string{"username": identifier, "password": secret}

	var raw map[string]any
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &raw); err != nil {
		return AuthSession{}, err
	}

	token, _ := raw["accessToken"].(string)
	if token == "" {
		return AuthSession{}, fmt.Errorf("%w: missing access token", ErrDecodeResponse)
	}
	delete(raw, "accessToken")
	delete(raw, "refreshToken")

	return AuthSession{Token: token, Principal: raw}, nil
}

// ListUsers returns one page of the user collection.
func (c *Client) ListUsers(ctx context.Context, limit, skip int) (UserPage, error) {
	var page UserPage
	err := c.do(ctx, http.MethodGet, "/users", pageQuery(limit, skip), nil, &page)
	return page, err
}

// SearchUsers returns users matching the query. The server treats search
// results as a single unpaginated page.
func (c *Client) SearchUsers(ctx context.Context, query string) (UserPage, error) {
	var page UserPage
	err := c.do(ctx, http.MethodGet, "/users/search", url.Values{"q": {query}}, nil, &page)
	return page, err
}

// GetUser returns the full record of a single user.
func (c *Client) GetUser(ctx context.Context, id int) (User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/users/"+strconv.Itoa(id), nil, nil, &user)
	return user, err
}

// ListProducts returns one page of the product collection.
func (c *Client) ListProducts(ctx context.Context, limit, skip int) (ProductPage, error) {
	var page ProductPage
	err := c.do(ctx, http.MethodGet, "/products", pageQuery(limit, skip), nil, &page)
	return page, err
}

// SearchProducts returns products matching the query.
func (c *Client) SearchProducts(ctx context.Context, query string) (ProductPage, error) {
	var page ProductPage
	err := c.do(ctx, http.MethodGet, "/products/search", url.Values{"q": {query}}, nil, &page)
	return page, err
}

// GetProduct returns the full record of a single product.
func (c *Client) GetProduct(ctx context.Context, id int) (Product, error) {
	var product Product
	err := c.do(ctx, http.MethodGet, "/products/"+strconv.Itoa(id), nil, nil, &product)
	return product, err
}

// Categories returns the product category reference list.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var cats []Category
	err := c.do(ctx, http.MethodGet, "/products/categories", nil, nil, &cats)
	return cats, err
}

// ListProductsByCategory returns one page of products scoped to a category.
func (c *Client) ListProductsByCategory(ctx context.Context, slug string, limit, skip int) (ProductPage, error) {
	var page ProductPage
	err := c.do(ctx, http.MethodGet, "/products/category/"+url.PathEscape(slug), pageQuery(limit, skip), nil, &page)
	return page, err
}

func pageQuery(limit, skip int) url.Values {
	return url.Values{
		"limit": {strconv.Itoa(limit)},
		"skip":  {strconv.Itoa(skip)},
	}
}

// do issues one request and decodes the response into out.
// Non-2xx responses become *Error with the server-provided message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.baseURL == "" {
		return ErrEmptyBaseURL
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Join(ErrRequestFailed, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "api request failed",
			logger.RequestID(requestID),
			logger.Method(method),
			logger.Path(path),
			logger.Error(err),
		)
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "api request",
		logger.RequestID(requestID),
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.Elapsed(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}
	return nil
}
