// Package demoapi reads the public REST resources shown on the useEffect
// page.
package demoapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/hooks.handbook/internal/platform/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultBaseURL is the JSONPlaceholder API root.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// DefaultLimit caps how many items each resource returns.
const DefaultLimit = 10

// maxBodyBytes bounds one response body.
const maxBodyBytes = 1 << 20

// Resource names one demo collection.
type Resource string

// Resources served by the demo API.
const (
	ResourceUsers    Resource = "users"
	ResourcePosts    Resource = "posts"
	ResourceComments Resource = "comments"
)

// Company is the employer attached to a user.
type Company struct {
	Name string `json:"name"`
}

// User is one demo user.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Company  Company `json:"company"`
}

// Post is one demo post.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Comment is one demo comment.
type Comment struct {
	ID     int    `json:"id"`
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Resource   Resource
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("demo api %s: unexpected status %d", e.Resource, e.StatusCode)
}

// Client fetches demo resources over HTTP.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limit   int
}

// NewClient builds a client for baseURL. A nil httpClient gets a default
// client; either way outbound calls are traced.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse demo api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("demo api base url %q: scheme must be http or https", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("demo api base url %q: host is required", baseURL)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")

	client := &http.Client{}
	if httpClient != nil {
		copied := *httpClient
		client = &copied
	}
	transport := client.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	client.Transport = otelhttp.NewTransport(transport)

	return &Client{baseURL: parsed, http: client, limit: DefaultLimit}, nil
}

// Users returns the first users.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, ResourceUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Posts returns the first posts.
func (c *Client) Posts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.get(ctx, ResourcePosts, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Comments returns the first comments.
func (c *Client) Comments(ctx context.Context) ([]Comment, error) {
	var comments []Comment
	if err := c.get(ctx, ResourceComments, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) get(ctx context.Context, resource Resource, out any) error {
	if c == nil {
		return errors.New("demo api client is not configured")
	}
	endpoint := *c.baseURL
	endpoint.Path = c.baseURL.Path + "/" + string(resource)
	endpoint.RawQuery = url.Values{"_limit": {strconv.Itoa(c.limit)}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDemoUnavailable, "fetch "+string(resource), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return apperrors.Wrap(apperrors.CodeDemoUnavailable, "fetch "+string(resource), &StatusError{Resource: resource, StatusCode: resp.StatusCode})
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.CodeDemoMalformed, "decode "+string(resource), err)
	}
	return nil
}
