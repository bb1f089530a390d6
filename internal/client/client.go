package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goliatone/go-sitenav/content"
	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/internal/validation"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/google/uuid"
)

const (
	apiGroup         = "api"
	routeTree        = "tree"
	routeContent     = "content"
	routeViews       = "views"
	routeApplication = "application"

	defaultTimeout = 15 * time.Second
)

// StatusError reports a non-success response from the collaborator.
type StatusError struct {
	Route  string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("client: %s returned status %d", e.Route, e.Status)
}

// Options configures the collaborator client.
type Options struct {
	// BaseURL is the collaborator root, e.g. "https://api.example.uz".
	BaseURL string
	// Token, when set, is sent as a bearer Authorization header.
	Token string
	// Timeout bounds each request. Zero uses the default.
	Timeout time.Duration
	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
	Logger     interfaces.Logger
}

// Client is the HTTP client for the collaborator that owns the page tree and
// the content collections. It backs the tree repository, the content store,
// and the application submitter when the module runs without a local
// database.
type Client struct {
	manager *urlkit.RouteManager
	http    *http.Client
	token   string
	logger  interfaces.Logger
}

// New builds a client over the collaborator base URL.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("client: base URL is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    apiGroup,
				BaseURL: opts.BaseURL,
				Paths: map[string]string{
					routeTree:        "/pages/tree",
					routeContent:     "/content/:type",
					routeViews:       "/news/:id/views",
					routeApplication: "/application",
				},
			},
		},
	})

	return &Client{
		manager: manager,
		http:    httpClient,
		token:   opts.Token,
		logger:  logger,
	}, nil
}

// Tree fetches and validates the full page tree. The language rides along as
// a query parameter so the collaborator can prune unpublished translations.
func (c *Client) Tree(ctx context.Context, language string) ([]*pages.PageNode, error) {
	url, err := c.buildURL(routeTree, nil, map[string]string{"language": language})
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, routeTree, url)
	if err != nil {
		return nil, fmt.Errorf("fetch page tree: %w", err)
	}

	if err := validation.ValidateTreePayload(body); err != nil {
		c.logger.Error("client.tree.invalid_payload", "error", err)
		return nil, fmt.Errorf("page tree payload: %w", err)
	}

	var dtos []nodeDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("decode page tree: %w", err)
	}
	return decodeNodes(dtos, nil), nil
}

// List fetches the records of one type scoped to a node key.
func (c *Client) List(ctx context.Context, typ content.Type, key, language string) ([]content.Record, error) {
	url, err := c.buildURL(routeContent,
		map[string]any{"type": string(typ)},
		map[string]string{"key": key, "language": language},
	)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, routeContent, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s content: %w", typ, err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode %s content: %w", typ, err)
	}
	return decodeRecords(typ, key, raw), nil
}

// IncrementNewsViews bumps the view counter upstream. A 404 maps to the
// typed not-found error so callers can distinguish a deleted article from a
// transport failure.
func (c *Client) IncrementNewsViews(ctx context.Context, id uuid.UUID) error {
	url, err := c.buildURL(routeViews, map[string]any{"id": id.String()}, nil)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, nil)
	if err != nil {
		return err
	}
	_, err = c.do(routeViews, req)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
		return &content.RecordNotFoundError{Type: content.TypeNews, ID: id}
	}
	return err
}

// SubmitApplication forwards a contact-form submission.
func (c *Client) SubmitApplication(ctx context.Context, app content.Application) error {
	url, err := c.buildURL(routeApplication, nil, nil)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("encode application: %w", err)
	}
	return c.post(ctx, routeApplication, url, payload)
}

func (c *Client) buildURL(route string, params map[string]any, query map[string]string) (string, error) {
	group, err := c.group()
	if err != nil {
		return "", err
	}
	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	for key, val := range params {
		builder.WithParam(key, val)
	}
	for key, val := range query {
		if val == "" {
			continue
		}
		builder.WithQuery(key, val)
	}
	return builder.Build()
}

func (c *Client) get(ctx context.Context, route, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.do(route, req)
}

func (c *Client) post(ctx context.Context, route, url string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	_, err = c.do(route, req)
	return err
}

func (c *Client) do(route string, req *http.Request) ([]byte, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("client.request.failed", "route", route, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("client.request.status", "route", route, "status", resp.StatusCode)
		return nil, &StatusError{Route: route, Status: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) group() (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("client: route group %q not found", apiGroup)
		}
	}()
	group = c.manager.Group(apiGroup)
	return group, err
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, errors.New("client: route group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("client: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
