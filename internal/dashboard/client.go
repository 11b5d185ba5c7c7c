package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
)

const (
	DefaultAPIURL  = "http://localhost:3001"
	defaultTimeout = 10 * time.Second
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	ErrMatchNotFound = errors.New("match not found")
)

// API is the read surface of the query service used by the views.
type API interface {
	Teams(ctx context.Context) ([]Team, error)
	PointsTable(ctx context.Context) ([]PointsTableEntry, error)
	Schedule(ctx context.Context) ([]Match, error)
	Upcoming(ctx context.Context, limit int) ([]Match, error)
	Live(ctx context.Context) (*LiveMatch, error)
	Match(ctx context.Context, id string) (Match, error)
}

// APIError is a non-2xx answer from the query service.
type APIError struct {
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("GET %s: status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("GET %s: status %d: %s", e.Path, e.Status, e.Message)
}

type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		http: &fasthttp.Client{
			Name:                "ipl-dashboard-cli",
			MaxIdleConnDuration: 90 * time.Second,
		},
		baseURL: baseURL,
		timeout: timeout,
	}
}

func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	var out []Team
	if err := c.getJSON(ctx, "/api/teams", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PointsTable(ctx context.Context) ([]PointsTableEntry, error) {
	var out []PointsTableEntry
	if err := c.getJSON(ctx, "/api/points-table", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Schedule(ctx context.Context) ([]Match, error) {
	var out []Match
	if err := c.getJSON(ctx, "/api/schedule", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Upcoming(ctx context.Context, limit int) ([]Match, error) {
	path := "/api/matches/upcoming"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var out []Match
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Live returns nil when the service reports no live match.
func (c *Client) Live(ctx context.Context) (*LiveMatch, error) {
	var out *LiveMatch
	if err := c.getJSON(ctx, "/api/matches/live", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Match(ctx context.Context, id string) (Match, error) {
	var out Match
	err := c.getJSON(ctx, "/api/matches/"+url.PathEscape(strings.TrimSpace(id)), &out)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == fasthttp.StatusNotFound {
		return Match{}, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	if err != nil {
		return Match{}, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return context.DeadlineExceeded
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	status := resp.StatusCode()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(resp.Body(), &body)
		return &APIError{Path: path, Status: status, Message: body.Error}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
