// Package catalog is the HTTP client for the portfolio catalog service.
//
// The client holds no mutable state. Every failure is returned as a value:
// a *TransportError, a *DecodeError, or ErrInvalidID.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// ListParams are the query parameters of GET /api/projects. Category is an
// opaque value: it is sent unmodified unless it is empty or a match-all
// sentinel label.
type ListParams struct {
	Category string
	Status   string
	// Limit is sent as-is when non-nil, including zero or negative values.
	Limit *int
}

// ProjectPage is the body of GET /api/projects.
type ProjectPage struct {
	Projects []domain.Project `json:"projects"`
	Total    int              `json:"total"`
}

// CategoryEntry is one element of GET /api/categories.
type CategoryEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryList is the body of GET /api/categories.
type CategoryList struct {
	Categories []CategoryEntry `json:"categories"`
}

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Message string `json:"message"`
}

// Client provides read access to the catalog service.
type Client interface {
	ListProjects(ctx context.Context, params ListParams) (ProjectPage, error)
	GetProject(ctx context.Context, id int) (domain.Project, error)
	ListCategories(ctx context.Context, l locale.Locale) (CategoryList, error)
	Health(ctx context.Context) (HealthStatus, error)
}

type httpClient struct {
	baseURL  string
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client for the service at baseURL. The base URL is
// not validated here; a malformed one surfaces as a TransportError on the
// first request.
func NewHTTPClient(baseURL string, timeout time.Duration, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) ListProjects(ctx context.Context, params ListParams) (ProjectPage, error) {
	q := url.Values{}
	if params.Category != "" && !domain.IsAllLabel(params.Category) {
		q.Set("category", params.Category)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Limit != nil {
		q.Set("limit", strconv.Itoa(*params.Limit))
	}

	var page ProjectPage
	err := c.get(ctx, "/api/projects", q, &page, func() error {
		for i := range page.Projects {
			if err := page.Projects[i].Validate(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ProjectPage{}, err
	}
	if page.Projects == nil {
		page.Projects = []domain.Project{}
	}
	return page, nil
}

func (c *httpClient) GetProject(ctx context.Context, id int) (domain.Project, error) {
	if id <= 0 {
		return domain.Project{}, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	var p domain.Project
	err := c.get(ctx, "/api/projects/"+strconv.Itoa(id), nil, &p, p.Validate)
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func (c *httpClient) ListCategories(ctx context.Context, l locale.Locale) (CategoryList, error) {
	q := url.Values{}
	if l != "" {
		q.Set("locale", l.String())
	}
	var list CategoryList
	if err := c.get(ctx, "/api/categories", q, &list, nil); err != nil {
		return CategoryList{}, err
	}
	return list, nil
}

func (c *httpClient) Health(ctx context.Context) (HealthStatus, error) {
	var h HealthStatus
	if err := c.get(ctx, "/api/health", nil, &h, nil); err != nil {
		return HealthStatus{}, err
	}
	return h, nil
}

// get performs a GET, decodes the JSON body into out, and runs validate on
// the decoded value. Every outcome is reported to the observer.
func (c *httpClient) get(ctx context.Context, endpoint string, q url.Values, out any, validate func() error) error {
	start := time.Now()
	requestID := uuid.NewString()
	status, err := c.do(ctx, endpoint, q, requestID, out)
	if err == nil && validate != nil {
		if verr := validate(); verr != nil {
			err = &DecodeError{Err: verr}
		}
	}

	c.observer.OnRequestComplete(ctx, RequestEvent{
		Method:     http.MethodGet,
		Endpoint:   endpoint,
		RequestID:  requestID,
		StatusCode: status,
		Latency:    time.Since(start),
		Success:    err == nil,
		ErrorCode:  errorCode(err),
	})
	return err
}

func (c *httpClient) do(ctx context.Context, endpoint string, q url.Values, requestID string, out any) (int, error) {
	target := c.baseURL + endpoint
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, &TransportError{Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, &TransportError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, &TransportError{Err: fmt.Errorf("reading response: %w", err)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, &DecodeError{Err: err}
	}
	return resp.StatusCode, nil
}
