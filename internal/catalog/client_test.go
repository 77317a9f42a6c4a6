package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []RequestEvent
}

func (o *recordingObserver) OnRequestComplete(_ context.Context, e RequestEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() RequestEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func testProject(id int, category domain.Category) domain.Project {
	return domain.Project{
		ID:          id,
		Title:       "FinTech App",
		Category:    category,
		Status:      domain.StatusCompleted,
		Year:        "2023",
		Image:       "https://example.com/cover.jpg",
		Description: "Банковское приложение",
		Images:      []string{},
	}
}

func newTestClient(t *testing.T, h http.HandlerFunc) (Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	obs := &recordingObserver{}
	return NewHTTPClient(srv.URL+"/", 2*time.Second, obs), obs
}

func TestListProjects_EncodesQuery(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/projects", r.URL.Path)
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(ProjectPage{Projects: []domain.Project{testProject(1, domain.CategoryDesign)}, Total: 1})
	})

	limit := 0
	page, err := client.ListProjects(context.Background(), ListParams{
		Category: "Дизайн",
		Status:   "Завершен",
		Limit:    &limit,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Projects, 1)
	assert.Equal(t, domain.CategoryDesign, page.Projects[0].Category)

	assert.Contains(t, gotQuery, "category=%D0%94%D0%B8%D0%B7%D0%B0%D0%B9%D0%BD")
	assert.Contains(t, gotQuery, "limit=0", "zero limit is passed through")
	assert.Contains(t, gotQuery, "status=")
}

func TestListProjects_OmitsSentinelCategory(t *testing.T) {
	for _, sentinel := range []string{"", "Все", "All"} {
		var gotQuery string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"projects":[],"total":0}`))
		})

		page, err := client.ListProjects(context.Background(), ListParams{Category: sentinel})
		require.NoError(t, err)
		assert.Empty(t, gotQuery, "sentinel %q", sentinel)
		assert.Equal(t, 0, page.Total)
		assert.NotNil(t, page.Projects)
	}
}

func TestListProjects_PassesUnknownCategoryThrough(t *testing.T) {
	var got string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("category")
		w.Write([]byte(`{"projects":[],"total":0}`))
	})

	_, err := client.ListProjects(context.Background(), ListParams{Category: "Photography & Film"})
	require.NoError(t, err)
	assert.Equal(t, "Photography & Film", got)
}

func TestListProjects_NegativeLimitNotClamped(t *testing.T) {
	var got string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("limit")
		w.Write([]byte(`{"projects":[],"total":0}`))
	})

	limit := -3
	_, err := client.ListProjects(context.Background(), ListParams{Limit: &limit})
	require.NoError(t, err)
	assert.Equal(t, "-3", got)
}

func TestListProjects_UnknownCategoryInBodyIsDecodeError(t *testing.T) {
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"projects":[{"id":1,"title":"x","category":"Painting","status":"Завершен"}],"total":1}`))
	})

	_, err := client.ListProjects(context.Background(), ListParams{})
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	assert.Equal(t, "DECODE", obs.last().ErrorCode)
}

func TestGetProject_Success(t *testing.T) {
	want := testProject(42, domain.CategoryOther)
	var requestID string
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects/42", r.URL.Path)
		requestID = r.Header.Get(RequestIDHeader)
		json.NewEncoder(w).Encode(want)
	})

	got, err := client.GetProject(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NotEmpty(t, requestID)

	ev := obs.last()
	assert.True(t, ev.Success)
	assert.Equal(t, http.StatusOK, ev.StatusCode)
	assert.Equal(t, requestID, ev.RequestID)
}

func TestGetProject_NotFound(t *testing.T) {
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Project not found"}`))
	})

	_, err := client.GetProject(context.Background(), 42)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusNotFound, te.StatusCode)
	assert.Equal(t, "HTTP error! status: 404", Message(err))
	assert.Equal(t, "HTTP_404", obs.last().ErrorCode)
}

func TestGetProject_InvalidIDMakesNoCall(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	for _, id := range []int{0, -1} {
		_, err := client.GetProject(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidID)
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestGetProject_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>oops</html>`))
	})

	_, err := client.GetProject(context.Background(), 1)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.True(t, strings.HasPrefix(Message(err), "decoding response:"))
}

func TestListCategories_SendsLocale(t *testing.T) {
	var got string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories", r.URL.Path)
		got = r.URL.Query().Get("locale")
		w.Write([]byte(`{"categories":[{"name":"All","count":6},{"name":"Design","count":2}]}`))
	})

	list, err := client.ListCategories(context.Background(), locale.English)
	require.NoError(t, err)
	assert.Equal(t, "en", got)
	assert.Equal(t, []CategoryEntry{{Name: "All", Count: 6}, {Name: "Design", Count: 2}}, list.Categories)
}

func TestHealth(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Write([]byte(`{"message":"OK"}`))
	})

	h, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", h.Message)
}

func TestUnreachableServiceIsTransportError(t *testing.T) {
	obs := &recordingObserver{}
	client := NewHTTPClient("http://127.0.0.1:1", time.Second, obs)

	_, err := client.Health(context.Background())
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.StatusCode)
	assert.Equal(t, "TRANSPORT", obs.last().ErrorCode)
}

func TestMalformedBaseURLIsTransportError(t *testing.T) {
	client := NewHTTPClient("http://[::1", time.Second, nil)

	_, err := client.Health(context.Background())
	var te *TransportError
	assert.ErrorAs(t, err, &te)
}

func TestContextDeadlineReportsTimeout(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Health(ctx)
	require.Error(t, err)
	assert.Equal(t, "request timed out", Message(err))
}

func TestLogObserver_WritesRecord(t *testing.T) {
	var b strings.Builder
	obs := NewLogObserver(&b)
	obs.OnRequestComplete(context.Background(), RequestEvent{
		Method:     http.MethodGet,
		Endpoint:   "/api/projects/7",
		RequestID:  "abc",
		StatusCode: 404,
		ErrorCode:  "HTTP_404",
	})

	out := b.String()
	assert.Contains(t, out, "catalog_request")
	assert.Contains(t, out, "endpoint=/api/projects/7")
	assert.Contains(t, out, "error_code=HTTP_404")
}

func TestNewLogObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopObserver{}, NewLogObserver(nil))
}
