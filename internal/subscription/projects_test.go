package subscription

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/locale"
)

func allQuery(l locale.Locale) ListQuery {
	return ListQuery{Filter: domain.Filter{Category: domain.CategoryAll}, Locale: l}
}

func TestProjectList_StartsIdle(t *testing.T) {
	s := NewProjectList(&fakeCatalog{}, locale.Russian)
	assert.Equal(t, PhaseIdle, s.State().Phase)
	assert.False(t, s.Pending())
}

func TestProjectList_FirstQueryLoadsThenReady(t *testing.T) {
	fc := &fakeCatalog{list: func(catalog.ListParams) (catalog.ProjectPage, error) {
		return catalog.ProjectPage{
			Projects: []domain.Project{sampleProject(1, domain.CategoryDesign), sampleProject(2, domain.CategoryOther)},
			Total:    2,
		}, nil
	}}
	s := NewProjectList(fc, locale.Russian)

	req := s.SetQuery(allQuery(locale.Russian))
	require.NotNil(t, req)
	assert.True(t, s.State().Loading())
	assert.True(t, s.Pending())
	assert.Equal(t, uint64(1), req.Ticket.Generation())

	require.True(t, s.Apply(req.Do(context.Background())))
	st := s.State()
	require.True(t, st.Ready())
	assert.Len(t, st.Value.Projects, 2)
	assert.Equal(t, 2, st.Value.Total)
	assert.Equal(t, locale.Russian, st.Value.Query.Locale)
	assert.False(t, s.Pending())
}

func TestProjectList_UnchangedQueryIssuesNothing(t *testing.T) {
	s := NewProjectList(&fakeCatalog{}, locale.Russian)
	require.NotNil(t, s.SetQuery(allQuery(locale.Russian)))

	assert.Nil(t, s.SetQuery(allQuery(locale.Russian)))
	// Zero category and the sentinel are the same filter.
	assert.Nil(t, s.SetQuery(ListQuery{Locale: locale.Russian}))
}

func TestProjectList_SentinelSendsNoCategory(t *testing.T) {
	s := NewProjectList(&fakeCatalog{}, locale.Russian)
	req := s.SetQuery(allQuery(locale.English))
	require.NotNil(t, req)
	assert.Equal(t, "", req.Params.Category)
	assert.Equal(t, "", req.Params.Status)
	assert.Nil(t, req.Params.Limit)
}

func TestProjectList_CategoryUsesQueryLocaleLabel(t *testing.T) {
	limit := 3
	q := ListQuery{
		Filter: domain.Filter{Category: domain.CategoryDesign, Status: domain.StatusInProgress, Limit: &limit},
		Locale: locale.English,
	}

	ru := NewProjectList(&fakeCatalog{}, locale.Russian).SetQuery(q)
	require.NotNil(t, ru)
	assert.Equal(t, "Дизайн", ru.Params.Category)
	assert.Equal(t, "В работе", ru.Params.Status)
	require.NotNil(t, ru.Params.Limit)
	assert.Equal(t, 3, *ru.Params.Limit)

	en := NewProjectList(&fakeCatalog{}, locale.English).SetQuery(q)
	require.NotNil(t, en)
	assert.Equal(t, "Design", en.Params.Category)

	// Params own their limit.
	limit = 9
	assert.Equal(t, 3, *ru.Params.Limit)
}

func TestProjectList_InvalidQueryLocaleFallsBack(t *testing.T) {
	req := NewProjectList(&fakeCatalog{}, "de").SetFilter(domain.Filter{Category: domain.CategoryStartups})
	require.NotNil(t, req)
	assert.Equal(t, "Стартапы", req.Params.Category)
}

func TestProjectList_OutOfOrderCompletionsLastWins(t *testing.T) {
	fc := &fakeCatalog{list: echoCategory}
	s := NewProjectList(fc, locale.English)

	filters := []domain.Category{domain.CategoryDesign, domain.CategoryDevelopment, domain.CategoryStartups, domain.CategoryOther}
	var reqs []*ListRequest
	for _, c := range filters {
		req := s.SetQuery(ListQuery{Filter: domain.Filter{Category: c}, Locale: locale.English})
		require.NotNil(t, req)
		reqs = append(reqs, req)
	}

	// Newest completes first, the rest trickle in afterwards.
	results := make([]ListResult, len(reqs))
	for i, r := range reqs {
		results[i] = r.Do(context.Background())
	}
	assert.True(t, s.Apply(results[3]))
	assert.False(t, s.Apply(results[0]))
	assert.False(t, s.Apply(results[2]))
	assert.False(t, s.Apply(results[1]))

	st := s.State()
	require.True(t, st.Ready())
	assert.Equal(t, "Other", st.Value.Projects[0].Title)
	assert.Equal(t, domain.CategoryOther, st.Value.Query.Filter.Category)
	assert.Equal(t, 4, fc.listCallCount())
}

func TestProjectList_StaleResultsNeverTransition(t *testing.T) {
	s := NewProjectList(&fakeCatalog{list: echoCategory}, locale.English)
	first := s.SetFilter(domain.Filter{Category: domain.CategoryDesign})
	second := s.SetFilter(domain.Filter{Category: domain.CategoryDevelopment})
	require.NotNil(t, first)
	require.NotNil(t, second)

	assert.False(t, s.Apply(first.Do(context.Background())))
	assert.True(t, s.State().Loading(), "stale result must leave loading untouched")

	require.True(t, s.Apply(second.Do(context.Background())))
	assert.Equal(t, "Development", s.State().Value.Projects[0].Title)
}

func TestProjectList_ConcurrentCompletions(t *testing.T) {
	fc := &fakeCatalog{list: func(p catalog.ListParams) (catalog.ProjectPage, error) {
		time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
		return echoCategory(p)
	}}
	s := NewProjectList(fc, locale.English)

	var reqs []*ListRequest
	for i := 0; i < 20; i++ {
		c := domain.Categories[i%len(domain.Categories)]
		limit := i
		req := s.SetFilter(domain.Filter{Category: c, Limit: &limit})
		require.NotNil(t, req)
		reqs = append(reqs, req)
	}

	results := make(chan ListResult, len(reqs))
	var wg sync.WaitGroup
	for _, r := range reqs {
		wg.Add(1)
		go func(r *ListRequest) {
			defer wg.Done()
			results <- r.Do(context.Background())
		}(r)
	}
	wg.Wait()
	close(results)

	accepted := 0
	for res := range results {
		if s.Apply(res) {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)

	last := reqs[len(reqs)-1]
	st := s.State()
	require.True(t, st.Ready())
	assert.True(t, last.Query.Filter.Equal(st.Value.Query.Filter))
}

func TestProjectList_ZeroTotalIsReadyAndEmpty(t *testing.T) {
	fc := &fakeCatalog{list: func(catalog.ListParams) (catalog.ProjectPage, error) {
		return catalog.ProjectPage{}, nil
	}}
	s := NewProjectList(fc, locale.Russian)
	req := s.SetQuery(allQuery(locale.Russian))
	require.True(t, s.Apply(req.Do(context.Background())))

	st := s.State()
	require.True(t, st.Ready())
	assert.NotNil(t, st.Value.Projects)
	assert.Empty(t, st.Value.Projects)
	assert.Equal(t, 0, st.Value.Total)
}

func TestProjectList_FailureCarriesMessage(t *testing.T) {
	fc := &fakeCatalog{list: func(catalog.ListParams) (catalog.ProjectPage, error) {
		return catalog.ProjectPage{}, &catalog.TransportError{StatusCode: 500}
	}}
	s := NewProjectList(fc, locale.Russian)
	req := s.SetQuery(allQuery(locale.Russian))
	require.True(t, s.Apply(req.Do(context.Background())))

	st := s.State()
	require.True(t, st.Failed())
	assert.Equal(t, "HTTP error! status: 500", st.Message)
	assert.Nil(t, st.Value.Projects)
}

func TestProjectList_LocaleSwitchDropsInFlightSentinelRequest(t *testing.T) {
	fc := &fakeCatalog{list: echoCategory}
	s := NewProjectList(fc, locale.Russian)

	inFlight := s.SetQuery(allQuery(locale.Russian))
	require.NotNil(t, inFlight)

	next := s.SetLocale(locale.English)
	require.NotNil(t, next)
	assert.Equal(t, "", next.Params.Category)
	assert.Equal(t, locale.English, next.Query.Locale)
	assert.True(t, next.Query.Filter.Category.IsAll())

	assert.False(t, s.Apply(inFlight.Do(context.Background())))
	require.True(t, s.Apply(next.Do(context.Background())))
	assert.Equal(t, locale.English, s.State().Value.Query.Locale)
}

func TestProjectList_LocaleSwitchKeepsCategory(t *testing.T) {
	s := NewProjectList(&fakeCatalog{}, locale.Russian)
	require.NotNil(t, s.SetQuery(ListQuery{Filter: domain.Filter{Category: domain.CategoryDesign}, Locale: locale.Russian}))

	req := s.SetLocale(locale.English)
	require.NotNil(t, req)
	assert.Equal(t, domain.CategoryDesign, req.Query.Filter.Category)
	assert.Equal(t, "Дизайн", req.Params.Category)
}

func TestProjectList_ReloadSupersedes(t *testing.T) {
	s := NewProjectList(&fakeCatalog{}, locale.Russian)
	first := s.SetQuery(allQuery(locale.Russian))
	require.NotNil(t, first)
	require.True(t, s.Apply(first.Do(context.Background())))

	again := s.Reload()
	require.NotNil(t, again)
	assert.Equal(t, first.Query, again.Query)
	assert.Greater(t, again.Ticket.Generation(), first.Ticket.Generation())
	assert.True(t, s.State().Loading())
}

func TestProjectList_ResultAppliesOnce(t *testing.T) {
	s := NewProjectList(&fakeCatalog{}, locale.Russian)
	req := s.SetQuery(allQuery(locale.Russian))
	res := req.Do(context.Background())
	assert.True(t, s.Apply(res))
	assert.False(t, s.Apply(res))
}

func TestProjectList_ForeignTicketRejected(t *testing.T) {
	a := NewProjectList(&fakeCatalog{}, locale.Russian)
	b := NewProjectList(&fakeCatalog{}, locale.Russian)
	ra := a.SetQuery(allQuery(locale.Russian))
	require.NotNil(t, b.SetQuery(allQuery(locale.Russian)))

	assert.False(t, b.Apply(ra.Do(context.Background())))
	assert.True(t, b.State().Loading())
}

func TestProjectList_CloseDiscardsLateResults(t *testing.T) {
	s := NewProjectList(&fakeCatalog{}, locale.Russian)
	req := s.SetQuery(allQuery(locale.Russian))
	require.NotNil(t, req)

	s.Close()
	assert.False(t, s.Apply(req.Do(context.Background())))
	assert.True(t, s.State().Loading())
	assert.False(t, s.Pending())
	assert.Nil(t, s.SetFilter(domain.Filter{Category: domain.CategoryDesign}))
	assert.Nil(t, s.Reload())
}
