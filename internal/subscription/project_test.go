package subscription

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/domain"
)

func TestProjectDetail_AbsentIDIsReadyWithoutCall(t *testing.T) {
	fc := &fakeCatalog{}
	s := NewProjectDetail(fc)

	assert.Nil(t, s.SetID(0))
	st := s.State()
	require.True(t, st.Ready())
	assert.Nil(t, st.Value)
	assert.Equal(t, 0, fc.getCallCount())
	assert.Nil(t, s.Reload())
}

func TestProjectDetail_FetchesProject(t *testing.T) {
	fc := &fakeCatalog{}
	s := NewProjectDetail(fc)

	req := s.SetID(7)
	require.NotNil(t, req)
	assert.True(t, s.State().Loading())
	require.True(t, s.Apply(req.Do(context.Background())))

	st := s.State()
	require.True(t, st.Ready())
	require.NotNil(t, st.Value)
	assert.Equal(t, 7, st.Value.ID)
	assert.Equal(t, []int{7}, fc.getCalls)
}

func TestProjectDetail_SameIDIssuesNothing(t *testing.T) {
	s := NewProjectDetail(&fakeCatalog{})
	require.NotNil(t, s.SetID(3))
	assert.Nil(t, s.SetID(3))
}

func TestProjectDetail_NotFound(t *testing.T) {
	fc := &fakeCatalog{get: func(int) (domain.Project, error) {
		return domain.Project{}, &catalog.TransportError{StatusCode: 404}
	}}
	s := NewProjectDetail(fc)
	req := s.SetID(42)
	require.True(t, s.Apply(req.Do(context.Background())))

	st := s.State()
	require.True(t, st.Failed())
	assert.Equal(t, "HTTP error! status: 404", st.Message)
	assert.Nil(t, st.Value)
}

func TestProjectDetail_NegativeIDFailsInClient(t *testing.T) {
	fc := &fakeCatalog{}
	s := NewProjectDetail(fc)
	req := s.SetID(-1)
	require.NotNil(t, req)
	require.True(t, s.Apply(req.Do(context.Background())))

	st := s.State()
	require.True(t, st.Failed())
	assert.Equal(t, catalog.ErrInvalidID.Error(), st.Message)
}

func TestProjectDetail_ClearingDropsPendingFetch(t *testing.T) {
	s := NewProjectDetail(&fakeCatalog{})
	req := s.SetID(5)
	require.NotNil(t, req)

	assert.Nil(t, s.SetID(0))
	assert.False(t, s.Pending())
	assert.False(t, s.Apply(req.Do(context.Background())))
	st := s.State()
	assert.True(t, st.Ready())
	assert.Nil(t, st.Value)
}

func TestProjectDetail_SwitchingIDsLastWins(t *testing.T) {
	s := NewProjectDetail(&fakeCatalog{})
	a := s.SetID(1)
	b := s.SetID(2)
	require.NotNil(t, a)
	require.NotNil(t, b)

	rb := b.Do(context.Background())
	ra := a.Do(context.Background())
	assert.True(t, s.Apply(rb))
	assert.False(t, s.Apply(ra))
	assert.Equal(t, 2, s.State().Value.ID)
}

func TestProjectDetail_CloseDiscards(t *testing.T) {
	s := NewProjectDetail(&fakeCatalog{})
	req := s.SetID(9)
	s.Close()
	assert.False(t, s.Apply(req.Do(context.Background())))
	assert.Nil(t, s.SetID(10))
}
