package domain

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/folio/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceProjectJSON = `{
	"id": 3,
	"title": "Eco Startup",
	"title_en": null,
	"category": "Стартапы",
	"status": "В работе",
	"year": "2024",
	"image": "https://example.com/cover.jpg",
	"description": "Платформа для отслеживания углеродного следа.",
	"description_en": "Carbon footprint tracking platform.",
	"client": "GreenLife",
	"role": "Full Stack Dev",
	"images": ["https://example.com/1.jpg"],
	"created_at": "2024-05-01T10:00:00.123456",
	"updated_at": "2024-05-01T10:00:00.123456"
}`

func TestProject_DecodesServicePayload(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(serviceProjectJSON), &p))
	require.NoError(t, p.Validate())

	assert.Equal(t, 3, p.ID)
	assert.Equal(t, CategoryStartups, p.Category)
	assert.Equal(t, StatusInProgress, p.Status)
	assert.Equal(t, "", p.TitleEN)
	assert.Equal(t, []string{"https://example.com/1.jpg"}, p.Images)
}

func TestProject_LocalizedFields(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(serviceProjectJSON), &p))

	assert.Equal(t, "Eco Startup", p.LocalizedTitle(locale.English), "falls back when title_en is empty")
	assert.Equal(t, "Carbon footprint tracking platform.", p.LocalizedDescription(locale.English))
	assert.Equal(t, "Платформа для отслеживания углеродного следа.", p.LocalizedDescription(locale.Russian))
}

func TestProject_ValidateRejectsSentinelCategory(t *testing.T) {
	p := Project{ID: 1, Category: CategoryAll, Status: StatusCompleted}
	assert.ErrorIs(t, p.Validate(), ErrUnknownCategory)
}

func TestProject_ValidateRejectsNonPositiveID(t *testing.T) {
	p := Project{ID: 0, Category: CategoryDesign, Status: StatusCompleted}
	assert.Error(t, p.Validate())
}

func TestProject_UnknownStatusFailsDecode(t *testing.T) {
	var p Project
	err := json.Unmarshal([]byte(`{"id":1,"category":"Дизайн","status":"Paused"}`), &p)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestStatus_Labels(t *testing.T) {
	assert.Equal(t, "In Progress", StatusInProgress.Label(locale.English))
	assert.Equal(t, "Завершен", StatusCompleted.WireValue())
	s, ok := ParseStatus("completed")
	require.True(t, ok)
	assert.Equal(t, StatusCompleted, s)
}

func TestFilterFromLabel(t *testing.T) {
	assert.Equal(t, CategoryDesign, FilterFromLabel("Design", locale.English).Category)
	assert.Equal(t, CategoryAll, FilterFromLabel("Design", locale.Russian).Category)
}

func TestFilter_Equal(t *testing.T) {
	five, alsoFive, six := 5, 5, 6

	assert.True(t, Filter{}.Equal(Filter{Category: CategoryAll}))
	assert.True(t, Filter{Limit: &five}.Equal(Filter{Limit: &alsoFive}))
	assert.False(t, Filter{Limit: &five}.Equal(Filter{Limit: &six}))
	assert.False(t, Filter{Limit: &five}.Equal(Filter{}))
	assert.False(t, Filter{Status: StatusCompleted}.Equal(Filter{}))
}
